package repository

import (
	"context"
	"errors"

	"test-platform/internal/model"

	"gorm.io/gorm"
)

// ProjectRepository 项目、机器人与成员的只读查询
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetByID 不存在时返回 nil, nil
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// GetRobot 查询属于该项目的机器人，不存在时返回 nil, nil
func (r *ProjectRepository) GetRobot(ctx context.Context, projectID, robotID string) (*model.ProjectRobot, error) {
	var robot model.ProjectRobot
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", robotID, projectID).
		First(&robot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &robot, nil
}

// DefaultRobot 项目默认机器人：优先启用的站内信机器人，否则取最早创建的机器人
func (r *ProjectRepository) DefaultRobot(ctx context.Context, projectID string) (*model.ProjectRobot, error) {
	var robots []model.ProjectRobot
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at, id").
		Find(&robots).Error
	if err != nil {
		return nil, err
	}
	if len(robots) == 0 {
		return nil, nil
	}
	for i := range robots {
		if robots[i].Enable && robots[i].Platform == model.RobotPlatformInSite {
			return &robots[i], nil
		}
	}
	return &robots[0], nil
}

// ListRobots 按 id 批量查询机器人
func (r *ProjectRepository) ListRobots(ctx context.Context, ids []string) ([]model.ProjectRobot, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var robots []model.ProjectRobot
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&robots).Error
	return robots, err
}

// ListMemberUsers 查询 ids 中未删除且属于项目成员的用户
func (r *ProjectRepository) ListMemberUsers(ctx context.Context, projectID string, ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN project_member pm ON pm.user_id = user.id AND pm.project_id = ?", projectID).
		Where("user.id IN ? AND user.deleted = ?", ids, false).
		Find(&users).Error
	return users, err
}

// ListUsers 按 id 批量查询用户，包含已删除的用户
func (r *ProjectRepository) ListUsers(ctx context.Context, ids []string) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
