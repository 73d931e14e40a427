package repository

import (
	"context"
	"errors"

	"test-platform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageTaskRepository 消息任务数据访问
type MessageTaskRepository struct {
	db *gorm.DB
}

func NewMessageTaskRepository(db *gorm.DB) *MessageTaskRepository {
	return &MessageTaskRepository{db: db}
}

// FindByKey 按唯一键查询并加行锁，不存在时返回 nil, nil
func (r *MessageTaskRepository) FindByKey(ctx context.Context, taskType, event, receiver, projectID string) (*model.MessageTask, error) {
	var task model.MessageTask
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("task_type = ? AND event = ? AND receiver = ? AND project_id = ?", taskType, event, receiver, projectID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *MessageTaskRepository) Create(ctx context.Context, task *model.MessageTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// UpdateFields 按字段更新
func (r *MessageTaskRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.MessageTask{}).Where("id = ?", id).Updates(fields).Error
}

// ListByProject 查询项目下的全部消息任务
func (r *MessageTaskRepository) ListByProject(ctx context.Context, projectID string) ([]model.MessageTask, error) {
	var tasks []model.MessageTask
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("task_type, event, create_time, id").
		Find(&tasks).Error
	return tasks, err
}
