package repository

import (
	"context"
	"database/sql"
	"errors"

	"test-platform/internal/model"

	"gorm.io/gorm"
)

// UserViewRepository 用户视图数据访问
type UserViewRepository struct {
	db *gorm.DB
}

func NewUserViewRepository(db *gorm.DB) *UserViewRepository {
	return &UserViewRepository{db: db}
}

// GetByID 按 id 查询，不存在时返回 nil, nil
func (r *UserViewRepository) GetByID(ctx context.Context, id string) (*model.UserView, error) {
	var view model.UserView
	err := r.db.WithContext(ctx).First(&view, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &view, nil
}

// CountByName 统计同一用户、范围、类型下的同名视图，excludeID 非空时排除该视图
func (r *UserViewRepository) CountByName(ctx context.Context, userID, scopeID, viewType, name, excludeID string) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.UserView{}).
		Where("user_id = ? AND scope_id = ? AND view_type = ? AND name = ?", userID, scopeID, viewType, name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// LastPos 查询当前最大排序值，没有视图时返回 0
func (r *UserViewRepository) LastPos(ctx context.Context, scopeID, userID, viewType string) (int64, error) {
	var pos sql.NullInt64
	err := r.db.WithContext(ctx).Model(&model.UserView{}).
		Select("MAX(pos)").
		Where("scope_id = ? AND user_id = ? AND view_type = ?", scopeID, userID, viewType).
		Row().Scan(&pos)
	if err != nil {
		return 0, err
	}
	return pos.Int64, nil
}

func (r *UserViewRepository) Create(ctx context.Context, view *model.UserView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

// UpdateFields 按字段更新
func (r *UserViewRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.UserView{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserViewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.UserView{}, "id = ?", id).Error
}

// List 查询用户在某个范围下的自定义视图，按 pos 倒序
func (r *UserViewRepository) List(ctx context.Context, userID, scopeID, viewType string) ([]model.UserView, error) {
	var views []model.UserView
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND scope_id = ? AND view_type = ?", userID, scopeID, viewType).
		Order("pos DESC").
		Find(&views).Error
	return views, err
}
