package repository

import (
	"context"

	"test-platform/internal/model"

	"gorm.io/gorm"
)

// UserViewConditionRepository 视图条件数据访问
type UserViewConditionRepository struct {
	db *gorm.DB
}

func NewUserViewConditionRepository(db *gorm.DB) *UserViewConditionRepository {
	return &UserViewConditionRepository{db: db}
}

func (r *UserViewConditionRepository) ListByViewID(ctx context.Context, userViewID string) ([]model.UserViewCondition, error) {
	var conditions []model.UserViewCondition
	err := r.db.WithContext(ctx).
		Where("user_view_id = ?", userViewID).
		Order("id").
		Find(&conditions).Error
	return conditions, err
}

// BatchCreate 批量插入，空切片直接返回
func (r *UserViewConditionRepository) BatchCreate(ctx context.Context, conditions []model.UserViewCondition) error {
	if len(conditions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(conditions, 100).Error
}

func (r *UserViewConditionRepository) DeleteByViewID(ctx context.Context, userViewID string) error {
	return r.db.WithContext(ctx).Where("user_view_id = ?", userViewID).Delete(&model.UserViewCondition{}).Error
}
