package repository

import (
	"context"
	"errors"
	"time"

	"test-platform/internal/model"

	"gorm.io/gorm"
)

// OperationLogFilter 操作日志查询条件
type OperationLogFilter struct {
	OrganizationID string
	UserID         string
	Module         string
	Type           string
	SourceID       string
	Page           int
	PageSize       int
}

// OperationLogRepository 操作日志数据访问
type OperationLogRepository struct {
	db *gorm.DB
}

func NewOperationLogRepository(db *gorm.DB) *OperationLogRepository {
	return &OperationLogRepository{db: db}
}

func (r *OperationLogRepository) Create(ctx context.Context, log *model.OperationLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// GetByID 不存在时返回 nil, nil
func (r *OperationLogRepository) GetByID(ctx context.Context, id string) (*model.OperationLog, error) {
	var log model.OperationLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

// List 分页查询，按创建时间倒序
func (r *OperationLogRepository) List(ctx context.Context, filter OperationLogFilter) ([]model.OperationLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.OperationLog{})

	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Module != "" {
		query = query.Where("module = ?", filter.Module)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.SourceID != "" {
		query = query.Where("source_id = ?", filter.SourceID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	var logs []model.OperationLog
	err := query.Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

// DeleteBefore 物理删除早于 before 的日志，返回删除条数
func (r *OperationLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().Where("created_at < ?", before).Delete(&model.OperationLog{})
	return result.RowsAffected, result.Error
}
