package service

import (
	"context"
	"time"

	"test-platform/internal/pkg/logger"
	"test-platform/internal/repository"

	"gorm.io/gorm"
)

// SchedulerService 定时任务服务
type SchedulerService struct {
	db            *gorm.DB
	retentionDays int
}

// NewSchedulerService 创建定时任务服务，retentionDays 为 0 时不清理操作日志
func NewSchedulerService(db *gorm.DB, retentionDays int) *SchedulerService {
	return &SchedulerService{db: db, retentionDays: retentionDays}
}

// Start 启动定时任务，ctx 取消后退出
func (s *SchedulerService) Start(ctx context.Context) {
	if s.retentionDays <= 0 {
		return
	}

	// 每天凌晨 3 点清理过期操作日志
	go s.runDaily(ctx, 3, 0, s.CleanupOperationLogs)

	logger.Infof("定时任务服务已启动，操作日志保留 %d 天", s.retentionDays)
}

// runDaily 每天定时执行
func (s *SchedulerService) runDaily(ctx context.Context, hour, minute int, task func(context.Context)) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if next.Before(now) {
			next = next.Add(24 * time.Hour)
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			task(ctx)
		}
	}
}

// CleanupOperationLogs 清理超过保留天数的操作日志
func (s *SchedulerService) CleanupOperationLogs(ctx context.Context) {
	before := time.Now().AddDate(0, 0, -s.retentionDays)
	count, err := repository.NewOperationLogRepository(s.db).DeleteBefore(ctx, before)
	if err != nil {
		logger.WithError(err).Error("清理操作日志失败")
		return
	}
	logger.Infof("清理操作日志: %d 条", count)
}
