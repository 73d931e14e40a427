package service

import (
	"context"
	"testing"

	"test-platform/internal/config"
	"test-platform/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testProject      = "project-message-test-1"
	testEmptyProject = "project-message-test-2"
	testRobotInSite  = "test_message_robot1"
	testRobotDing    = "test_message_robot2"
)

var ctx = context.Background()

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := model.Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// seedMessageFixtures 两个项目，一个站内信机器人，一个钉钉机器人，成员与非成员用户
func seedMessageFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&[]model.Project{
		{BaseModel: model.BaseModel{ID: testProject}, OrganizationID: "org1", Name: "message", Enable: true},
		{BaseModel: model.BaseModel{ID: testEmptyProject}, OrganizationID: "org1", Name: "empty", Enable: true},
	}).Error)
	require.NoError(t, db.Create(&model.ProjectRobot{BaseModel: model.BaseModel{ID: testRobotInSite}, ProjectID: testProject, Name: "站内信", Platform: model.RobotPlatformInSite, Enable: true}).Error)
	require.NoError(t, db.Create(&model.ProjectRobot{BaseModel: model.BaseModel{ID: testRobotDing}, ProjectID: testProject, Name: "钉钉", Platform: model.RobotPlatformDingTalk, Enable: true}).Error)
	require.NoError(t, db.Create(&[]model.User{
		{ID: "project-message-user-1", Name: "user1"},
		{ID: "project-message-user-2", Name: "user2"},
		{ID: "project-message-user-del", Name: "deleted", Deleted: true},
		{ID: "project-message-user-outsider", Name: "outsider"},
	}).Error)
	require.NoError(t, db.Create(&[]model.ProjectMember{
		{ProjectID: testProject, UserID: "project-message-user-1"},
		{ProjectID: testProject, UserID: "project-message-user-2"},
		{ProjectID: testProject, UserID: "project-message-user-del"},
		{ProjectID: testEmptyProject, UserID: "project-message-user-outsider"},
	}).Error)
}

func boolPtr(b bool) *bool {
	return &b
}
