package repository

import (
	"context"
	"testing"

	"test-platform/internal/config"
	"test-platform/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func seedProject(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Project{BaseModel: model.BaseModel{ID: "p1"}, OrganizationID: "org1", Name: "demo", Enable: true}).Error)
	require.NoError(t, db.Create(&model.ProjectRobot{BaseModel: model.BaseModel{ID: "r-mail"}, ProjectID: "p1", Name: "mail", Platform: model.RobotPlatformMail, Enable: true}).Error)
	require.NoError(t, db.Create(&model.ProjectRobot{BaseModel: model.BaseModel{ID: "r-site"}, ProjectID: "p1", Name: "site", Platform: model.RobotPlatformInSite, Enable: true}).Error)
	require.NoError(t, db.Create(&model.ProjectRobot{BaseModel: model.BaseModel{ID: "r-other"}, ProjectID: "p2", Name: "other", Platform: model.RobotPlatformInSite, Enable: true}).Error)
	require.NoError(t, db.Create(&[]model.User{
		{ID: "u1", Name: "Alice"},
		{ID: "u2", Name: "Bob"},
		{ID: "u3", Name: "Carol", Deleted: true},
		{ID: "u4", Name: "Dave"},
	}).Error)
	require.NoError(t, db.Create(&[]model.ProjectMember{
		{ProjectID: "p1", UserID: "u1"},
		{ProjectID: "p1", UserID: "u2"},
		{ProjectID: "p1", UserID: "u3"},
		{ProjectID: "p2", UserID: "u4"},
	}).Error)
}

var ctx = context.Background()
