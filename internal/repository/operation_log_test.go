package repository

import (
	"testing"

	"test-platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestOperationLogRepository(t *testing.T) {
	repo := NewOperationLogRepository(newTestDB(t))

	for i, module := range []string{model.ModuleUserView, model.ModuleUserView, model.ModuleMessageTask} {
		log := &model.OperationLog{
			OrganizationID: "org1",
			UserID:         "u1",
			Type:           model.OperationAdd,
			Module:         module,
			Method:         "POST",
			Path:           "/user-view/BUG/add",
			ResponseCode:   200,
			Duration:       int64(i),
			RequestBody:    datatypes.JSON(`{}`),
		}
		if i == 0 {
			log.RequestBody = datatypes.JSON(`{"name":"mine"}`)
		}
		require.NoError(t, repo.Create(ctx, log))
	}

	logs, total, err := repo.List(ctx, OperationLogFilter{Module: model.ModuleUserView})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)

	logs, total, err = repo.List(ctx, OperationLogFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 1)

	got, err := repo.GetByID(ctx, logs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = repo.GetByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}
