package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"test-platform/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerJSON(t *testing.T) {
	require.NoError(t, InitLogger(&config.LogConfig{Level: "debug", Format: "json"}))
	assert.Equal(t, logrus.DebugLevel, L().GetLevel())

	var buf bytes.Buffer
	SetOutput(&buf)
	WithFields(logrus.Fields{"view_id": "v1"}).Info("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"view_id":"v1"`)
}

func TestInitLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, InitLogger(&config.LogConfig{Level: "loud", Format: "text"}))
	assert.Equal(t, logrus.InfoLevel, L().GetLevel())
}

func TestInitLoggerRejectsUnknownFormat(t *testing.T) {
	assert.Error(t, InitLogger(&config.LogConfig{Level: "info", Format: "xml"}))
	assert.Error(t, InitLogger(nil))
}

func TestInitLoggerWithFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "server.log")
	require.NoError(t, InitLogger(&config.LogConfig{Level: "info", Format: "text", File: file, MaxSize: 1}))
	Infof("written to %s", file)
	assert.FileExists(t, file)
}
