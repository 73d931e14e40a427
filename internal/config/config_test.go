package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
  database: ":memory:"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "zh-CN", cfg.I18n.DefaultLanguage)
	assert.Equal(t, 300, cfg.Security.RateLimit)
	// 开发模式自动生成密钥
	assert.Len(t, cfg.JWT.Secret, 64)
	assert.Equal(t, ":memory:", cfg.Database.DSN())
	assert.Same(t, cfg, Get())
}

func TestLoadReleaseRequiresSecret(t *testing.T) {
	path := writeConfig(t, `
server:
  mode: release
`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `
server:
  mode: release
jwt:
  secret: short
`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: ["))
	assert.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: 3306, Username: "root", Password: "pw", Database: "tp"}}
	Set(cfg)
	assert.Equal(t, "root:pw@tcp(db:3306)/tp?charset=utf8mb4&parseTime=True&loc=Local", cfg.Database.DSN())
}
