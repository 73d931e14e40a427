package handler

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"test-platform/internal/config"
	"test-platform/internal/model"
	"test-platform/internal/pkg/crypto"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := model.Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: testSecret},
		Security: config.SecurityConfig{RateLimit: 1000},
	}
	config.Set(cfg)

	engine := gin.New()
	SetupRouter(engine, db, cfg)
	return &testServer{t: t, db: db, engine: engine}
}

func (s *testServer) token(userID string) string {
	token, err := crypto.GenerateToken(userID, "org1", userID, testSecret, 1)
	require.NoError(s.t, err)
	return "Bearer " + token
}

// do 以 userID 身份发送请求，userID 为空时不携带认证信息
func (s *testServer) do(method, path, userID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", s.token(userID))
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}
