package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"test-platform/internal/config"
	"test-platform/internal/model"
	"test-platform/internal/pkg/crypto"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
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

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

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

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := crypto.GenerateToken(userID, "org1", "Tester", testSecret, 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c)+"|"+GetOrganizationID(c)+"|"+GetUserName(c))
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"wrong scheme", "Token abc"},
		{"invalid token", "Bearer abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, errcode.CodeUnauthorized, decode(t, w).Code)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin|org1|Tester", w.Body.String())
}

func TestAuthMiddlewareRejectsTokenWithoutOrganization(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, GetOrganizationID(c)) })

	token, err := crypto.GenerateToken("someone", "", "Someone", testSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, errcode.CodeUnauthorized, decode(t, w).Code)
}

func TestAuthMiddlewareMessageFollowsLocale(t *testing.T) {
	r := gin.New()
	r.Use(LocaleMiddleware(), AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "Missing credentials", decode(t, w).Message)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Accept-Language", "zh-CN")
	req.Header.Set("Authorization", "Bearer abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "无效的认证信息", decode(t, w).Message)
}

func TestLocaleMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(LocaleMiddleware())
	r.GET("/t", func(c *gin.Context) {
		c.String(http.StatusOK, i18n.T(c.Request.Context(), "user_view.all_data"))
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "All data", w.Body.String())
	assert.Equal(t, "en-US", w.Header().Get("Content-Language"))

	req = httptest.NewRequest(http.MethodGet, "/t", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "全部数据", w.Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(NewRateLimiter(2, time.Minute)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, "pong", w.Body.String())
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 429, decode(t, w).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestOperationLogMiddleware(t *testing.T) {
	db := newTestDB(t)

	r := gin.New()
	r.Use(AuthMiddleware(testSecret), OperationLogMiddleware(db))
	r.POST("/user-view/:viewType/update", func(c *gin.Context) {
		var body map[string]interface{}
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusOK, gin.H{"code": 100200})
	})
	r.GET("/user-view/:viewType/delete/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/user-view/:viewType/list", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/user-view/BUG/update", strings.NewReader(`{"id":"view-1","name":"renamed"}`))
	req.Header.Set("Authorization", bearer(t, "admin"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/user-view/BUG/delete/view-2", nil)
	req.Header.Set("Authorization", bearer(t, "admin"))
	r.ServeHTTP(httptest.NewRecorder(), req)

	// 查询请求不记录
	req = httptest.NewRequest(http.MethodGet, "/user-view/BUG/list", nil)
	req.Header.Set("Authorization", bearer(t, "admin"))
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&model.OperationLog{}).Count(&count)
		return count == 2
	}, 2*time.Second, 20*time.Millisecond)

	var update model.OperationLog
	require.NoError(t, db.Where("type = ?", model.OperationUpdate).First(&update).Error)
	assert.Equal(t, "admin", update.UserID)
	assert.Equal(t, "org1", update.OrganizationID)
	assert.Equal(t, model.ModuleUserView, update.Module)
	assert.Equal(t, "view-1", update.SourceID)
	assert.JSONEq(t, `{"id":"view-1","name":"renamed"}`, string(update.RequestBody))

	var del model.OperationLog
	require.NoError(t, db.Where("type = ?", model.OperationDelete).First(&del).Error)
	assert.Equal(t, "view-2", del.SourceID)
	assert.JSONEq(t, `{}`, string(del.RequestBody))
}

func TestRequestBodyJSON(t *testing.T) {
	assert.Equal(t, `{}`, string(requestBodyJSON(nil)))
	assert.Equal(t, `{}`, string(requestBodyJSON([]byte("name=plain"))))
	assert.Equal(t, `{"a":1}`, string(requestBodyJSON([]byte(` {"a":1} `))))
	assert.Equal(t, `{}`, string(requestBodyJSON([]byte(`"`+strings.Repeat("x", maxRequestBody)+`"`))))
}

func TestTruncateStringKeepsRunes(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abc", truncateString("abcdef", 3))

	// "中" 占 3 字节，上限落在字符中间时向前退到完整字符
	got := truncateString("ab中文", 4)
	assert.Equal(t, "ab", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "ab中", truncateString("ab中文", 5))
	assert.Equal(t, "", truncateString("中文", 2))
}
