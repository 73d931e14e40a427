package middleware

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"test-platform/internal/model"
	"test-platform/internal/pkg/logger"
	"test-platform/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const maxRequestBody = 8 << 10

// operationRoute 需要记录操作日志的路由
// SourceParam 为路径参数名，SourceField 为请求体 JSON 字段名
type operationRoute struct {
	Type        string
	Module      string
	SourceParam string
	SourceField string
}

var operationRoutes = map[string]operationRoute{
	"POST /user-view/:viewType/add":       {Type: model.OperationAdd, Module: model.ModuleUserView, SourceField: "scope_id"},
	"POST /user-view/:viewType/update":    {Type: model.OperationUpdate, Module: model.ModuleUserView, SourceField: "id"},
	"GET /user-view/:viewType/delete/:id": {Type: model.OperationDelete, Module: model.ModuleUserView, SourceParam: "id"},
	"POST /notice/message/task/save":      {Type: model.OperationUpdate, Module: model.ModuleMessageTask, SourceField: "project_id"},
}

// OperationLogMiddleware 操作日志中间件，只记录写操作的路由
func OperationLogMiddleware(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOperationLogRepository(db)

	return func(c *gin.Context) {
		route, ok := operationRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			c.Next()
			return
		}

		startTime := time.Now()

		// 读取请求体
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			// 重新设置请求体供后续使用
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		// 处理请求
		c.Next()

		log := model.OperationLog{
			OrganizationID: GetOrganizationID(c),
			UserID:         GetUserID(c),
			UserName:       GetUserName(c),
			Type:           route.Type,
			Module:         route.Module,
			SourceID:       sourceID(c, route, bodyBytes),
			Method:         c.Request.Method,
			Path:           c.Request.URL.Path,
			IPAddress:      c.ClientIP(),
			UserAgent:      truncateString(c.Request.UserAgent(), 500),
			RequestBody:    requestBodyJSON(bodyBytes),
			ResponseCode:   c.Writer.Status(),
			Duration:       time.Since(startTime).Milliseconds(),
		}

		// 异步写入日志
		go func() {
			if err := repo.Create(context.Background(), &log); err != nil {
				logger.WithError(err).Warnf("write operation log failed: %s %s", log.Method, log.Path)
			}
		}()
	}
}

func sourceID(c *gin.Context, route operationRoute, body []byte) string {
	if route.SourceParam != "" {
		return c.Param(route.SourceParam)
	}
	if route.SourceField == "" || len(body) == 0 {
		return ""
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	if s, ok := fields[route.SourceField].(string); ok {
		return truncateString(s, 50)
	}
	return ""
}

// requestBodyJSON 非 JSON 或过大的请求体记为空对象
func requestBodyJSON(body []byte) datatypes.JSON {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || len(trimmed) > maxRequestBody || !json.Valid(trimmed) {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(trimmed)
}

// truncateString 按字节上限截断，不拆分多字节字符
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}
