package middleware

import (
	"strings"

	"test-platform/internal/pkg/crypto"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// 上下文中的用户信息键
const (
	ContextUserID         = "user_id"
	ContextOrganizationID = "organization_id"
	ContextUserName       = "user_name"
)

// AuthMiddleware JWT 认证中间件
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, errcode.ErrTokenMissing)
			c.Abort()
			return
		}

		// Bearer token
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Fail(c, errcode.ErrTokenMalformed)
			c.Abort()
			return
		}

		claims, err := crypto.ParseToken(parts[1], secret)
		if err != nil {
			response.Fail(c, errcode.ErrTokenInvalid)
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrganizationID, claims.OrganizationID)
		c.Set(ContextUserName, claims.Name)

		c.Next()
	}
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// GetOrganizationID 从上下文获取组织 ID
func GetOrganizationID(c *gin.Context) string {
	return c.GetString(ContextOrganizationID)
}

// GetUserName 从上下文获取用户名称
func GetUserName(c *gin.Context) string {
	return c.GetString(ContextUserName)
}
