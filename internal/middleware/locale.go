package middleware

import (
	"test-platform/internal/pkg/i18n"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware 根据 Accept-Language 选择响应语言
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := i18n.Match(c.GetHeader("Accept-Language"))
		c.Request = c.Request.WithContext(i18n.WithLanguage(c.Request.Context(), tag))
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}
