package handler

import (
	"net/http"
	"time"

	"test-platform/internal/config"
	"test-platform/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	registerValidators()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Security.AllowedOrigins))
	r.Use(middleware.LocaleMiddleware())

	// 安全响应头
	if cfg.Security.EnableSecurityHeaders {
		r.Use(middleware.SecurityHeadersMiddleware())
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "test-platform"})
	})

	// 速率限制器：每分钟 cfg.Security.RateLimit 次
	limiter := middleware.NewRateLimiter(cfg.Security.RateLimit, time.Minute)

	// 初始化 Handler
	userViewHandler := NewUserViewHandler(db)
	messageTaskHandler := NewMessageTaskHandler(db)
	operationLogHandler := NewOperationLogHandler(db)

	// ==================== 需要认证的接口 ====================
	authed := r.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	authed.Use(middleware.RateLimitMiddleware(limiter))
	if cfg.Audit.Enabled {
		authed.Use(middleware.OperationLogMiddleware(db))
	}

	// 消息通知
	notice := authed.Group("/notice/message/task")
	{
		notice.POST("/save", messageTaskHandler.Save)
		notice.GET("/get/:projectId", messageTaskHandler.Get)
	}

	// 用户视图
	userView := authed.Group("/user-view/:viewType")
	{
		userView.GET("/list", userViewHandler.List)
		userView.GET("/grouped/list", userViewHandler.GroupedList)
		userView.GET("/get/:id", userViewHandler.Get)
		userView.POST("/add", userViewHandler.Add)
		userView.POST("/update", userViewHandler.Update)
		userView.GET("/delete/:id", userViewHandler.Delete)
	}

	// 操作日志
	operationLog := authed.Group("/operation/log")
	{
		operationLog.GET("/list", operationLogHandler.List)
		operationLog.GET("/get/:id", operationLogHandler.Get)
	}
}
