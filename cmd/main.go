package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"test-platform/internal/config"
	"test-platform/internal/handler"
	"test-platform/internal/model"
	"test-platform/internal/pkg/i18n"
	"test-platform/internal/pkg/logger"
	"test-platform/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	migrate := flag.Bool("migrate", false, "是否执行数据库迁移")
	initDemo := flag.Bool("init-demo", false, "初始化演示项目、机器人和成员")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	if err := logger.InitLogger(&cfg.Log); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	i18n.SetDefault(cfg.I18n.DefaultLanguage)

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	if err := model.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("初始化数据库失败: %v", err)
	}
	logger.Infof("数据库连接成功 (%s)", cfg.Database.Driver)

	// 自动执行数据库迁移（确保表结构是最新的）
	if err := model.AutoMigrate(model.DB); err != nil {
		logger.Fatalf("数据库迁移失败: %v", err)
	}

	// 数据库迁移（仅迁移模式）
	if *migrate {
		logger.Infof("数据库迁移完成")
		os.Exit(0)
	}

	// 初始化演示数据
	if *initDemo {
		if err := seedDemo(model.DB); err != nil {
			logger.Fatalf("初始化演示数据失败: %v", err)
		}
		logger.Infof("演示数据初始化完成: 项目 demo-project，用户 admin")
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 操作日志定期清理
	if cfg.Audit.Enabled {
		service.NewSchedulerService(model.DB, cfg.Audit.RetentionDays).Start(ctx)
	}

	// 创建 Gin 引擎
	r := gin.New()

	// 设置路由
	handler.SetupRouter(r, model.DB, cfg)

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Infof("服务器启动在 http://%s", addr)
		var err error
		if cfg.Server.TLS.Enabled {
			err = srv.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("服务器关闭失败: %v", err)
	}
}

// seedDemo 创建演示项目、站内信机器人和管理员成员，已存在时跳过
func seedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Project{}).Where("id = ?", "demo-project").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infof("演示项目已存在")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		project := model.Project{
			BaseModel:      model.BaseModel{ID: "demo-project"},
			OrganizationID: "demo-org",
			Name:           "演示项目",
			Enable:         true,
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		robot := model.ProjectRobot{
			ProjectID: project.ID,
			Name:      "站内信",
			Platform:  model.RobotPlatformInSite,
			Enable:    true,
		}
		if err := tx.Create(&robot).Error; err != nil {
			return err
		}

		admin := model.User{ID: "admin", Name: "管理员", Email: "admin@example.com"}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		return tx.Create(&model.ProjectMember{ProjectID: project.ID, UserID: admin.ID}).Error
	})
}
