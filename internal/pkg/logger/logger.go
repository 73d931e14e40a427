// 日志管理
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"test-platform/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05.000"

var log = logrus.New()

// InitLogger 根据配置初始化全局 logrus 实例
// 配置了 File 时同时写入控制台和滚动日志文件
func InitLogger(cfg *config.LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("log config cannot be nil")
	}

	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
		l.Warnf("Invalid log level '%s', using 'info' as default", cfg.Level)
	}
	l.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: timestampFormat,
			FullTimestamp:   true,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	l.SetOutput(newWriter(cfg))
	log = l
	return nil
}

func newWriter(cfg *config.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stdout
	}
	_ = os.MkdirAll(filepath.Dir(cfg.File), 0755)
	rotate := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	return io.MultiWriter(os.Stdout, rotate)
}

// SetOutput 替换输出目标（测试使用）
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// L 返回底层 logrus 实例
func L() *logrus.Logger {
	return log
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

// WithFields 添加多个字段
func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

// WithError 附带错误信息
func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}
