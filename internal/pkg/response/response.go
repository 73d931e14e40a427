package response

import (
	"net/http"

	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/i18n"
	"test-platform/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData 分页数据
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    errcode.CodeSuccess,
		Message: i18n.T(c.Request.Context(), "success"),
		Data:    data,
	})
}

// SuccessWithCode 业务部分成功，HTTP 状态仍为 200
func SuccessWithCode(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessPage 分页成功响应
func SuccessPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, PageData{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, message string) {
	Fail(c, errcode.ErrParam.WithDetail(message))
}

// Fail 将错误翻译为统一响应
// 业务错误使用其结果码，其余错误记录日志后返回通用的服务端错误
func Fail(c *gin.Context, err error) {
	ctx := c.Request.Context()
	e, ok := errcode.As(err)
	if !ok {
		logger.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).WithError(err).Error("unexpected error")
		e = errcode.ErrInternal
	} else if e.HTTPStatus >= http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"path": c.Request.URL.Path,
			"code": e.Code,
		}).WithError(err).Warn("request failed")
	}

	message := i18n.T(ctx, e.Key)
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	c.JSON(e.HTTPStatus, Response{
		Code:    e.Code,
		Message: message,
	})
}
