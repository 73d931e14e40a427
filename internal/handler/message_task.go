package handler

import (
	"strings"

	"test-platform/internal/middleware"
	"test-platform/internal/model"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/i18n"
	"test-platform/internal/pkg/response"
	"test-platform/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MessageTaskHandler 项目消息通知接口
type MessageTaskHandler struct {
	svc *service.MessageTaskService
}

func NewMessageTaskHandler(db *gorm.DB) *MessageTaskHandler {
	return &MessageTaskHandler{svc: service.NewMessageTaskService(db)}
}

// Save 保存消息任务，部分接收人无效时返回部分成功
func (h *MessageTaskHandler) Save(c *gin.Context) {
	var req model.MessageTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	result, err := h.svc.Save(ctx, &req, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if result.Partial() {
		message := i18n.T(ctx, "message_task.receiver_removed", strings.Join(result.Unresolved, ","))
		response.SuccessWithCode(c, errcode.CodePartialSuccess, message, result)
		return
	}
	response.Success(c, result)
}

// Get 查询项目消息配置
func (h *MessageTaskHandler) Get(c *gin.Context) {
	tasks, err := h.svc.Get(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, tasks)
}
