package handler

import (
	"net/http"
	"strconv"

	"test-platform/internal/middleware"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/response"
	"test-platform/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errOperationLogNotExist = errcode.New(errcode.CodeNotFound, http.StatusNotFound, "operation_log.not_exist")

// OperationLogHandler 操作日志查询，只能查看本组织的日志
type OperationLogHandler struct {
	repo *repository.OperationLogRepository
}

func NewOperationLogHandler(db *gorm.DB) *OperationLogHandler {
	return &OperationLogHandler{repo: repository.NewOperationLogRepository(db)}
}

// List 获取操作日志列表
func (h *OperationLogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	logs, total, err := h.repo.List(c.Request.Context(), repository.OperationLogFilter{
		OrganizationID: middleware.GetOrganizationID(c),
		UserID:         c.Query("user_id"),
		Module:         c.Query("module"),
		Type:           c.Query("type"),
		SourceID:       c.Query("source_id"),
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.SuccessPage(c, logs, total, page, pageSize)
}

// Get 获取操作日志详情
func (h *OperationLogHandler) Get(c *gin.Context) {
	log, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	if log == nil || log.OrganizationID != middleware.GetOrganizationID(c) {
		response.Fail(c, errOperationLogNotExist)
		return
	}

	response.Success(c, log)
}
