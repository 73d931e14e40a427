package handler

import (
	"test-platform/internal/middleware"
	"test-platform/internal/model"
	"test-platform/internal/pkg/errcode"
	"test-platform/internal/pkg/response"
	"test-platform/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserViewHandler 用户视图接口
type UserViewHandler struct {
	svc *service.UserViewService
}

func NewUserViewHandler(db *gorm.DB) *UserViewHandler {
	return &UserViewHandler{svc: service.NewUserViewService(db)}
}

// viewType 解析路径中的视图类型，非法时直接写入错误响应
func (h *UserViewHandler) viewType(c *gin.Context) (model.UserViewType, bool) {
	raw := c.Param("viewType")
	viewType, ok := model.ParseUserViewType(raw)
	if !ok {
		response.Fail(c, errcode.ErrInvalidViewType.WithDetail(raw))
		return "", false
	}
	return viewType, true
}

// List 视图列表，自定义视图在前
func (h *UserViewHandler) List(c *gin.Context) {
	viewType, ok := h.viewType(c)
	if !ok {
		return
	}
	scopeID := c.Query("scopeId")
	if scopeID == "" {
		response.BadRequest(c, "scopeId")
		return
	}

	views, err := h.svc.List(c.Request.Context(), scopeID, viewType, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, views)
}

// GroupedList 按内置视图和自定义视图分组
func (h *UserViewHandler) GroupedList(c *gin.Context) {
	viewType, ok := h.viewType(c)
	if !ok {
		return
	}
	scopeID := c.Query("scopeId")
	if scopeID == "" {
		response.BadRequest(c, "scopeId")
		return
	}

	grouped, err := h.svc.GroupedList(c.Request.Context(), scopeID, viewType, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, grouped)
}

// Get 视图详情
func (h *UserViewHandler) Get(c *gin.Context) {
	viewType, ok := h.viewType(c)
	if !ok {
		return
	}

	view, err := h.svc.Get(c.Request.Context(), c.Param("id"), viewType, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, view)
}

// Add 新增视图
func (h *UserViewHandler) Add(c *gin.Context) {
	viewType, ok := h.viewType(c)
	if !ok {
		return
	}

	var req model.UserViewAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.svc.Add(c.Request.Context(), &req, viewType, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, view)
}

// Update 修改视图
func (h *UserViewHandler) Update(c *gin.Context) {
	viewType, ok := h.viewType(c)
	if !ok {
		return
	}

	var req model.UserViewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	view, err := h.svc.Update(c.Request.Context(), &req, viewType, middleware.GetUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, view)
}

// Delete 删除视图
func (h *UserViewHandler) Delete(c *gin.Context) {
	if _, ok := h.viewType(c); !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.GetUserID(c)); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, nil)
}
