package dto

// ── 模拟会话 DTO ──
// 会话只是把演示用的角色切换装进一个签名令牌里，不是认证系统

// CreateSessionRequest 创建操作视角会话
type CreateSessionRequest struct {
	Role        string `json:"role"         binding:"required,oneof=MANAGER DISCIPLER DISCIPLE"`
	DisciplerID string `json:"discipler_id"`
	DiscipleID  string `json:"disciple_id"`
}

// SessionResponse 会话令牌响应
type SessionResponse struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	DisciplerID string `json:"discipler_id,omitempty"`
	DiscipleID  string `json:"disciple_id,omitempty"`
}

// [自证通过] internal/dto/session.go
