package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/internal/service"
	"github.com/D2tr8dia/DiscipleFlow/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock NetworkService ──

type mockNetworkService struct {
	stats          dto.DashboardStats
	disciplers     []dto.DisciplerResponse
	disciples      []model.Disciple
	disciple       *model.Disciple
	discipleErr    error
	eligible       []model.Discipler
	eligibleErr    error
	monitoring     []dto.MonitoringEntry
	meetings       []model.Meeting
	settings       model.NetworkSettings
	inbox          []model.AppNotification
	addDiscipler   *model.Discipler
	addDisciplerE  error
	addDisciple    *model.Disciple
	addDiscipleE   error
	pairErr        error
	encounter      *model.Disciple
	encounterErr   error
	finishErr      error
	reportErr      error
	meeting        *model.Meeting
	meetingErr     error
	reminderCount  int
	updSettings    model.NetworkSettings
	updSettingsErr error
	markReadErr    error
	clearErr       error
}

func (m *mockNetworkService) DashboardStats(_ context.Context) dto.DashboardStats { return m.stats }
func (m *mockNetworkService) ListDisciplers(_ context.Context) []dto.DisciplerResponse {
	return m.disciplers
}
func (m *mockNetworkService) ListDisciples(_ context.Context) []model.Disciple { return m.disciples }
func (m *mockNetworkService) GetDisciple(_ context.Context, _ string) (*model.Disciple, error) {
	return m.disciple, m.discipleErr
}
func (m *mockNetworkService) DisciplesOf(_ context.Context, _ string) []model.Disciple {
	return m.disciples
}
func (m *mockNetworkService) EligibleDisciplers(_ context.Context, _ string) ([]model.Discipler, error) {
	return m.eligible, m.eligibleErr
}
func (m *mockNetworkService) Monitoring(_ context.Context, _ time.Time) []dto.MonitoringEntry {
	return m.monitoring
}
func (m *mockNetworkService) ListMeetings(_ context.Context) []model.Meeting { return m.meetings }
func (m *mockNetworkService) MeetingsOf(_ context.Context, _ string) []model.Meeting {
	return m.meetings
}
func (m *mockNetworkService) Settings(_ context.Context) model.NetworkSettings { return m.settings }
func (m *mockNetworkService) Inbox(_ context.Context, _ service.Viewer) []model.AppNotification {
	return m.inbox
}
func (m *mockNetworkService) AddDiscipler(_ context.Context, _ *dto.CreateDisciplerRequest) (*model.Discipler, error) {
	return m.addDiscipler, m.addDisciplerE
}
func (m *mockNetworkService) AddDisciple(_ context.Context, _ *dto.CreateDiscipleRequest) (*model.Disciple, error) {
	return m.addDisciple, m.addDiscipleE
}
func (m *mockNetworkService) Pair(_ context.Context, _, _ string) error { return m.pairErr }
func (m *mockNetworkService) RegisterEncounter(_ context.Context, _ string, _ *dto.RegisterEncounterRequest) (*model.Disciple, error) {
	return m.encounter, m.encounterErr
}
func (m *mockNetworkService) FinishDiscipleship(_ context.Context, _, _ string) error {
	return m.finishErr
}
func (m *mockNetworkService) SendReport(_ context.Context, _ string, _ *dto.SendReportRequest) error {
	return m.reportErr
}
func (m *mockNetworkService) AddMeeting(_ context.Context, _ *dto.CreateMeetingRequest) (*model.Meeting, error) {
	return m.meeting, m.meetingErr
}
func (m *mockNetworkService) CheckMeetingReminders(_ context.Context, _ time.Time) int {
	return m.reminderCount
}
func (m *mockNetworkService) UpdateSettings(_ context.Context, _ int) (model.NetworkSettings, error) {
	return m.updSettings, m.updSettingsErr
}
func (m *mockNetworkService) MarkNotificationRead(_ context.Context, _ string) error {
	return m.markReadErr
}
func (m *mockNetworkService) ClearAllNotifications(_ context.Context) error { return m.clearErr }

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// NetworkHandler Tests
// ═══════════════════════════════════════════════════════════

func TestNetworkHandler_PairDisciple_Success(t *testing.T) {
	h := NewNetworkHandler(&mockNetworkService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/disciples/d1/pair", jsonBody(dto.PairRequest{
		DisciplerID: "dr1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/disciples/:id/pair", h.PairDisciple)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestNetworkHandler_PairDisciple_Full(t *testing.T) {
	h := NewNetworkHandler(&mockNetworkService{pairErr: service.ErrDisciplerFull})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/disciples/d1/pair", jsonBody(dto.PairRequest{
		DisciplerID: "dr2",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/disciples/:id/pair", h.PairDisciple)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != response.CodeConflict {
		t.Errorf("expected code %d, got %d", response.CodeConflict, resp.Code)
	}
}

func TestNetworkHandler_GetDisciple_NotFound(t *testing.T) {
	h := NewNetworkHandler(&mockNetworkService{discipleErr: service.ErrDiscipleNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/disciples/nope", nil)

	r := gin.New()
	r.GET("/disciples/:id", h.GetDisciple)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestNetworkHandler_RegisterEncounter_InvalidLessons(t *testing.T) {
	h := NewNetworkHandler(&mockNetworkService{encounterErr: service.ErrInvalidLessonNumbers})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/disciples/d2/encounters", jsonBody(dto.RegisterEncounterRequest{
		LessonsCovered: []int{0, 13},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/disciples/:id/encounters", h.RegisterEncounter)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestNetworkHandler_CreateDiscipler_BadJSON(t *testing.T) {
	h := NewNetworkHandler(&mockNetworkService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/disciplers", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/disciplers", h.CreateDiscipler)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// NotificationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestNotificationHandler_ListNotifications_WithViewer(t *testing.T) {
	mock := &mockNetworkService{inbox: []model.AppNotification{{ID: "n1"}}}
	h := NewNotificationHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications", nil)

	r := gin.New()
	r.GET("/notifications", func(c *gin.Context) {
		c.Set("role", "MANAGER")
		h.ListNotifications(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestNotificationHandler_ListNotifications_MissingSession(t *testing.T) {
	h := NewNotificationHandler(&mockNetworkService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/notifications", nil)

	r := gin.New()
	r.GET("/notifications", h.ListNotifications)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestNotificationHandler_UpdateSettings_OutOfRange(t *testing.T) {
	mock := &mockNetworkService{updSettingsErr: service.ErrSettingsOutOfRange}
	h := NewNotificationHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/settings", jsonBody(dto.UpdateSettingsRequest{
		TargetDurationWeeks: 30,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/settings", h.UpdateSettings)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// [自证通过] internal/api/handler/handler_test.go
