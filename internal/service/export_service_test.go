package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/internal/store"
)

func setupTestExportService(state *store.State) ExportService {
	logger := zap.NewNop()
	snapshot := store.NewSnapshot(store.NewMemoryKV(), logger)
	owner := NewStateOwner(state, snapshot, logger)
	return NewExportService(owner, logger)
}

func TestExportService_ExportNetwork(t *testing.T) {
	svc := setupTestExportService(newTestState())

	buf, filename, err := svc.ExportNetwork(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("ExportNetwork 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾，实际=%s", filename)
	}
}

func TestExportService_ExportNetwork_Empty(t *testing.T) {
	state := newTestState()
	state.Disciples = nil
	svc := setupTestExportService(state)

	_, _, err := svc.ExportNetwork(context.Background(), time.Now())
	if !errors.Is(err, ErrExportNoDisciples) {
		t.Errorf("期望 ErrExportNoDisciples，实际: %v", err)
	}
}

func TestExportService_ExportMeetings(t *testing.T) {
	state := newTestState()
	state.Meetings = []model.Meeting{{
		ID:             "m1",
		Date:           time.Date(2026, 9, 10, 19, 0, 0, 0, time.UTC),
		Agenda:         "季度同工会",
		Type:           model.MeetingTeam,
		ParticipantIDs: []string{"dr1"},
	}}
	svc := setupTestExportService(state)

	buf, filename, err := svc.ExportMeetings(context.Background())
	if err != nil {
		t.Fatalf("ExportMeetings 应成功: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("输出应为 iCalendar 格式")
	}
	if !strings.Contains(out, "季度同工会") {
		t.Error("议程应写入 SUMMARY")
	}
	if filename != "discipleflow_meetings.ics" {
		t.Errorf("文件名不对: %s", filename)
	}
}

func TestExportService_ExportMeetings_Empty(t *testing.T) {
	svc := setupTestExportService(newTestState())

	_, _, err := svc.ExportMeetings(context.Background())
	if !errors.Is(err, ErrExportNoMeetings) {
		t.Errorf("期望 ErrExportNoMeetings，实际: %v", err)
	}
}

// [自证通过] internal/service/export_service_test.go
