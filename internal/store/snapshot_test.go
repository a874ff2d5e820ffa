package store

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
)

func testState() *State {
	enc := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	return &State{
		Disciplers: []model.Discipler{
			{
				ID: "dr1", Name: "张建国", Gender: model.GenderMale, Age: 34,
				Interests: []string{"神学"}, Since: "2022-01-10",
				MaxDisciples: 3, CurrentDisciplesCount: 1, Bio: "带领者",
			},
		},
		Disciples: []model.Disciple{
			{
				ID: "d1", Name: "陈以诺", Gender: model.GenderMale, Age: 31,
				Interests: []string{"足球"}, JoinedDate: "2026-01-01",
				StartDate: "2026-02-01", Status: model.StatusActive,
				DisciplerID: "dr1", CompletedLessons: []int{1, 2}, Progress: 17,
				Reports: []model.DailyReport{
					{ID: "r1", Date: enc, Type: model.ReportGoodNews, Content: "好消息", ReadByDiscipler: true},
				},
				Encounters: []model.Encounter{
					{ID: "e1", Date: enc, Summary: "第一次面谈", LessonsCovered: []int{1, 2}},
				},
			},
		},
		Settings: model.NetworkSettings{TargetDurationWeeks: 16},
		Meetings: []model.Meeting{
			{
				ID: "m1", Date: enc, Agenda: "导师月会", Type: model.MeetingTeam,
				ParticipantIDs: []string{"dr1"},
				NotifiedStages: []model.MeetingStage{model.StageDefinition},
			},
		},
		Notifications: []model.AppNotification{
			{
				ID: "n1", Title: "标题", Message: "内容", Timestamp: enc,
				Category: model.CategoryReport, TargetRole: model.RoleDiscipler, TargetID: "dr1",
			},
		},
		Materials: []model.Material{
			{ID: "mt1", Title: "导师手册", Visibility: model.VisibilityDisciplerOnly, Category: "指南"},
		},
	}
}

// ── 往返持久化测试 ──

func TestSnapshot_RoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	snap := NewSnapshot(kv, zap.NewNop())
	ctx := context.Background()

	original := testState()
	if err := snap.Save(ctx, original); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	loaded := snap.Load(ctx)
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("往返后状态应逐字段一致\n保存: %+v\n加载: %+v", original, loaded)
	}
}

// 枚举值应以字面量标签持久化
func TestSnapshot_EnumLiterals(t *testing.T) {
	kv := NewMemoryKV()
	snap := NewSnapshot(kv, zap.NewNop())
	ctx := context.Background()

	if err := snap.Save(ctx, testState()); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	raw, err := kv.Get(ctx, KeyDisciples)
	if err != nil {
		t.Fatalf("读取 %s 失败: %v", KeyDisciples, err)
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("持久化内容应为合法 JSON: %v", err)
	}
	if decoded[0]["status"] != "ACTIVE" {
		t.Errorf("status 应以字面量 ACTIVE 存储，实际 %v", decoded[0]["status"])
	}
	if decoded[0]["gender"] != "MALE" {
		t.Errorf("gender 应以字面量 MALE 存储，实际 %v", decoded[0]["gender"])
	}
}

// ── 回退测试 ──

func TestSnapshot_Load_EmptyStoreFallsBackToSeed(t *testing.T) {
	snap := NewSnapshot(NewMemoryKV(), zap.NewNop())

	state := snap.Load(context.Background())
	if len(state.Disciplers) == 0 {
		t.Error("空存储时应回退到导师种子数据")
	}
	if len(state.Disciples) == 0 {
		t.Error("空存储时应回退到门徒种子数据")
	}
	if state.Settings.TargetDurationWeeks != model.DefaultTargetWeeks {
		t.Errorf("空存储时设置应为默认 %d 周，实际 %d",
			model.DefaultTargetWeeks, state.Settings.TargetDurationWeeks)
	}
	if len(state.Meetings) != 0 || len(state.Notifications) != 0 {
		t.Error("会议与通知应回退为空序列")
	}
}

func TestSnapshot_Load_CorruptValueFallsBack(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	_ = kv.Set(ctx, KeySettings, []byte("{不是JSON"))

	snap := NewSnapshot(kv, zap.NewNop())
	state := snap.Load(ctx)
	if state.Settings.TargetDurationWeeks != model.DefaultTargetWeeks {
		t.Errorf("损坏的设置值应静默回退默认，实际 %d", state.Settings.TargetDurationWeeks)
	}
}

// 单键损坏不影响其他键加载
func TestSnapshot_Load_PartialCorruption(t *testing.T) {
	kv := NewMemoryKV()
	snap := NewSnapshot(kv, zap.NewNop())
	ctx := context.Background()

	if err := snap.Save(ctx, testState()); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}
	_ = kv.Set(ctx, KeyMeetings, []byte("垃圾数据"))

	state := snap.Load(ctx)
	if len(state.Meetings) != 0 {
		t.Errorf("损坏的会议键应回退为空，实际 %d 条", len(state.Meetings))
	}
	if len(state.Disciples) != 1 || state.Disciples[0].ID != "d1" {
		t.Error("其余键应正常加载")
	}
}

// [自证通过] internal/store/snapshot_test.go
