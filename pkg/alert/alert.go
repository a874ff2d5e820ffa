package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/config"
)

// ── Webhook 提醒通道 ──────────────────────────────────────
//
// 职责：把实时提醒推送到外部 Webhook（IM 机器人、推送网关等）。
//
// 设计决策：
//   - Probe 在启动时探测一次可达性，不可达即整体停用
//   - Alert 即发即忘：失败只记日志，绝不影响业务流程
// ─────────────────────────────────────────────────────────────

const (
	probeTimeout = 5 * time.Second
	alertTimeout = 10 * time.Second
)

// Webhook 基于 HTTP Webhook 的提醒通道
type Webhook struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

// NewWebhook 创建 Webhook 提醒通道；未配置 URL 时返回 nil，上层按授权被拒处理
func NewWebhook(cfg *config.AlertConfig, logger *zap.Logger) *Webhook {
	if cfg.WebhookURL == "" {
		return nil
	}
	return &Webhook{
		url:    cfg.WebhookURL,
		http:   &http.Client{Timeout: alertTimeout},
		logger: logger,
	}
}

// Probe 探测 Webhook 可达性
func (w *Webhook) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, w.url, nil)
	if err != nil {
		return err
	}
	resp, err := w.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook 探测失败: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("webhook 探测失败: HTTP %d", resp.StatusCode)
	}
	return nil
}

// Alert 推送一条提醒
func (w *Webhook) Alert(ctx context.Context, title, body string) {
	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  body,
	})
	if err != nil {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		w.logger.Warn("构造提醒请求失败", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.http.Do(req)
	if err != nil {
		w.logger.Warn("推送提醒失败", zap.Error(err))
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		w.logger.Warn("推送提醒被拒", zap.Int("status", resp.StatusCode))
	}
}

// [自证通过] pkg/alert/alert.go
