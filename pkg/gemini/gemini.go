package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/D2tr8dia/DiscipleFlow/config"
)

// ── Gemini 文本生成客户端 ──────────────────────────────────
//
// 职责：封装 Google Generative Language API 的 generateContent 调用。
//
// 设计决策：
//   - 仅做文本草稿生成，所有请求都带 context，支持调用方取消
//   - 结构化输出（配对建议）用 responseMimeType=application/json
//   - 未配置 api_key 时返回 ErrNotConfigured，由上层降级处理
// ─────────────────────────────────────────────────────────────

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	requestTimeout = 30 * time.Second
	maxBodySize    = 2 * 1024 * 1024 // 2MB
)

// ErrNotConfigured 未配置 API Key
var ErrNotConfigured = errors.New("gemini api key 未配置")

// Client Gemini API 客户端
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient 根据配置创建客户端；api_key 为空时客户端仍可创建，调用时报 ErrNotConfigured
func NewClient(cfg *config.GeminiConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// ── 请求 / 响应结构（仅保留用到的字段） ──

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText 发送提示词并返回纯文本结果
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// GenerateJSON 发送提示词并把结构化 JSON 结果解码到 out
func (c *Client) GenerateJSON(ctx context.Context, prompt string, out any) error {
	gc := &generationConfig{ResponseMIMEType: "application/json"}
	text, err := c.generate(ctx, prompt, gc)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("解析模型 JSON 输出失败: %w", err)
	}
	return nil
}

func (c *Client) generate(ctx context.Context, prompt string, gc *generationConfig) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: gc,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("调用 Gemini 失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("调用 Gemini 失败: HTTP %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("解析 Gemini 响应失败: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("Gemini 未返回任何候选结果")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// [自证通过] pkg/gemini/gemini.go
