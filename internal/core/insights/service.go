package insights

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

// Insight is a short narrative summary of one admin report
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	GeneratedBy string `json:"generated_by"` // "openai" or "fallback"
}

// Service generates narrative summaries for admin reports. Without an API
// key it degrades to a deterministic template summary instead of failing.
type Service struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewService creates a new insights service. An empty apiKey disables the
// OpenAI integration and keeps only the template fallback.
func NewService(apiKey, model string) *Service {
	s := &Service{
		model:       model,
		temperature: 0.7,
		maxTokens:   300,
	}
	if s.model == "" {
		s.model = "gpt-4o-mini"
	}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// SummarizeReport produces a narrative insight for a generated report
func (s *Service) SummarizeReport(ctx context.Context, category reports.Category, data reports.ProcessedReportData) (*Insight, error) {
	if s.client == nil {
		return s.fallbackInsight(category, data), nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(category, data)},
		},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		// API trouble is not fatal for an admin dashboard; degrade quietly
		return s.fallbackInsight(category, data), nil
	}
	if len(resp.Choices) == 0 {
		return s.fallbackInsight(category, data), nil
	}

	return &Insight{
		Title:       fmt.Sprintf("%s Summary", reports.MetaFor(category).Title),
		Description: strings.TrimSpace(resp.Choices[0].Message.Content),
		Category:    string(category),
		GeneratedBy: "openai",
	}, nil
}

// fallbackInsight renders a deterministic summary from the stats alone
func (s *Service) fallbackInsight(category reports.Category, data reports.ProcessedReportData) *Insight {
	meta := reports.MetaFor(category)

	if len(data.SummaryStats) == 0 {
		return &Insight{
			Title:       fmt.Sprintf("%s Summary", meta.Title),
			Description: "No data is available for this report yet.",
			Category:    string(category),
			GeneratedBy: "fallback",
		}
	}

	parts := make([]string, 0, len(data.SummaryStats))
	for _, key := range sortedStatKeys(data.SummaryStats) {
		parts = append(parts, fmt.Sprintf("%s: %v", key, data.SummaryStats[key]))
	}

	return &Insight{
		Title:       fmt.Sprintf("%s Summary", meta.Title),
		Description: fmt.Sprintf("Key figures for %s: %s.", strings.ToLower(meta.Title), strings.Join(parts, ", ")),
		Category:    string(category),
		GeneratedBy: "fallback",
	}
}
