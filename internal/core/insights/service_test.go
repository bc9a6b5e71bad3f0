package insights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

func TestSummarizeReportFallbackWithoutAPIKey(t *testing.T) {
	svc := NewService("", "")

	insight, err := svc.SummarizeReport(context.Background(), reports.CategoryUserEngagement, reports.ProcessedReportData{
		SummaryStats: reports.SummaryStats{
			"totalUsers":         100,
			"engagementRateWeek": 40.0,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "fallback", insight.GeneratedBy)
	assert.Equal(t, "User Engagement Summary", insight.Title)
	assert.Contains(t, insight.Description, "totalUsers: 100")
	assert.Contains(t, insight.Description, "engagementRateWeek: 40")
}

func TestSummarizeReportFallbackEmptyStats(t *testing.T) {
	svc := NewService("", "")

	insight, err := svc.SummarizeReport(context.Background(), reports.CategorySystemActivity, reports.ProcessedReportData{})
	require.NoError(t, err)

	assert.Equal(t, "fallback", insight.GeneratedBy)
	assert.Contains(t, insight.Description, "No data")
}

func TestSummarizeReportFallbackDeterministic(t *testing.T) {
	svc := NewService("", "")
	data := reports.ProcessedReportData{
		SummaryStats: reports.SummaryStats{"b": 2, "a": 1, "c": 3},
	}

	first, err := svc.SummarizeReport(context.Background(), reports.CategoryAIMLAnalytics, data)
	require.NoError(t, err)
	second, err := svc.SummarizeReport(context.Background(), reports.CategoryAIMLAnalytics, data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildPromptIncludesBreakdown(t *testing.T) {
	prompt := buildPrompt(reports.CategoryChatbotAnalytics, reports.ProcessedReportData{
		SummaryStats: reports.SummaryStats{"totalSessions": 12},
		ChartData: []reports.ChartPoint{
			{Name: "Positive", Y: 8},
			{Name: "Negative", Y: 4},
		},
	})

	assert.Contains(t, prompt, "Chatbot Usage")
	assert.Contains(t, prompt, "- totalSessions: 12")
	assert.Contains(t, prompt, "- Positive: 8")
}
