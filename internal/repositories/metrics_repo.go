package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/budgetme/admin-analytics-be/internal/core/analytics"
	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

// MetricsRepo produces the raw metrics payload for each report category.
// Timeframe filtering happens here; the aggregation pipeline downstream
// assumes payloads already reflect the selected timeframe.
type MetricsRepo interface {
	FetchMetrics(category reports.Category, timeframe reports.Timeframe) (reports.RawMetrics, error)
	FetchSystemActivity(timeframe reports.Timeframe) ([]reports.SystemActivityEntry, error)
	FetchUserEngagement() (*reports.UserEngagementSnapshot, error)
	FetchFinancialHealth(timeframe reports.Timeframe) (*reports.FinancialHealthSnapshot, error)
	FetchAIUsage(timeframe reports.Timeframe) (*reports.AIUsageSnapshot, error)
	FetchChatbotUsage(timeframe reports.Timeframe) (*reports.ChatbotUsageSnapshot, error)
}

type metricsRepo struct {
	agg *analytics.Aggregator
}

// NewMetricsRepo creates a new metrics repository
func NewMetricsRepo(db *gorm.DB) MetricsRepo {
	return &metricsRepo{agg: analytics.NewAggregator(db)}
}

// FetchMetrics fetches only the payload variant the category needs
func (r *metricsRepo) FetchMetrics(category reports.Category, timeframe reports.Timeframe) (reports.RawMetrics, error) {
	var raw reports.RawMetrics
	var err error

	switch category {
	case reports.CategorySystemActivity:
		raw.SystemActivity, err = r.FetchSystemActivity(timeframe)
	case reports.CategoryUserEngagement:
		raw.Engagement, err = r.FetchUserEngagement()
	case reports.CategoryFinancialHealth:
		raw.Financial, err = r.FetchFinancialHealth(timeframe)
	case reports.CategoryAIMLAnalytics:
		raw.AIUsage, err = r.FetchAIUsage(timeframe)
	case reports.CategoryChatbotAnalytics:
		raw.Chatbot, err = r.FetchChatbotUsage(timeframe)
	default:
		err = fmt.Errorf("unknown report category: %s", category)
	}

	return raw, err
}

// FetchSystemActivity loads activity rows grouped by type, severity and day
func (r *metricsRepo) FetchSystemActivity(timeframe reports.Timeframe) ([]reports.SystemActivityEntry, error) {
	rows, err := r.agg.Aggregate(analytics.AggregateQuery{
		Table:      "activity_logs",
		GroupBy:    []string{"activity_type", "severity", "DATE(created_at) AS activity_date"},
		Aggregates: map[string]string{"cnt": "COUNT(*)"},
		DateRange:  analytics.RangeForTimeframe(string(timeframe)),
		OrderBy:    []string{"activity_date ASC"},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch system activity: %w", err)
	}

	entries := make([]reports.SystemActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reports.SystemActivityEntry{
			ActivityType: analytics.ToString(row["activity_type"]),
			Count:        analytics.ToInt(row["cnt"]),
			ActivityDate: analytics.ToString(row["activity_date"]),
			Severity:     analytics.ToString(row["severity"]),
		})
	}

	return entries, nil
}

// FetchUserEngagement counts platform users by activity window
func (r *metricsRepo) FetchUserEngagement() (*reports.UserEngagementSnapshot, error) {
	total, err := r.agg.Count("user_profiles", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch engagement: %w", err)
	}

	week := analytics.WeekRange("last_active_at")
	activeWeek, err := r.agg.Count("user_profiles", nil, week)
	if err != nil {
		return nil, fmt.Errorf("fetch engagement: %w", err)
	}

	month := analytics.RangeForTimeframe("30d")
	month.Field = "last_active_at"
	activeMonth, err := r.agg.Count("user_profiles", nil, month)
	if err != nil {
		return nil, fmt.Errorf("fetch engagement: %w", err)
	}

	newToday, err := r.agg.Count("user_profiles", nil, analytics.TodayRange("created_at"))
	if err != nil {
		return nil, fmt.Errorf("fetch engagement: %w", err)
	}

	return &reports.UserEngagementSnapshot{
		TotalUsers:       int(total),
		ActiveUsersWeek:  int(activeWeek),
		ActiveUsersMonth: int(activeMonth),
		NewUsersToday:    int(newToday),
	}, nil
}

// FetchFinancialHealth counts transactions, budgets, goals and families
func (r *metricsRepo) FetchFinancialHealth(timeframe reports.Timeframe) (*reports.FinancialHealthSnapshot, error) {
	txRange := analytics.RangeForTimeframe(string(timeframe))
	txRange.Field = "transaction_date"

	total, err := r.agg.Count("transactions", nil, txRange)
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	today, err := r.agg.Count("transactions", nil, analytics.TodayRange("transaction_date"))
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	week, err := r.agg.Count("transactions", nil, analytics.WeekRange("transaction_date"))
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	budgets, err := r.agg.Count("budgets", map[string]interface{}{"status": "active"}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	goals, err := r.agg.Count("goals", map[string]interface{}{"status": "active"}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	families, err := r.agg.Count("families", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}
	avgAmount, err := r.agg.Average("transactions", "amount", nil, txRange)
	if err != nil {
		return nil, fmt.Errorf("fetch financial health: %w", err)
	}

	return &reports.FinancialHealthSnapshot{
		TotalTransactions:    int(total),
		TransactionsToday:    int(today),
		TransactionsWeek:     int(week),
		ActiveBudgets:        int(budgets),
		ActiveGoals:          int(goals),
		TotalFamilies:        int(families),
		AvgTransactionAmount: avgAmount,
	}, nil
}

// FetchAIUsage counts predictions and insights plus the per-service split
func (r *metricsRepo) FetchAIUsage(timeframe reports.Timeframe) (*reports.AIUsageSnapshot, error) {
	predRange := analytics.RangeForTimeframe(string(timeframe))

	totalPred, err := r.agg.Count("predictions", nil, predRange)
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	predToday, err := r.agg.Count("predictions", nil, analytics.TodayRange(""))
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	predWeek, err := r.agg.Count("predictions", nil, analytics.WeekRange(""))
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	totalInsights, err := r.agg.Count("ai_insights", nil, analytics.RangeForTimeframe(string(timeframe)))
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	insightsToday, err := r.agg.Count("ai_insights", nil, analytics.TodayRange(""))
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	avgConfidence, err := r.agg.Average("predictions", "confidence_score", nil, predRange)
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}
	distribution, err := r.agg.Distribution("predictions", "service_name", nil, predRange)
	if err != nil {
		return nil, fmt.Errorf("fetch ai usage: %w", err)
	}

	return &reports.AIUsageSnapshot{
		TotalPredictions:    int(totalPred),
		PredictionsToday:    int(predToday),
		PredictionsWeek:     int(predWeek),
		TotalInsights:       int(totalInsights),
		InsightsToday:       int(insightsToday),
		AvgConfidenceScore:  avgConfidence,
		ServiceDistribution: distribution,
	}, nil
}

// FetchChatbotUsage counts chat sessions/messages plus the sentiment and
// session-type splits
func (r *metricsRepo) FetchChatbotUsage(timeframe reports.Timeframe) (*reports.ChatbotUsageSnapshot, error) {
	sessionRange := analytics.RangeForTimeframe(string(timeframe))

	totalSessions, err := r.agg.Count("chat_sessions", nil, sessionRange)
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	activeSessions, err := r.agg.Count("chat_sessions", map[string]interface{}{"status": "active"}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	totalMessages, err := r.agg.Count("chat_messages", nil, analytics.RangeForTimeframe(string(timeframe)))
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	messagesToday, err := r.agg.Count("chat_messages", nil, analytics.TodayRange(""))
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	avgRating, err := r.agg.Average("chat_sessions", "rating", map[string]interface{}{"rating IS NOT NULL": nil}, sessionRange)
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	sentiment, err := r.agg.Distribution("chat_sessions", "sentiment", nil, sessionRange)
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}
	sessionTypes, err := r.agg.Distribution("chat_sessions", "session_type", nil, sessionRange)
	if err != nil {
		return nil, fmt.Errorf("fetch chatbot usage: %w", err)
	}

	return &reports.ChatbotUsageSnapshot{
		TotalSessions:           int(totalSessions),
		ActiveSessions:          int(activeSessions),
		TotalMessages:           int(totalMessages),
		MessagesToday:           int(messagesToday),
		AvgSessionRating:        avgRating,
		SentimentDistribution:   sentiment,
		SessionTypeDistribution: sessionTypes,
	}, nil
}
