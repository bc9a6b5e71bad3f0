package reports

// ChartPoint represents one renderable chart value
type ChartPoint struct {
	Name  string  `json:"name"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}

// TableRow maps a column key to its display value
type TableRow map[string]string

// SummaryStats holds category-specific headline numbers
type SummaryStats map[string]interface{}

// ProcessedReportData is the output contract shared by every aggregator
type ProcessedReportData struct {
	ChartData    []ChartPoint `json:"chart_data"`
	TableData    []TableRow   `json:"table_data"`
	SummaryStats SummaryStats `json:"summary_stats"`
}

// EmptyReportData returns the degraded result used for absent/malformed input
func EmptyReportData() ProcessedReportData {
	return ProcessedReportData{
		ChartData:    []ChartPoint{},
		TableData:    []TableRow{},
		SummaryStats: SummaryStats{},
	}
}

// SystemActivityEntry is one pre-grouped activity bucket row from the data layer
type SystemActivityEntry struct {
	ActivityType string `json:"activity_type"`
	Count        int    `json:"count"`
	ActivityDate string `json:"activity_date"` // YYYY-MM-DD
	Severity     string `json:"severity,omitempty"`
}

// UserEngagementSnapshot holds platform-wide engagement counters
type UserEngagementSnapshot struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsersWeek  int `json:"active_users_week"`
	ActiveUsersMonth int `json:"active_users_month"`
	NewUsersToday    int `json:"new_users_today"`
}

// FinancialHealthSnapshot holds platform-wide finance counters
type FinancialHealthSnapshot struct {
	TotalTransactions    int     `json:"total_transactions"`
	TransactionsToday    int     `json:"transactions_today"`
	TransactionsWeek     int     `json:"transactions_week"`
	ActiveBudgets        int     `json:"active_budgets"`
	ActiveGoals          int     `json:"active_goals"`
	TotalFamilies        int     `json:"total_families"`
	AvgTransactionAmount float64 `json:"avg_transaction_amount"`
}

// AIUsageSnapshot holds prediction/insight service counters
type AIUsageSnapshot struct {
	TotalPredictions    int            `json:"total_predictions"`
	PredictionsToday    int            `json:"predictions_today"`
	PredictionsWeek     int            `json:"predictions_week"`
	TotalInsights       int            `json:"total_insights"`
	InsightsToday       int            `json:"insights_today"`
	AvgConfidenceScore  float64        `json:"avg_confidence_score"` // 0..1
	ServiceDistribution map[string]int `json:"ai_service_distribution"`
}

// ChatbotUsageSnapshot holds finance-assistant chatbot counters
type ChatbotUsageSnapshot struct {
	TotalSessions           int            `json:"total_sessions"`
	ActiveSessions          int            `json:"active_sessions"`
	TotalMessages           int            `json:"total_messages"`
	MessagesToday           int            `json:"messages_today"`
	AvgSessionRating        float64        `json:"avg_session_rating"` // 0..5
	SentimentDistribution   map[string]int `json:"sentiment_distribution"`
	SessionTypeDistribution map[string]int `json:"session_type_distribution"`
}

// RawMetrics bundles the per-category payloads; only the field matching the
// requested category is expected to be populated.
type RawMetrics struct {
	SystemActivity []SystemActivityEntry    `json:"system_activity,omitempty"`
	Engagement     *UserEngagementSnapshot  `json:"engagement,omitempty"`
	Financial      *FinancialHealthSnapshot `json:"financial,omitempty"`
	AIUsage        *AIUsageSnapshot         `json:"ai_usage,omitempty"`
	Chatbot        *ChatbotUsageSnapshot    `json:"chatbot,omitempty"`
}
