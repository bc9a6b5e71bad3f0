package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmptyInputs(t *testing.T) {
	for _, c := range Categories {
		got := Aggregate(c, RawMetrics{})
		assert.Empty(t, got.ChartData, "category %s", c)
		assert.Empty(t, got.TableData, "category %s", c)
		assert.Empty(t, got.SummaryStats, "category %s", c)
	}
}

func TestAggregateUnknownCategory(t *testing.T) {
	got := Aggregate(Category("made-up"), RawMetrics{
		Engagement: &UserEngagementSnapshot{TotalUsers: 10},
	})
	assert.Equal(t, EmptyReportData(), got)
}

func TestSystemActivityConservesTotals(t *testing.T) {
	entries := []SystemActivityEntry{
		{ActivityType: "login", Count: 10, ActivityDate: "2026-08-01"},
		{ActivityType: "transaction_created", Count: 7, ActivityDate: "2026-08-01"},
		{ActivityType: "login", Count: 3, ActivityDate: "2026-08-02"},
	}
	got := AggregateSystemActivity(entries)

	sum := 0.0
	for _, p := range got.ChartData {
		sum += p.Y
	}
	assert.Equal(t, 20.0, sum)
	assert.Equal(t, 20, got.SummaryStats["totalActivities"])
	assert.Len(t, got.TableData, 3)
}

func TestSystemActivityBucketsKeepFirstSeenOrder(t *testing.T) {
	entries := []SystemActivityEntry{
		{ActivityType: "report_viewed", Count: 1, ActivityDate: "2026-08-01"},
		{ActivityType: "login", Count: 5, ActivityDate: "2026-08-01"},
		{ActivityType: "report_viewed", Count: 2, ActivityDate: "2026-08-02"},
	}
	got := AggregateSystemActivity(entries)

	require.Len(t, got.ChartData, 2)
	assert.Equal(t, "Report Viewed", got.ChartData[0].Name)
	assert.Equal(t, "Login", got.ChartData[1].Name)
}

func TestSystemActivityMostActiveTieGoesToFirstSeen(t *testing.T) {
	entries := []SystemActivityEntry{
		{ActivityType: "logout", Count: 4, ActivityDate: "2026-08-01"},
		{ActivityType: "login", Count: 4, ActivityDate: "2026-08-01"},
	}
	got := AggregateSystemActivity(entries)
	assert.Equal(t, "Logout", got.SummaryStats["mostActiveType"])
}

func TestSystemActivityAvgDailyWholeNumber(t *testing.T) {
	entries := []SystemActivityEntry{
		{ActivityType: "login", Count: 5, ActivityDate: "2026-08-01"},
		{ActivityType: "login", Count: 2, ActivityDate: "2026-08-02"},
	}
	got := AggregateSystemActivity(entries)
	// 7 activities over 2 days rounds to 4, not 3.5
	assert.Equal(t, 4.0, got.SummaryStats["avgDailyActivities"])
}

func TestSystemActivityNoDatesAvoidsDivisionByZero(t *testing.T) {
	entries := []SystemActivityEntry{
		{ActivityType: "login", Count: 5},
	}
	got := AggregateSystemActivity(entries)
	assert.Equal(t, 0.0, got.SummaryStats["avgDailyActivities"])
}

func TestUserEngagementRates(t *testing.T) {
	got := AggregateUserEngagement(&UserEngagementSnapshot{
		TotalUsers:       100,
		ActiveUsersWeek:  40,
		ActiveUsersMonth: 60,
		NewUsersToday:    5,
	})

	assert.Equal(t, 40.0, got.SummaryStats["engagementRateWeek"])
	assert.Equal(t, 60.0, got.SummaryStats["engagementRateMonth"])
	assert.Equal(t, 100, got.SummaryStats["totalUsers"])
}

func TestUserEngagementZeroUsers(t *testing.T) {
	got := AggregateUserEngagement(&UserEngagementSnapshot{})
	assert.Equal(t, 0.0, got.SummaryStats["engagementRateWeek"])
	assert.NotEmpty(t, got.TableData)
}

func TestUserEngagementTwoDecimalRounding(t *testing.T) {
	got := AggregateUserEngagement(&UserEngagementSnapshot{
		TotalUsers:      3,
		ActiveUsersWeek: 1,
	})
	// 33.333...% rounds to 33.33, not 33
	assert.Equal(t, 33.33, got.SummaryStats["engagementRateWeek"])
}

func TestFinancialHealthCurrencyFormatting(t *testing.T) {
	got := AggregateFinancialHealth(&FinancialHealthSnapshot{
		TotalTransactions:    50,
		AvgTransactionAmount: 12.345,
	})

	var avgRow TableRow
	for _, row := range got.TableData {
		if row["metric"] == "Avg Transaction Amount" {
			avgRow = row
		}
	}
	require.NotNil(t, avgRow)
	assert.Equal(t, "$12.35", avgRow["value"])
	assert.Equal(t, 12.35, got.SummaryStats["avgTransactionAmount"])
}

func TestFinancialHealthZeroTotals(t *testing.T) {
	got := AggregateFinancialHealth(&FinancialHealthSnapshot{})
	assert.Equal(t, 0.0, got.SummaryStats["weeklyActivityRate"])
}

func TestAIUsageServiceDistribution(t *testing.T) {
	got := AggregateAIUsage(&AIUsageSnapshot{
		TotalPredictions: 10,
		ServiceDistribution: map[string]int{
			"prophet":        7,
			"prediction-api": 3,
		},
	})

	require.Len(t, got.ChartData, 2)
	// sorted key order keeps output deterministic
	assert.Equal(t, "Prediction Api", got.ChartData[0].Name)
	assert.Equal(t, "Prophet", got.ChartData[1].Name)
	assert.Equal(t, "Prophet", got.SummaryStats["mostUsedService"])
}

func TestAIUsageFallsBackToPredictionsVsInsights(t *testing.T) {
	got := AggregateAIUsage(&AIUsageSnapshot{
		TotalPredictions: 12,
		TotalInsights:    4,
	})

	require.Len(t, got.ChartData, 2)
	assert.Equal(t, "Predictions", got.ChartData[0].Name)
	assert.Equal(t, 12.0, got.ChartData[0].Y)
	assert.Equal(t, "Insights", got.ChartData[1].Name)
	assert.Equal(t, 4.0, got.ChartData[1].Y)
	assert.Equal(t, "none", got.SummaryStats["mostUsedService"])
}

func TestAIUsageConfidencePercentage(t *testing.T) {
	got := AggregateAIUsage(&AIUsageSnapshot{AvgConfidenceScore: 0.875})
	assert.Equal(t, 87.5, got.SummaryStats["avgConfidenceScore"])

	var row TableRow
	for _, r := range got.TableData {
		if r["metric"] == "Avg Confidence" {
			row = r
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, "87.5%", row["value"])
}

func TestChatbotUsageSentimentChart(t *testing.T) {
	got := AggregateChatbotUsage(&ChatbotUsageSnapshot{
		TotalSessions: 10,
		SentimentDistribution: map[string]int{
			"positive": 6,
			"negative": 1,
			"neutral":  3,
		},
	})

	require.Len(t, got.ChartData, 3)
	assert.Equal(t, "Negative", got.ChartData[0].Name)
	assert.Equal(t, "#EF4444", got.ChartData[0].Color)
	assert.Equal(t, "Positive", got.SummaryStats["dominantSentiment"])
}

func TestChatbotUsageFallbackChain(t *testing.T) {
	bySessionType := AggregateChatbotUsage(&ChatbotUsageSnapshot{
		SessionTypeDistribution: map[string]int{"budgeting": 4, "general": 9},
	})
	require.Len(t, bySessionType.ChartData, 2)
	assert.Equal(t, "Budgeting", bySessionType.ChartData[0].Name)

	bare := AggregateChatbotUsage(&ChatbotUsageSnapshot{
		TotalSessions: 3,
		TotalMessages: 21,
	})
	require.Len(t, bare.ChartData, 2)
	assert.Equal(t, "Sessions", bare.ChartData[0].Name)
	assert.Equal(t, "Messages", bare.ChartData[1].Name)
	assert.Equal(t, 7.0, bare.SummaryStats["avgMessagesPerSession"])
}

func TestChatbotUsageRatingFormat(t *testing.T) {
	got := AggregateChatbotUsage(&ChatbotUsageSnapshot{
		TotalSessions:    1,
		AvgSessionRating: 4.25,
	})

	var row TableRow
	for _, r := range got.TableData {
		if r["metric"] == "Avg Session Rating" {
			row = r
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, "4.2/5", row["value"])
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	raw := RawMetrics{
		SystemActivity: []SystemActivityEntry{
			{ActivityType: "login", Count: 2, ActivityDate: "2026-08-01"},
			{ActivityType: "error", Count: 1, ActivityDate: "2026-08-02", Severity: "error"},
		},
	}
	first := Aggregate(CategorySystemActivity, raw)
	second := Aggregate(CategorySystemActivity, raw)
	assert.Equal(t, first, second)
}
