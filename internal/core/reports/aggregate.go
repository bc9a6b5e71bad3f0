package reports

import (
	"math"
	"sort"
	"strings"
)

// Aggregate dispatches a raw metrics payload to the aggregator matching the
// category. Unknown categories degrade to the empty result, matching the
// pipeline's "never throw" policy.
func Aggregate(c Category, raw RawMetrics) ProcessedReportData {
	switch c {
	case CategorySystemActivity:
		return AggregateSystemActivity(raw.SystemActivity)
	case CategoryUserEngagement:
		return AggregateUserEngagement(raw.Engagement)
	case CategoryFinancialHealth:
		return AggregateFinancialHealth(raw.Financial)
	case CategoryAIMLAnalytics:
		return AggregateAIUsage(raw.AIUsage)
	case CategoryChatbotAnalytics:
		return AggregateChatbotUsage(raw.Chatbot)
	default:
		return EmptyReportData()
	}
}

// AggregateSystemActivity groups activity rows into per-type buckets.
func AggregateSystemActivity(entries []SystemActivityEntry) ProcessedReportData {
	if len(entries) == 0 {
		return EmptyReportData()
	}
	meta := MetaFor(CategorySystemActivity)

	// Accumulate counts by activity type, preserving first-encountered order.
	counts := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	days := make(map[string]struct{})
	total := 0
	for _, e := range entries {
		if _, seen := counts[e.ActivityType]; !seen {
			order = append(order, e.ActivityType)
		}
		counts[e.ActivityType] += e.Count
		total += e.Count
		if e.ActivityDate != "" {
			days[e.ActivityDate] = struct{}{}
		}
	}

	chartData := make([]ChartPoint, 0, len(order))
	for i, name := range order {
		chartData = append(chartData, ChartPoint{
			Name:  prettifyBucket(name),
			Y:     float64(counts[name]),
			Color: bucketColor(meta, name, i),
		})
	}

	tableData := make([]TableRow, 0, len(entries))
	for _, e := range entries {
		severity := e.Severity
		if severity == "" {
			severity = "info"
		}
		tableData = append(tableData, TableRow{
			"activity_type": prettifyBucket(e.ActivityType),
			"count":         formatCount(e.Count),
			"activity_date": e.ActivityDate,
			"severity":      severity,
		})
	}

	// Ties on the max go to the earliest-encountered type: only a strictly
	// greater count replaces the current winner.
	mostActive := ""
	mostActiveCount := -1
	for _, name := range order {
		if counts[name] > mostActiveCount {
			mostActive = name
			mostActiveCount = counts[name]
		}
	}

	// Whole-number rounding here, unlike the percentage stats elsewhere.
	avgDaily := 0.0
	if len(days) > 0 {
		avgDaily = math.Round(float64(total) / float64(len(days)))
	}

	return ProcessedReportData{
		ChartData: chartData,
		TableData: tableData,
		SummaryStats: SummaryStats{
			"totalActivities":    total,
			"mostActiveType":     prettifyBucket(mostActive),
			"avgDailyActivities": avgDaily,
			"activeDays":         len(days),
		},
	}
}

// AggregateUserEngagement turns the engagement snapshot into fixed metric
// buckets and weekly/monthly engagement rates.
func AggregateUserEngagement(s *UserEngagementSnapshot) ProcessedReportData {
	if s == nil {
		return EmptyReportData()
	}
	meta := MetaFor(CategoryUserEngagement)

	buckets := []struct {
		name  string
		value int
	}{
		{"Active This Week", s.ActiveUsersWeek},
		{"Active This Month", s.ActiveUsersMonth},
		{"New Today", s.NewUsersToday},
	}
	chartData := make([]ChartPoint, 0, len(buckets))
	for i, b := range buckets {
		chartData = append(chartData, ChartPoint{
			Name:  b.name,
			Y:     float64(b.value),
			Color: bucketColor(meta, b.name, i),
		})
	}

	weekRate := percentOf(float64(s.ActiveUsersWeek), float64(s.TotalUsers))
	monthRate := percentOf(float64(s.ActiveUsersMonth), float64(s.TotalUsers))

	tableData := []TableRow{
		{"metric": "Total Users", "value": formatCount(s.TotalUsers)},
		{"metric": "Active This Week", "value": formatCount(s.ActiveUsersWeek)},
		{"metric": "Active This Month", "value": formatCount(s.ActiveUsersMonth)},
		{"metric": "New Users Today", "value": formatCount(s.NewUsersToday)},
		{"metric": "Weekly Engagement", "value": formatPercent(weekRate)},
		{"metric": "Monthly Engagement", "value": formatPercent(monthRate)},
	}

	return ProcessedReportData{
		ChartData: chartData,
		TableData: tableData,
		SummaryStats: SummaryStats{
			"totalUsers":          s.TotalUsers,
			"engagementRateWeek":  weekRate,
			"engagementRateMonth": monthRate,
			"newUsersToday":       s.NewUsersToday,
		},
	}
}

// AggregateFinancialHealth turns the finance snapshot into fixed metric
// buckets with currency formatting on the average amount.
func AggregateFinancialHealth(s *FinancialHealthSnapshot) ProcessedReportData {
	if s == nil {
		return EmptyReportData()
	}
	meta := MetaFor(CategoryFinancialHealth)

	buckets := []struct {
		name  string
		value int
	}{
		{"Transactions Today", s.TransactionsToday},
		{"Transactions This Week", s.TransactionsWeek},
		{"Active Budgets", s.ActiveBudgets},
		{"Active Goals", s.ActiveGoals},
		{"Families", s.TotalFamilies},
	}
	chartData := make([]ChartPoint, 0, len(buckets))
	for i, b := range buckets {
		chartData = append(chartData, ChartPoint{
			Name:  b.name,
			Y:     float64(b.value),
			Color: bucketColor(meta, b.name, i),
		})
	}

	weeklyShare := percentOf(float64(s.TransactionsWeek), float64(s.TotalTransactions))

	tableData := []TableRow{
		{"metric": "Total Transactions", "value": formatCount(s.TotalTransactions)},
		{"metric": "Transactions Today", "value": formatCount(s.TransactionsToday)},
		{"metric": "Transactions This Week", "value": formatCount(s.TransactionsWeek)},
		{"metric": "Active Budgets", "value": formatCount(s.ActiveBudgets)},
		{"metric": "Active Goals", "value": formatCount(s.ActiveGoals)},
		{"metric": "Families", "value": formatCount(s.TotalFamilies)},
		{"metric": "Avg Transaction Amount", "value": formatCurrency(s.AvgTransactionAmount)},
	}

	return ProcessedReportData{
		ChartData: chartData,
		TableData: tableData,
		SummaryStats: SummaryStats{
			"totalTransactions":    s.TotalTransactions,
			"avgTransactionAmount": round2(s.AvgTransactionAmount),
			"weeklyActivityRate":   weeklyShare,
			"activeBudgets":        s.ActiveBudgets,
			"activeGoals":          s.ActiveGoals,
		},
	}
}

// AggregateAIUsage charts the per-service request distribution, falling back
// to a predictions-vs-insights pair when no distribution was recorded.
func AggregateAIUsage(s *AIUsageSnapshot) ProcessedReportData {
	if s == nil {
		return EmptyReportData()
	}
	meta := MetaFor(CategoryAIMLAnalytics)

	var chartData []ChartPoint
	if len(s.ServiceDistribution) > 0 {
		for i, name := range sortedKeys(s.ServiceDistribution) {
			chartData = append(chartData, ChartPoint{
				Name:  prettifyBucket(name),
				Y:     float64(s.ServiceDistribution[name]),
				Color: bucketColor(meta, name, i),
			})
		}
	} else {
		chartData = []ChartPoint{
			{Name: "Predictions", Y: float64(s.TotalPredictions), Color: bucketColor(meta, "prophet", 0)},
			{Name: "Insights", Y: float64(s.TotalInsights), Color: bucketColor(meta, "insights-engine", 1)},
		}
	}

	confidencePct := round2(s.AvgConfidenceScore * 100)

	tableData := []TableRow{
		{"metric": "Total Predictions", "value": formatCount(s.TotalPredictions)},
		{"metric": "Predictions Today", "value": formatCount(s.PredictionsToday)},
		{"metric": "Predictions This Week", "value": formatCount(s.PredictionsWeek)},
		{"metric": "Total Insights", "value": formatCount(s.TotalInsights)},
		{"metric": "Insights Today", "value": formatCount(s.InsightsToday)},
		{"metric": "Avg Confidence", "value": formatPercent(confidencePct)},
	}

	mostUsed := "none"
	if name := topBucket(s.ServiceDistribution); name != "" {
		mostUsed = prettifyBucket(name)
	}

	return ProcessedReportData{
		ChartData: chartData,
		TableData: tableData,
		SummaryStats: SummaryStats{
			"totalPredictions":   s.TotalPredictions,
			"totalInsights":      s.TotalInsights,
			"avgConfidenceScore": confidencePct,
			"mostUsedService":    mostUsed,
		},
	}
}

// AggregateChatbotUsage charts the sentiment distribution, falling back to the
// session-type distribution and finally to a sessions-vs-messages pair.
func AggregateChatbotUsage(s *ChatbotUsageSnapshot) ProcessedReportData {
	if s == nil {
		return EmptyReportData()
	}
	meta := MetaFor(CategoryChatbotAnalytics)

	var chartData []ChartPoint
	switch {
	case len(s.SentimentDistribution) > 0:
		for i, name := range sortedKeys(s.SentimentDistribution) {
			chartData = append(chartData, ChartPoint{
				Name:  prettifyBucket(name),
				Y:     float64(s.SentimentDistribution[name]),
				Color: bucketColor(meta, name, i),
			})
		}
	case len(s.SessionTypeDistribution) > 0:
		for i, name := range sortedKeys(s.SessionTypeDistribution) {
			chartData = append(chartData, ChartPoint{
				Name:  prettifyBucket(name),
				Y:     float64(s.SessionTypeDistribution[name]),
				Color: bucketColor(meta, name, i),
			})
		}
	default:
		chartData = []ChartPoint{
			{Name: "Sessions", Y: float64(s.TotalSessions), Color: bucketColor(meta, "Sessions", 0)},
			{Name: "Messages", Y: float64(s.TotalMessages), Color: bucketColor(meta, "Messages", 1)},
		}
	}

	avgPerSession := round2(ratio(float64(s.TotalMessages), float64(s.TotalSessions)))

	tableData := []TableRow{
		{"metric": "Total Sessions", "value": formatCount(s.TotalSessions)},
		{"metric": "Active Sessions", "value": formatCount(s.ActiveSessions)},
		{"metric": "Total Messages", "value": formatCount(s.TotalMessages)},
		{"metric": "Messages Today", "value": formatCount(s.MessagesToday)},
		{"metric": "Avg Session Rating", "value": formatRating(s.AvgSessionRating)},
	}

	dominant := "none"
	if name := topBucket(s.SentimentDistribution); name != "" {
		dominant = prettifyBucket(name)
	}

	return ProcessedReportData{
		ChartData: chartData,
		TableData: tableData,
		SummaryStats: SummaryStats{
			"totalSessions":         s.TotalSessions,
			"activeSessions":        s.ActiveSessions,
			"avgSessionRating":      round2(s.AvgSessionRating),
			"avgMessagesPerSession": avgPerSession,
			"dominantSentiment":     dominant,
		},
	}
}

// sortedKeys returns map keys in sorted order so distribution output and
// tie-breaks stay deterministic across runs
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// topBucket returns the key with the highest count. Iteration runs in sorted
// key order and only a strictly greater count replaces the winner, so exact
// ties go to the first key in that order.
func topBucket(m map[string]int) string {
	best := ""
	bestCount := -1
	for _, k := range sortedKeys(m) {
		if m[k] > bestCount {
			best = k
			bestCount = m[k]
		}
	}
	return best
}

// prettifyBucket turns a raw bucket key like "transaction_created" into
// "Transaction Created"
func prettifyBucket(raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.ReplaceAll(raw, "_", " ")
	raw = strings.ReplaceAll(raw, "-", " ")
	words := strings.Fields(raw)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
