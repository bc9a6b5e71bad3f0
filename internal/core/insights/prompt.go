package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

const systemPrompt = "You are an analytics assistant for the BudgetMe admin dashboard. " +
	"Summarize the given report metrics for a platform administrator in at most 100 words. " +
	"Be factual, mention the most important numbers, and end with one actionable observation."

// buildPrompt flattens a report's stats and chart buckets into a prompt
func buildPrompt(category reports.Category, data reports.ProcessedReportData) string {
	var b strings.Builder

	meta := reports.MetaFor(category)
	fmt.Fprintf(&b, "Report: %s\n\nSummary statistics:\n", meta.Title)
	for _, key := range sortedStatKeys(data.SummaryStats) {
		fmt.Fprintf(&b, "- %s: %v\n", key, data.SummaryStats[key])
	}

	if len(data.ChartData) > 0 {
		b.WriteString("\nBreakdown:\n")
		for _, p := range data.ChartData {
			fmt.Fprintf(&b, "- %s: %.0f\n", p.Name, p.Y)
		}
	}

	return b.String()
}

func sortedStatKeys(stats reports.SummaryStats) []string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
