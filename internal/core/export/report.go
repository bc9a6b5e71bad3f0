package export

import (
	"fmt"
	"sort"
	"time"
	"unicode"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

// FromReport builds the export document for one processed admin report.
// Column order comes from the category registry since table rows are maps.
func FromReport(category reports.Category, timeframe reports.Timeframe, data reports.ProcessedReportData) *ExportData {
	meta := reports.MetaFor(category)

	headers := make([]string, len(meta.TableColumns))
	for i, col := range meta.TableColumns {
		headers[i] = columnTitle(col)
	}

	rows := make([][]string, 0, len(data.TableData))
	for _, row := range data.TableData {
		cells := make([]string, len(meta.TableColumns))
		for i, col := range meta.TableColumns {
			cells[i] = row[col]
		}
		rows = append(rows, cells)
	}

	summary := make([]SummaryLine, 0, len(data.SummaryStats))
	for _, key := range sortedStatKeys(data.SummaryStats) {
		summary = append(summary, SummaryLine{
			Label: columnTitle(key),
			Value: fmt.Sprintf("%v", data.SummaryStats[key]),
		})
	}

	return &ExportData{
		Title:       meta.Title,
		Description: fmt.Sprintf("BudgetMe admin report, timeframe %s", timeframe),
		CreatedAt:   time.Now(),
		Summary:     summary,
		Headers:     headers,
		Rows:        rows,
		Style:       DefaultStyle(),
	}
}

// columnTitle turns a column key or stat key into a display title
// ("activity_type" -> "Activity Type", "totalUsers" -> "Total Users")
func columnTitle(key string) string {
	out := make([]rune, 0, len(key)+4)
	newWord := true
	for _, r := range key {
		switch {
		case r == '_' || r == '-':
			newWord = true
		case newWord:
			out = append(out, unicode.ToUpper(r))
			newWord = false
		case unicode.IsUpper(r):
			out = append(out, ' ', r)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func sortedStatKeys(stats reports.SummaryStats) []string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
