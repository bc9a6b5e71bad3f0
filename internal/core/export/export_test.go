package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetme/admin-analytics-be/internal/core/reports"
)

func sampleReportData() reports.ProcessedReportData {
	return reports.ProcessedReportData{
		ChartData: []reports.ChartPoint{
			{Name: "Login", Y: 12, Color: "#3B82F6"},
			{Name: "Transaction", Y: 5, Color: "#10B981"},
		},
		TableData: []reports.TableRow{
			{"activity_type": "login", "count": "12", "activity_date": "2026-08-20", "severity": "info"},
			{"activity_type": "transaction", "count": "5", "activity_date": "2026-08-21", "severity": "info"},
		},
		SummaryStats: reports.SummaryStats{
			"totalActivities": 17,
			"activeDays":      2,
		},
	}
}

func TestFromReportColumnOrder(t *testing.T) {
	doc := FromReport(reports.CategorySystemActivity, reports.Timeframe7d, sampleReportData())

	assert.Equal(t, []string{"Activity Type", "Count", "Activity Date", "Severity"}, doc.Headers)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"login", "12", "2026-08-20", "info"}, doc.Rows[0])
	assert.Equal(t, []string{"transaction", "5", "2026-08-21", "info"}, doc.Rows[1])
}

func TestFromReportSummarySorted(t *testing.T) {
	doc := FromReport(reports.CategorySystemActivity, reports.Timeframe30d, sampleReportData())

	require.Len(t, doc.Summary, 2)
	assert.Equal(t, "Active Days", doc.Summary[0].Label)
	assert.Equal(t, "2", doc.Summary[0].Value)
	assert.Equal(t, "Total Activities", doc.Summary[1].Label)
	assert.Equal(t, "17", doc.Summary[1].Value)
}

func TestFromReportTitleFromRegistry(t *testing.T) {
	doc := FromReport(reports.CategoryFinancialHealth, reports.Timeframe30d, sampleReportData())

	assert.Equal(t, reports.MetaFor(reports.CategoryFinancialHealth).Title, doc.Title)
	assert.Contains(t, doc.Description, "30d")
}

func TestColumnTitle(t *testing.T) {
	assert.Equal(t, "Activity Type", columnTitle("activity_type"))
	assert.Equal(t, "Total Users", columnTitle("totalUsers"))
	assert.Equal(t, "Metric", columnTitle("metric"))
	assert.Equal(t, "Avg Daily Activities", columnTitle("avgDailyActivities"))
}

func TestServiceExportPDF(t *testing.T) {
	svc := NewService()
	doc := FromReport(reports.CategorySystemActivity, reports.Timeframe7d, sampleReportData())

	payload, contentType, err := svc.Export(doc, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestServiceExportExcel(t *testing.T) {
	svc := NewService()
	doc := FromReport(reports.CategoryUserEngagement, reports.Timeframe30d, sampleReportData())

	payload, contentType, err := svc.Export(doc, FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)
	assert.NotEmpty(t, payload)
}

func TestServiceExportUnknownFormat(t *testing.T) {
	svc := NewService()

	_, _, err := svc.Export(&ExportData{Headers: []string{"Metric"}}, ExportFormat("csv"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	format, ok := ParseFormat("pdf")
	assert.True(t, ok)
	assert.Equal(t, FormatPDF, format)

	format, ok = ParseFormat("xlsx")
	assert.True(t, ok)
	assert.Equal(t, FormatExcel, format)

	_, ok = ParseFormat("docx")
	assert.False(t, ok)
}

func TestFilename(t *testing.T) {
	svc := NewService()
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	name := svc.Filename("system-activity", "7d", FormatExcel, at)
	assert.Equal(t, "budgetme-system-activity-7d-20260828.xlsx", name)
}
