package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = []ChartPoint{
	{Name: "Login", Y: 12, Color: "#10B981"},
	{Name: "Logout", Y: 7, Color: "#6B7280"},
	{Name: "Report Viewed", Y: 3, Color: "#06B6D4"},
}

func TestBuildChartConfigAllCombinations(t *testing.T) {
	forms := []ChartForm{ChartFormPie, ChartFormColumn, ChartFormLine, ChartFormArea}
	for _, c := range Categories {
		for _, form := range forms {
			cfg := BuildChartConfig(c, form, samplePoints)
			require.NotNil(t, cfg, "category %s form %s", c, form)
			require.Len(t, cfg.Series, 1)
			assert.Len(t, cfg.Series[0].Data, len(samplePoints))
		}
	}
}

func TestBuildChartConfigEmptyData(t *testing.T) {
	assert.Nil(t, BuildChartConfig(CategorySystemActivity, ChartFormPie, nil))
	assert.Nil(t, BuildChartConfig(CategorySystemActivity, ChartFormColumn, []ChartPoint{}))
}

func TestBuildChartConfigPie(t *testing.T) {
	cfg := BuildChartConfig(CategorySystemActivity, ChartFormPie, samplePoints)
	require.NotNil(t, cfg)

	assert.Equal(t, "pie", cfg.Chart.Type)
	assert.Nil(t, cfg.XAxis)
	assert.Contains(t, cfg.Tooltip.PointFormat, "percentage")
	require.NotNil(t, cfg.PlotOptions)
	require.NotNil(t, cfg.PlotOptions.Pie)
	assert.True(t, cfg.PlotOptions.Pie.DataLabels.Enabled)
	assert.Len(t, cfg.Series[0].Data, len(samplePoints))
}

func TestBuildChartConfigColumnKeepsInputOrder(t *testing.T) {
	cfg := BuildChartConfig(CategoryUserEngagement, ChartFormColumn, samplePoints)
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.XAxis)

	assert.Equal(t, []string{"Login", "Logout", "Report Viewed"}, cfg.XAxis.Categories)
	require.NotNil(t, cfg.YAxis)
	assert.Equal(t, "Users", cfg.YAxis.Title.Text)
}

func TestBuildChartConfigAreaGradient(t *testing.T) {
	cfg := BuildChartConfig(CategoryChatbotAnalytics, ChartFormArea, samplePoints)
	require.NotNil(t, cfg)

	grad := cfg.Series[0].FillGradient
	require.NotNil(t, grad)
	assert.Equal(t, "#06B6D4", grad.From)
	assert.Equal(t, "rgba(6, 182, 212, 0.10)", grad.To)
}

func TestBuildChartConfigUnknownFormFallsBackToColumn(t *testing.T) {
	cfg := BuildChartConfig(CategorySystemActivity, ChartForm("sparkline"), samplePoints)
	require.NotNil(t, cfg)
	assert.Equal(t, "column", cfg.Chart.Type)
	assert.Nil(t, cfg.Series[0].FillGradient)
}

func TestBuildChartConfigUnknownCategoryUsesGenericMeta(t *testing.T) {
	cfg := BuildChartConfig(Category("made-up"), ChartFormColumn, samplePoints)
	require.NotNil(t, cfg)
	assert.Equal(t, "Admin Analytics", cfg.Title.Text)
	assert.Equal(t, "Value", cfg.YAxis.Title.Text)
	assert.Equal(t, "Data", cfg.Series[0].Name)
}

func TestBuildChartConfigDoesNotMutateInput(t *testing.T) {
	points := clonePoints(samplePoints)
	cfg := BuildChartConfig(CategorySystemActivity, ChartFormArea, points)
	require.NotNil(t, cfg)

	cfg.Series[0].Data[0].Y = 999
	assert.Equal(t, 12.0, points[0].Y)
	assert.Equal(t, samplePoints, points)
}

func TestBuildChartConfigIdempotent(t *testing.T) {
	first := BuildChartConfig(CategoryAIMLAnalytics, ChartFormPie, samplePoints)
	second := BuildChartConfig(CategoryAIMLAnalytics, ChartFormPie, samplePoints)
	assert.Equal(t, first, second)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("financial-health")
	assert.True(t, ok)
	assert.Equal(t, CategoryFinancialHealth, c)

	_, ok = ParseCategory("everything")
	assert.False(t, ok)
}

func TestParseChartFormFallback(t *testing.T) {
	assert.Equal(t, ChartFormPie, ParseChartForm("pie"))
	assert.Equal(t, ChartFormColumn, ParseChartForm("histogram"))
}

func TestParseTimeframeFallback(t *testing.T) {
	assert.Equal(t, Timeframe7d, ParseTimeframe("7d"))
	assert.Equal(t, Timeframe30d, ParseTimeframe("whenever"))
}
