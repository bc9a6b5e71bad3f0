package reports

import "fmt"

// ChartConfig is a declarative, render-ready chart description. It carries no
// rendering behavior; the frontend's charting library consumes it as-is.
type ChartConfig struct {
	Chart       ChartSpec    `json:"chart"`
	Title       TitleSpec    `json:"title"`
	XAxis       *AxisSpec    `json:"xAxis,omitempty"`
	YAxis       *AxisSpec    `json:"yAxis,omitempty"`
	Tooltip     TooltipSpec  `json:"tooltip"`
	PlotOptions *PlotOptions `json:"plotOptions,omitempty"`
	Series      []Series     `json:"series"`
}

// ChartSpec selects the base chart type
type ChartSpec struct {
	Type string `json:"type"`
}

// TitleSpec holds an axis or chart title
type TitleSpec struct {
	Text string `json:"text"`
}

// AxisSpec describes one axis
type AxisSpec struct {
	Categories []string   `json:"categories,omitempty"`
	Title      *TitleSpec `json:"title,omitempty"`
}

// TooltipSpec carries the point tooltip format string
type TooltipSpec struct {
	PointFormat string `json:"pointFormat"`
}

// PlotOptions holds per-type plot settings
type PlotOptions struct {
	Pie *PieOptions `json:"pie,omitempty"`
}

// PieOptions configures pie slices and their labels
type PieOptions struct {
	AllowPointSelect bool       `json:"allowPointSelect"`
	Cursor           string     `json:"cursor"`
	DataLabels       DataLabels `json:"dataLabels"`
}

// DataLabels configures on-chart value labels
type DataLabels struct {
	Enabled bool   `json:"enabled"`
	Format  string `json:"format,omitempty"`
}

// Series is one renderable data series
type Series struct {
	Name         string        `json:"name"`
	Type         string        `json:"type,omitempty"`
	Data         []ChartPoint  `json:"data"`
	FillGradient *FillGradient `json:"fillGradient,omitempty"`
}

// FillGradient describes a vertical fade applied under an area series
type FillGradient struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BuildChartConfig produces the chart configuration for a category, chart form
// and aggregated chart points. Returns nil for empty input; the caller renders
// an empty state instead of a blank chart. The input slice is never mutated.
func BuildChartConfig(c Category, form ChartForm, chartData []ChartPoint) *ChartConfig {
	if len(chartData) == 0 {
		return nil
	}
	meta := MetaFor(c)

	if form == ChartFormPie {
		return &ChartConfig{
			Chart:   ChartSpec{Type: "pie"},
			Title:   TitleSpec{Text: meta.Title},
			Tooltip: TooltipSpec{PointFormat: "{series.name}: <b>{point.percentage:.1f}%</b>"},
			PlotOptions: &PlotOptions{
				Pie: &PieOptions{
					AllowPointSelect: true,
					Cursor:           "pointer",
					DataLabels: DataLabels{
						Enabled: true,
						Format:  "{point.name}: {point.percentage:.1f}%",
					},
				},
			},
			Series: []Series{{
				Name: meta.SeriesName,
				Type: "pie",
				Data: clonePoints(chartData),
			}},
		}
	}

	// column, line and area share the categorical layout; anything
	// unrecognized renders as column
	chartType := "column"
	switch form {
	case ChartFormLine:
		chartType = "line"
	case ChartFormArea:
		chartType = "area"
	}

	categories := make([]string, len(chartData))
	for i, p := range chartData {
		categories[i] = p.Name
	}

	series := Series{
		Name: meta.SeriesName,
		Type: chartType,
		Data: clonePoints(chartData),
	}
	if chartType == "area" {
		series.FillGradient = &FillGradient{
			From: meta.PrimaryColor,
			To:   withAlpha(meta.PrimaryColor, 0.1),
		}
	}

	return &ChartConfig{
		Chart:   ChartSpec{Type: chartType},
		Title:   TitleSpec{Text: meta.Title},
		XAxis:   &AxisSpec{Categories: categories},
		YAxis:   &AxisSpec{Title: &TitleSpec{Text: meta.YAxisTitle}},
		Tooltip: TooltipSpec{PointFormat: "{series.name}: <b>{point.y}</b>"},
		Series:  []Series{series},
	}
}

func clonePoints(points []ChartPoint) []ChartPoint {
	out := make([]ChartPoint, len(points))
	copy(out, points)
	return out
}

// withAlpha converts a "#RRGGBB" color into an rgba() string with the given
// opacity; non-hex inputs are passed through unchanged
func withAlpha(hex string, alpha float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}
