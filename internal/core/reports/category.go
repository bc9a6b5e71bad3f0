package reports

// Category identifies one of the five admin report domains
type Category string

const (
	CategorySystemActivity   Category = "system-activity"
	CategoryUserEngagement   Category = "user-engagement"
	CategoryFinancialHealth  Category = "financial-health"
	CategoryAIMLAnalytics    Category = "aiml-analytics"
	CategoryChatbotAnalytics Category = "chatbot-analytics"
)

// Categories lists every known report category in display order
var Categories = []Category{
	CategorySystemActivity,
	CategoryUserEngagement,
	CategoryFinancialHealth,
	CategoryAIMLAnalytics,
	CategoryChatbotAnalytics,
}

// ParseCategory validates a raw category tag
func ParseCategory(raw string) (Category, bool) {
	c := Category(raw)
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// ChartForm identifies the requested visual encoding
type ChartForm string

const (
	ChartFormPie    ChartForm = "pie"
	ChartFormColumn ChartForm = "column"
	ChartFormLine   ChartForm = "line"
	ChartFormArea   ChartForm = "area"
)

// ParseChartForm resolves a raw chart form tag, falling back to column for
// anything unrecognized
func ParseChartForm(raw string) ChartForm {
	switch ChartForm(raw) {
	case ChartFormPie, ChartFormColumn, ChartFormLine, ChartFormArea:
		return ChartForm(raw)
	default:
		return ChartFormColumn
	}
}

// Timeframe bounds the raw data the data layer feeds to an aggregator
type Timeframe string

const (
	Timeframe7d  Timeframe = "7d"
	Timeframe30d Timeframe = "30d"
	Timeframe90d Timeframe = "90d"
	Timeframe1y  Timeframe = "1y"
)

// ParseTimeframe resolves a raw timeframe tag, falling back to 30 days
func ParseTimeframe(raw string) Timeframe {
	switch Timeframe(raw) {
	case Timeframe7d, Timeframe30d, Timeframe90d, Timeframe1y:
		return Timeframe(raw)
	default:
		return Timeframe30d
	}
}

// CategoryMeta is the single registry row shared by aggregators, the chart
// builder, the table renderer and the exporters. Keeping titles, palette and
// color overrides in one place avoids the two lookup tables drifting apart.
type CategoryMeta struct {
	Title          string
	YAxisTitle     string
	SeriesName     string
	PrimaryColor   string
	Palette        []string
	ColorOverrides map[string]string // bucket name -> fixed color
	TableColumns   []string          // table column keys in render order
}

// defaultPalette is the fixed fallback palette indexed by bucket position
var defaultPalette = []string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

var genericMeta = CategoryMeta{
	Title:        "Admin Analytics",
	YAxisTitle:   "Value",
	SeriesName:   "Data",
	PrimaryColor: "#3B82F6",
	Palette:      defaultPalette,
	TableColumns: []string{"metric", "value"},
}

var categoryMeta = map[Category]CategoryMeta{
	CategorySystemActivity: {
		Title:        "System Activity Overview",
		YAxisTitle:   "Activity Count",
		SeriesName:   "Activities",
		PrimaryColor: "#3B82F6",
		Palette:      defaultPalette,
		ColorOverrides: map[string]string{
			"login":               "#10B981",
			"logout":              "#6B7280",
			"transaction_created": "#3B82F6",
			"budget_updated":      "#F59E0B",
			"goal_created":        "#8B5CF6",
			"report_viewed":       "#06B6D4",
			"error":               "#EF4444",
		},
		TableColumns: []string{"activity_type", "count", "activity_date", "severity"},
	},
	CategoryUserEngagement: {
		Title:        "User Engagement",
		YAxisTitle:   "Users",
		SeriesName:   "Users",
		PrimaryColor: "#10B981",
		Palette:      defaultPalette,
		TableColumns: []string{"metric", "value"},
	},
	CategoryFinancialHealth: {
		Title:        "Financial Health",
		YAxisTitle:   "Count",
		SeriesName:   "Financial Metrics",
		PrimaryColor: "#F59E0B",
		Palette:      defaultPalette,
		TableColumns: []string{"metric", "value"},
	},
	CategoryAIMLAnalytics: {
		Title:        "AI/ML Usage",
		YAxisTitle:   "Requests",
		SeriesName:   "AI Usage",
		PrimaryColor: "#8B5CF6",
		Palette:      defaultPalette,
		ColorOverrides: map[string]string{
			"prophet":         "#8B5CF6",
			"prediction-api":  "#3B82F6",
			"insights-engine": "#10B981",
		},
		TableColumns: []string{"metric", "value"},
	},
	CategoryChatbotAnalytics: {
		Title:        "Chatbot Usage",
		YAxisTitle:   "Sessions",
		SeriesName:   "Chatbot",
		PrimaryColor: "#06B6D4",
		Palette:      defaultPalette,
		ColorOverrides: map[string]string{
			"positive": "#10B981",
			"neutral":  "#6B7280",
			"negative": "#EF4444",
		},
		TableColumns: []string{"metric", "value"},
	},
}

// MetaFor returns the registry row for a category, or a generic fallback for
// unrecognized tags
func MetaFor(c Category) CategoryMeta {
	if meta, ok := categoryMeta[c]; ok {
		return meta
	}
	return genericMeta
}

// bucketColor resolves a bucket's color: explicit override first, then the
// palette indexed by bucket position modulo palette length
func bucketColor(meta CategoryMeta, bucket string, idx int) string {
	if color, ok := meta.ColorOverrides[bucket]; ok {
		return color
	}
	palette := meta.Palette
	if len(palette) == 0 {
		palette = defaultPalette
	}
	return palette[idx%len(palette)]
}
