package export

import (
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
)

// ParseFormat validates a raw export format tag
func ParseFormat(raw string) (ExportFormat, bool) {
	switch ExportFormat(raw) {
	case FormatPDF, FormatExcel:
		return ExportFormat(raw), true
	case "xlsx":
		return FormatExcel, true
	default:
		return "", false
	}
}

// Exporter is the interface for all export formats
type Exporter interface {
	Export(data *ExportData, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// SummaryLine is one headline stat rendered above the table
type SummaryLine struct {
	Label string
	Value string
}

// ExportData is the render-ready document content for one report export
type ExportData struct {
	Title       string
	Description string
	CreatedAt   time.Time

	// Headline stats
	Summary []SummaryLine

	// Table data
	Headers []string
	Rows    [][]string

	Style ExportStyle
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	// Common styling
	HeaderBgColor string // Hex color
	AlternateRows bool
	AltRowBgColor string // Hex color for even rows

	FontFamily string
	FontSize   float64

	// Excel specific
	FreezeHeader bool
}

// DefaultStyle returns the BudgetMe admin report styling
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBgColor: "#3B82F6",
		AlternateRows: true,
		AltRowBgColor: "#EFF6FF",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
	}
}
