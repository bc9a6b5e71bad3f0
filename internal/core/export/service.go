package export

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Service provides high-level export functionality
type Service struct {
	exporters map[ExportFormat]Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		exporters: map[ExportFormat]Exporter{
			FormatPDF:   NewPDFExporter(),
			FormatExcel: NewExcelExporter(),
		},
	}
}

// Export renders the document in the given format and returns the
// file bytes together with its content type
func (s *Service) Export(data *ExportData, format ExportFormat) ([]byte, string, error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, "", fmt.Errorf("unsupported export format: %s", format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(data, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}

	return buf.Bytes(), exporter.GetContentType(), nil
}

// ExportToWriter renders the document in the given format to a writer
func (s *Service) ExportToWriter(data *ExportData, format ExportFormat, writer io.Writer) error {
	exporter, ok := s.exporters[format]
	if !ok {
		return fmt.Errorf("unsupported export format: %s", format)
	}

	return exporter.Export(data, writer)
}

// Filename builds a download filename for a report export
func (s *Service) Filename(category, timeframe string, format ExportFormat, at time.Time) string {
	ext := ".bin"
	if exporter, ok := s.exporters[format]; ok {
		ext = exporter.GetFileExtension()
	}
	return fmt.Sprintf("budgetme-%s-%s-%s%s", category, timeframe, at.Format("20060102"), ext)
}
