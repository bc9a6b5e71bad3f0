package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export renders the report document to PDF
func (p *PDFExporter) Export(data *ExportData, writer io.Writer) error {
	orientation := "P"
	if data.Style.Orientation == "landscape" {
		orientation = "L"
	}
	pageSize := data.Style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	pdf.AddPage()

	// gofpdf ships Arial only; other families fall back to it
	font := "Arial"

	if data.Title != "" {
		pdf.SetFont(font, "B", 16)
		pdf.Cell(0, 10, data.Title)
		pdf.Ln(12)
	}
	if data.Description != "" {
		pdf.SetFont(font, "", data.Style.FontSize)
		pdf.MultiCell(0, 5, data.Description, "", "", false)
		pdf.Ln(4)
	}
	if !data.CreatedAt.IsZero() {
		pdf.SetFont(font, "I", 8)
		pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", data.CreatedAt.Format("2006-01-02 15:04:05")))
		pdf.Ln(10)
	}

	// Headline stats block
	if len(data.Summary) > 0 {
		for _, line := range data.Summary {
			pdf.SetFont(font, "B", data.Style.FontSize)
			pdf.Cell(60, 6, line.Label)
			pdf.SetFont(font, "", data.Style.FontSize)
			pdf.Cell(0, 6, line.Value)
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	if len(data.Headers) == 0 {
		return fmt.Errorf("no headers provided")
	}

	pageWidth, _ := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	colWidth := (pageWidth - leftMargin - rightMargin) / float64(len(data.Headers))

	p.drawHeader(pdf, data, font, colWidth)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(font, "", data.Style.FontSize)

	for i, cells := range data.Rows {
		fill := data.Style.AlternateRows && i%2 == 1
		if fill {
			pdf.SetFillColor(hexToRGB(data.Style.AltRowBgColor))
		}
		for _, value := range cells {
			pdf.CellFormat(colWidth, 6, value, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)

		// Near the bottom of the page, start a new one with a fresh header
		if pdf.GetY() > 270 {
			pdf.AddPage()
			p.drawHeader(pdf, data, font, colWidth)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont(font, "", data.Style.FontSize)
		}
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

func (p *PDFExporter) drawHeader(pdf *gofpdf.Fpdf, data *ExportData, font string, colWidth float64) {
	pdf.SetFont(font, "B", data.Style.FontSize)
	filled := data.Style.HeaderBgColor != ""
	if filled {
		pdf.SetFillColor(hexToRGB(data.Style.HeaderBgColor))
		pdf.SetTextColor(255, 255, 255)
	}
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 7, header, "1", 0, "C", filled, 0, "")
	}
	pdf.Ln(-1)
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts a hex color to RGB values, defaulting to white
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
