package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{sheetName: "Report"}
}

// Export renders the report document to xlsx
func (e *ExcelExporter) Export(data *ExportData, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", e.sheetName)

	row := 1
	if data.Title != "" {
		f.SetCellValue(e.sheetName, fmt.Sprintf("A%d", row), data.Title)
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14, Family: data.Style.FontFamily},
		})
		f.SetCellStyle(e.sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), titleStyle)
		row++

		if data.Description != "" {
			f.SetCellValue(e.sheetName, fmt.Sprintf("A%d", row), data.Description)
			row++
		}
		row++
	}

	// Headline stats block above the table
	if len(data.Summary) > 0 {
		boldStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: data.Style.FontSize, Family: data.Style.FontFamily},
		})
		for _, line := range data.Summary {
			labelCell := fmt.Sprintf("A%d", row)
			f.SetCellValue(e.sheetName, labelCell, line.Label)
			f.SetCellStyle(e.sheetName, labelCell, labelCell, boldStyle)
			f.SetCellValue(e.sheetName, fmt.Sprintf("B%d", row), line.Value)
			row++
		}
		row++
	}

	headerStyle, err := e.headerStyle(f, data.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headerRow := row
	for col, header := range data.Headers {
		cell := columnNumberToName(col+1) + strconv.Itoa(headerRow)
		f.SetCellValue(e.sheetName, cell, header)
		f.SetCellStyle(e.sheetName, cell, cell, headerStyle)
	}
	row++

	altStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: data.Style.FontSize, Family: data.Style.FontFamily},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{stripHash(data.Style.AltRowBgColor)}},
	})

	for i, cells := range data.Rows {
		for col, value := range cells {
			cell := columnNumberToName(col+1) + strconv.Itoa(row)
			f.SetCellValue(e.sheetName, cell, value)
			if data.Style.AlternateRows && i%2 == 1 {
				f.SetCellStyle(e.sheetName, cell, cell, altStyle)
			}
		}
		row++
	}

	if data.Style.FreezeHeader && len(data.Headers) > 0 {
		f.SetPanes(e.sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      headerRow,
			TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

func (e *ExcelExporter) headerStyle(f *excelize.File, style ExportStyle) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHash(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

// stripHash removes # from hex color codes
func stripHash(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
