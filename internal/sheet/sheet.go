// Package sheet renders a tenant listing as an .xlsx workbook for the
// property office, one header row followed by one row per flat.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Name is the worksheet holding the listing.
const Name = "Boende"

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MainHeader labels the columns of the main listing.
var MainHeader = []string{"Våning", "Lägenhet", "Boende"}

var columnWidths = []float64{12, 14, 40}

// Render returns an .xlsx workbook with header on the first row and rows below it.
func Render(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(Name); err != nil {
		return nil, fmt.Errorf("sheet.Render: create sheet: %w", err)
	}
	// The listing becomes the only, and therefore first, sheet.
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sheet.Render: header style: %w", err)
	}

	if err := writeRow(f, 1, header); err != nil {
		return nil, err
	}
	if len(header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		if err := f.SetCellStyle(Name, first, last, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet.Render: set header style: %w", err)
		}
	}

	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	for i := range header {
		if i >= len(columnWidths) {
			break
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("sheet.Render: column name: %w", err)
		}
		if err := f.SetColWidth(Name, col, col, columnWidths[i]); err != nil {
			return nil, fmt.Errorf("sheet.Render: column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("sheet.Render: write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("sheet.Render: cell name: %w", err)
		}
		if err := f.SetCellValue(Name, cell, value); err != nil {
			return fmt.Errorf("sheet.Render: set cell %s: %w", cell, err)
		}
	}
	return nil
}
