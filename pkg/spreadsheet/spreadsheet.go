// Package spreadsheet renders tabular data into an .xlsx workbook.
package spreadsheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the rendered workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ErrGenerationFailed wraps every error coming from the workbook writer
var ErrGenerationFailed = errors.New("spreadsheet generation failed")

const (
	headerFontColor = "FFFFFF"
	headerFillColor = "4472C4"
)

// Column maps a record field to a sheet column
type Column struct {
	Header string
	Key    string
	Width  float64
}

// SummaryRow is written after the data rows. Label goes in the first column and
// Values are placed under the column with the matching key.
type SummaryRow struct {
	Label  string
	Values map[string]interface{}
}

// Sheet describes a single worksheet
type Sheet struct {
	Name    string
	Columns []Column
	Rows    []map[string]interface{}
	Summary []SummaryRow
}

// Render builds a workbook with one worksheet and returns its bytes.
func Render(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	data, err := render(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return data, nil
}

func render(f *excelize.File, sheet Sheet) ([]byte, error) {
	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range sheet.Columns {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if col.Width > 0 {
			if err := f.SetColWidth(name, colName, colName, col.Width); err != nil {
				return nil, err
			}
		}
		if err := f.SetCellValue(name, colName+"1", col.Header); err != nil {
			return nil, err
		}
	}
	if len(sheet.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(sheet.Columns), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, record := range sheet.Rows {
		if err := writeRow(f, name, row, sheet.Columns, record); err != nil {
			return nil, err
		}
		row++
	}

	if len(sheet.Summary) > 0 {
		// one blank separator row
		row++
		for _, summary := range sheet.Summary {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(name, cell, summary.Label); err != nil {
				return nil, err
			}
			if err := writeRow(f, name, row, sheet.Columns, summary.Values); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheetName string, row int, columns []Column, record map[string]interface{}) error {
	for i, col := range columns {
		value, ok := record[col.Key]
		if !ok || value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}
