package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	excelHeaderColor  = "FFD700"
	excelDefaultSheet = "Sheet1"
	excelFirstWidth   = 20.0
	excelColumnWidth  = 12.0
)

// RenderWorkbook writes one sheet per table.
func RenderWorkbook(in Input) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{excelHeaderColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, t := range Tables(in) {
		idx, err := f.NewSheet(t.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", t.Name, err)
		}
		if i == 0 {
			f.SetActiveSheet(idx)
		}
		if err := writeTable(f, t, headerStyle); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet(excelDefaultSheet); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, t Table, headerStyle int) error {
	for r, values := range t.Values() {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		row := values
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", t.Name, r+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", t.Name, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Header))
	if err != nil {
		return err
	}
	f.SetColWidth(t.Name, "A", "A", excelFirstWidth)
	if len(t.Header) > 1 {
		f.SetColWidth(t.Name, "B", lastCol, excelColumnWidth)
	}
	return nil
}
