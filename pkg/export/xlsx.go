// Package export writes spreadsheet grids out as XLSX workbooks, the
// write-back half of a locally edited Markdown table round trip.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mdforge/mdforge/pkg/errors"
)

// SheetGrid is one named 2-D grid destined for a workbook sheet.
type SheetGrid struct {
	// Name becomes the sheet name; empty names get "Sheet<n>"
	Name string

	// Rows hold cell text; ragged rows are written as-is
	Rows [][]string
}

// GridsToXLSX builds an XLSX workbook with one sheet per grid and
// returns its bytes. The first row of each grid is written as the
// header row.
func GridsToXLSX(grids []SheetGrid) ([]byte, error) {
	if len(grids) == 0 {
		return nil, errors.NewEmptyGridError()
	}

	f := excelize.NewFile()
	defer f.Close()

	for n, grid := range grids {
		name := grid.Name
		if name == "" {
			name = sheetName(n)
		}

		if n == 0 {
			// rename the default sheet instead of leaving it empty
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, errors.NewExportError("failed to name sheet", err).WithDetail("sheet", name)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, errors.NewExportError("failed to create sheet", err).WithDetail("sheet", name)
			}
		}

		if err := writeGrid(f, name, grid.Rows); err != nil {
			return nil, err
		}
		if err := styleHeaderRow(f, name, grid.Rows); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.NewExportError("failed to serialize workbook", err)
	}
	return buf.Bytes(), nil
}

func writeGrid(f *excelize.File, sheet string, rows [][]string) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return errors.NewExportError("invalid cell coordinates", err).
					WithDetail("row", r+1).WithDetail("col", c+1)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.NewExportError("failed to set cell value", err).WithDetail("cell", cell)
			}
		}
	}
	return nil
}

// styleHeaderRow bolds the first row of a written grid.
func styleHeaderRow(f *excelize.File, sheet string, rows [][]string) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}

	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.NewExportError("failed to create header style", err)
	}

	end, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return errors.NewExportError("invalid cell coordinates", err).WithDetail("col", len(rows[0]))
	}
	if err := f.SetCellStyle(sheet, "A1", end, styleID); err != nil {
		return errors.NewExportError("failed to style header row", err).WithDetail("sheet", sheet)
	}
	return nil
}

func sheetName(index int) string {
	return fmt.Sprintf("Sheet%d", index+1)
}
