package export

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName    = "Dados"
	maxColWidth  = 50
	colWidthPad  = 2
	minColWidth  = 8
)

// XLSX renders a dataset as a single-sheet workbook with column widths
// sized to the longest cell (capped).
func XLSX(d Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	widths := make([]int, len(d.Columns))

	writeRow := func(rowIdx int, cells []string) error {
		for colIdx, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheetName, ref, cell); err != nil {
				return err
			}
			if colIdx < len(widths) && len(cell) > widths[colIdx] {
				widths[colIdx] = len(cell)
			}
		}
		return nil
	}

	if err := writeRow(1, d.Columns); err != nil {
		return nil, err
	}
	for i, row := range d.Rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	for colIdx, width := range widths {
		w := width + colWidthPad
		if w > maxColWidth {
			w = maxColWidth
		}
		if w < minColWidth {
			w = minColWidth
		}
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSXGrouped flattens date groups into one sheet, keeping group order.
// The heading value is repeated on each row in the first column.
func XLSXGrouped(columns []string, groups []Group) ([]byte, error) {
	flat := Dataset{Columns: columns}
	for _, g := range groups {
		for _, row := range g.Rows {
			flat.Rows = append(flat.Rows, append([]string{g.Heading}, row...))
		}
	}
	return XLSX(flat)
}
