package tabular

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// DecodeXLSX reads the first sheet of an xlsx workbook. Cells are read raw
// so numeric values keep their stored precision instead of the display
// format.
func DecodeXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx workbook has no sheets")
	}

	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	return fromGrid(grid)
}

// DecodeXLS reads the first sheet of a legacy xls workbook. Some tools mail
// around xlsx files renamed to .xls, so that case is retried with the xlsx
// decoder.
func DecodeXLS(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read xls: %w", err)
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		if t, errX := DecodeXLSX(bytes.NewReader(data)); errX == nil {
			return t, nil
		}

		return nil, fmt.Errorf("open xls: %w", err)
	}

	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, fmt.Errorf("xls workbook has no sheets: %w", err)
	}

	var grid [][]string

	for _, row := range sheet.GetRows() {
		var cells []string
		for _, cell := range row.GetCols() {
			cells = append(cells, cell.GetString())
		}

		grid = append(grid, cells)
	}

	return fromGrid(grid)
}
