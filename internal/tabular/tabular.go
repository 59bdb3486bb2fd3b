// Package tabular decodes uploaded spreadsheets (CSV, XLSX, legacy XLS)
// into a header list plus rows keyed by the original header strings. It
// preserves every row, including fully blank ones, and assigns "Column N"
// placeholders to columns that lack a header.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Table is a decoded spreadsheet.
type Table struct {
	Headers []string
	Rows    []map[string]any
}

var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Decode picks a decoder from the filename extension.
func Decode(r io.Reader, filename string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return DecodeCSV(r)
	case ".xlsx":
		return DecodeXLSX(r)
	case ".xls":
		return DecodeXLS(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// fromGrid turns a raw cell grid into a Table. The first row is the header
// row; blank header cells become "Column N" (1-based). Data rows shorter
// than the header are padded with empty cells.
func fromGrid(grid [][]string) (*Table, error) {
	if len(grid) == 0 {
		return nil, errors.New("empty spreadsheet")
	}

	width := len(grid[0])
	for _, row := range grid[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)

	for i := range width {
		name := ""
		if i < len(grid[0]) {
			name = strings.TrimSpace(grid[0][i])
		}

		if name == "" {
			name = fmt.Sprintf("Column %d", i+1)
		}

		headers[i] = name
	}

	rows := make([]map[string]any, 0, len(grid)-1)

	for _, raw := range grid[1:] {
		row := make(map[string]any, width)

		for i, header := range headers {
			if i < len(raw) {
				row[header] = raw[i]
			} else {
				row[header] = ""
			}
		}

		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}
