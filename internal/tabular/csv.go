package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DecodeCSV reads a CSV export, sniffing both the character encoding and the
// delimiter (acquirer back-offices export either ";" or ","). Blank lines
// are kept so the row count matches the sheet.
func DecodeCSV(r io.Reader) (*Table, error) {
	utf8r, err := newUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	text := keepBlankLines(string(data))

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	grid, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return fromGrid(grid)
}

// keepBlankLines rewrites fully empty lines as a quoted empty field so
// encoding/csv, which drops empty lines, still yields a record for them.
// Newlines inside quoted fields are left alone.
func keepBlankLines(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inQuote := false
	lineStart := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			inQuote = !inQuote
		case '\n':
			if !inQuote {
				line := text[lineStart : i+1]
				if strings.TrimRight(line, "\r\n") == "" {
					b.WriteString(`""`)
				}

				b.WriteString(line)
				lineStart = i + 1
			}
		}
	}

	b.WriteString(text[lineStart:])

	return b.String()
}

// sniffDelimiter inspects the first line and picks the separator that
// appears more often. Semicolon wins ties, matching the Brazilian exports
// this mostly sees.
func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	if strings.Count(line, ",") > strings.Count(line, ";") {
		return ','
	}

	return ';'
}
