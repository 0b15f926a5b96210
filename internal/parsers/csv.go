package parsers

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV parses comma-separated content. The first non-empty line is the
// header row; double quotes guard embedded commas and a doubled quote inside
// a quoted field is a literal quote. Values are trimmed of surrounding
// whitespace. Data rows whose field count does not match the header count
// are dropped.
func ParseCSV(content string) ParseResult {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return failure("CSV must have headers and at least one data row")
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	records := []Record{}
	sawDataRow := false
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Unparseable line, drop it like a length mismatch.
			sawDataRow = true
			continue
		}
		sawDataRow = true
		if len(row) != len(headers) {
			continue
		}

		record := make(Record, len(headers))
		for i, h := range headers {
			record[h] = strings.TrimSpace(row[i])
		}
		records = append(records, record)
	}

	if !sawDataRow {
		return failure("CSV must have headers and at least one data row")
	}

	return result(records, headers)
}
