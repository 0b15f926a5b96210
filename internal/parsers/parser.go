// Package parsers converts raw import files (CSV, JSON, SQL dumps, XML,
// YAML) into a uniform sequence of flat key->value records.
//
// # Usage
//
//	result := parsers.Parse(parsers.FormatCSV, content)
//	if !result.Success {
//		return errors.New(result.Error)
//	}
package parsers

import "strings"

// Record is one flat row from an import file, keyed by source column name.
// All values are strings; type coercion happens later, during import.
type Record map[string]string

// ParseResult is the outcome of parsing one uploaded document.
// When Success is false, Data and Headers are empty and Error describes
// what went wrong with the document as a whole.
type ParseResult struct {
	Success bool     `json:"success"`
	Data    []Record `json:"data"`
	Headers []string `json:"headers"`
	Error   string   `json:"error,omitempty"`
}

// Supported format keywords.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatSQL  = "sql"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// Parse dispatches content to the parser for the given format keyword.
// Unrecognized keywords fall back to CSV.
func Parse(format, content string) ParseResult {
	switch strings.ToLower(format) {
	case FormatJSON:
		return ParseJSON(content)
	case FormatSQL:
		return ParseSQL(content)
	case FormatXML:
		return ParseXML(content)
	case FormatYAML, "yml":
		return ParseYAML(content)
	default:
		return ParseCSV(content)
	}
}

func failure(message string) ParseResult {
	return ParseResult{Success: false, Data: []Record{}, Headers: []string{}, Error: message}
}

func result(data []Record, headers []string) ParseResult {
	return ParseResult{Success: true, Data: data, Headers: headers}
}
