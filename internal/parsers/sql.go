package parsers

import (
	"regexp"
	"strings"
)

var insertStmtRe = regexp.MustCompile(`(?is)insert\s+into\s+[\x60"\[]?(\w+)[\x60"\]]?\s*\(([^)]*)\)\s*values\s*(.+?)(?:;|$)`)

// ParseSQL extracts records from INSERT INTO statements in a SQL dump.
// The column list of the first matched statement becomes the header set;
// every value tuple across all matched statements becomes one record.
// The bare token NULL maps to an empty string.
func ParseSQL(content string) ParseResult {
	matches := insertStmtRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return failure("No valid INSERT statements found")
	}

	var headers []string
	var records []Record
	for i, match := range matches {
		columns := splitColumns(match[2])
		if i == 0 {
			headers = columns
		}

		for _, tuple := range splitTuples(match[3]) {
			if len(tuple) != len(columns) {
				continue
			}
			record := make(Record, len(columns))
			for j, col := range columns {
				record[col] = cleanSQLValue(tuple[j])
			}
			records = append(records, record)
		}
	}

	if len(records) == 0 {
		return failure("No valid INSERT statements found")
	}

	return result(records, headers)
}

func splitColumns(list string) []string {
	parts := strings.Split(list, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		col := strings.TrimSpace(p)
		col = strings.Trim(col, "`\"[]")
		if col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}

// splitTuples scans the VALUES section for parenthesized tuples, honoring
// single- and double-quoted string literals. A doubled quote inside a
// literal is an escaped quote, not a terminator.
func splitTuples(section string) [][]string {
	var tuples [][]string

	runes := []rune(section)
	i := 0
	for i < len(runes) {
		if runes[i] != '(' {
			i++
			continue
		}
		fields, next, ok := scanTuple(runes, i+1)
		if !ok {
			// Unterminated tuple, discard it.
			break
		}
		tuples = append(tuples, fields)
		i = next
	}

	return tuples
}

// scanTuple reads one tuple body starting just past its opening paren.
// Returns the raw fields and the index past the closing paren.
func scanTuple(runes []rune, start int) ([]string, int, bool) {
	var fields []string
	var current strings.Builder
	var quote rune

	i := start
	for i < len(runes) {
		c := runes[i]
		switch {
		case quote != 0:
			if c == quote {
				if i+1 < len(runes) && runes[i+1] == quote {
					current.WriteRune(c)
					current.WriteRune(c)
					i += 2
					continue
				}
				quote = 0
			}
			current.WriteRune(c)
		case c == '\'' || c == '"':
			quote = c
			current.WriteRune(c)
		case c == ',':
			fields = append(fields, current.String())
			current.Reset()
		case c == ')':
			fields = append(fields, current.String())
			return fields, i + 1, true
		default:
			current.WriteRune(c)
		}
		i++
	}

	return nil, i, false
}

// cleanSQLValue unquotes a raw tuple field. NULL becomes an empty string.
func cleanSQLValue(raw string) string {
	v := strings.TrimSpace(raw)
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			quote := string(v[0])
			inner := v[1 : len(v)-1]
			return strings.ReplaceAll(inner, quote+quote, quote)
		}
	}
	if strings.EqualFold(v, "NULL") {
		return ""
	}
	return v
}
