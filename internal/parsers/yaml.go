package parsers

import "strings"

// ParseYAML reads a flat list of flat mappings:
//
//	- name: Gold
//	  price: 50
//	- name: Silver
//	  price: 30
//
// Each "- "-prefixed line starts a new record; indented "key: value" lines
// extend it. Surrounding single or double quotes on scalar values are
// stripped. This is deliberately not a full YAML reader: nested structures,
// multi-line scalars, and anchors are unsupported.
func ParseYAML(content string) ParseResult {
	var records []Record
	var headers []string
	seen := map[string]bool{}

	var current Record
	flush := func() {
		if len(current) > 0 {
			records = append(records, current)
		}
		current = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			flush()
			current = Record{}
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
			if trimmed == "" {
				continue
			}
		} else if current == nil {
			// Content before the first list entry is ignored.
			continue
		}

		key, value, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		current[key] = unquoteScalar(strings.TrimSpace(value))
		if !seen[key] {
			seen[key] = true
			headers = append(headers, key)
		}
	}
	flush()

	if len(records) == 0 {
		return failure("No data found in YAML")
	}

	return result(records, headers)
}

func unquoteScalar(v string) string {
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
