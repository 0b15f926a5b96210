package parsers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ParseJSON parses JSON content in one of three accepted shapes:
// a top-level array of flat objects, an object carrying a "data" array,
// or a single flat object (treated as a one-record document).
func ParseJSON(content string) ParseResult {
	var root json.RawMessage
	if err := json.Unmarshal([]byte(content), &root); err != nil {
		return failure("JSON parse error: " + err.Error())
	}

	items, ok := extractItems(root)
	if !ok {
		return failure("Invalid JSON structure")
	}
	if len(items) == 0 {
		return failure("JSON array is empty")
	}

	records := make([]Record, 0, len(items))
	var headers []string
	for i, item := range items {
		record, keys, err := decodeFlatObject(item)
		if err != nil {
			return failure("Invalid JSON structure")
		}
		if i == 0 {
			// Headers come from the first record only.
			headers = keys
		}
		records = append(records, record)
	}

	return result(records, headers)
}

// extractItems normalizes the three accepted document shapes into a list
// of raw objects.
func extractItems(root json.RawMessage) ([]json.RawMessage, bool) {
	switch firstByte(root) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(root, &items); err != nil {
			return nil, false
		}
		return items, true
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(root, &wrapper); err != nil {
			return nil, false
		}
		if data, ok := wrapper["data"]; ok && firstByte(data) == '[' {
			var items []json.RawMessage
			if err := json.Unmarshal(data, &items); err != nil {
				return nil, false
			}
			return items, true
		}
		return []json.RawMessage{root}, true
	default:
		return nil, false
	}
}

// decodeFlatObject decodes a single JSON object into a Record, preserving
// the key order as written in the document.
func decodeFlatObject(raw json.RawMessage) (Record, []string, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errNotObject
	}

	record := Record{}
	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := keyTok.(string)

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		record[key] = stringifyJSONValue(value)
		keys = append(keys, key)
	}

	return record, keys, nil
}

func stringifyJSONValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		// Nested structures are not expected in flat records; keep their
		// JSON text so the value is at least inspectable.
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

var errNotObject = errors.New("not a JSON object")
