package parsers

// FormatInfo describes one supported import format for UI pickers.
type FormatInfo struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Extension   string `json:"extension"`
	Description string `json:"description"`
}

// SupportedFormats returns the catalog of import formats, in display order.
func SupportedFormats() []FormatInfo {
	return []FormatInfo{
		{
			Value:       FormatCSV,
			Label:       "CSV",
			Extension:   ".csv",
			Description: "Comma-separated values with a header row",
		},
		{
			Value:       FormatJSON,
			Label:       "JSON",
			Extension:   ".json",
			Description: "Array of flat objects, or an object with a data array",
		},
		{
			Value:       FormatSQL,
			Label:       "SQL",
			Extension:   ".sql",
			Description: "SQL dump containing INSERT INTO statements",
		},
		{
			Value:       FormatXML,
			Label:       "XML",
			Extension:   ".xml",
			Description: "XML document with repeating row elements",
		},
		{
			Value:       FormatYAML,
			Label:       "YAML",
			Extension:   ".yaml",
			Description: "Flat list of key: value mappings",
		},
	}
}
