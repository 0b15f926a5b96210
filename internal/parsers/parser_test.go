package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		content string
		want    string // expected value of the "name" field of the first record
	}{
		{"csv", "csv", "name\nJohn", "John"},
		{"json", "json", `[{"name": "John"}]`, "John"},
		{"sql", "sql", `INSERT INTO t (name) VALUES ('John');`, "John"},
		{"xml", "xml", `<d><row><name>John</name></row></d>`, "John"},
		{"yaml", "yaml", "- name: John", "John"},
		{"yml alias", "yml", "- name: John", "John"},
		{"uppercase keyword", "JSON", `[{"name": "John"}]`, "John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.format, tt.content)
			require.True(t, res.Success, "error: %s", res.Error)
			require.NotEmpty(t, res.Data)
			assert.Equal(t, tt.want, res.Data[0]["name"])
		})
	}
}

func TestParse_UnknownFormatDefaultsToCSV(t *testing.T) {
	res := Parse("parquet", "name\nJohn")

	require.True(t, res.Success)
	assert.Equal(t, "John", res.Data[0]["name"])
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()

	require.Len(t, formats, 5)
	values := make([]string, len(formats))
	for i, f := range formats {
		values[i] = f.Value
		assert.NotEmpty(t, f.Label)
		assert.NotEmpty(t, f.Extension)
		assert.NotEmpty(t, f.Description)
	}
	assert.Equal(t, []string{"csv", "json", "sql", "xml", "yaml"}, values)
}

func TestFailureResultShape(t *testing.T) {
	for _, res := range []ParseResult{
		ParseCSV(""),
		ParseJSON("{"),
		ParseSQL("nothing here"),
		ParseXML("<broken"),
		ParseYAML(""),
	} {
		assert.False(t, res.Success)
		assert.NotEmpty(t, res.Error)
		assert.Empty(t, res.Data)
		assert.Empty(t, res.Headers)
	}
}
