package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXML_RowElements(t *testing.T) {
	content := `<export>
  <row><first_name>John</first_name><last_name>Doe</last_name></row>
  <row><first_name>Jane</first_name><last_name>Smith</last_name></row>
</export>`

	res := ParseXML(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"first_name", "last_name"}, res.Headers)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Jane", res.Data[1]["first_name"])
}

func TestParseXML_MemberElements(t *testing.T) {
	content := `<members>
  <member><name>John</name><email>jdoe@example.com</email></member>
</members>`

	res := ParseXML(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "jdoe@example.com", res.Data[0]["email"])
}

func TestParseXML_FallbackToFirstChildTag(t *testing.T) {
	content := `<export>
  <person><name>John</name></person>
  <person><name>Jane</name></person>
</export>`

	res := ParseXML(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "John", res.Data[0]["name"])
}

func TestParseXML_AttributesMergedLast(t *testing.T) {
	content := `<export>
  <row status="vip"><name>John</name><status>regular</status></row>
</export>`

	res := ParseXML(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	// Attributes overwrite same-named child elements.
	assert.Equal(t, "vip", res.Data[0]["status"])
	assert.Equal(t, "John", res.Data[0]["name"])
}

func TestParseXML_HeadersUnionFirstSeen(t *testing.T) {
	content := `<export>
  <row><a>1</a></row>
  <row><b>2</b><a>3</a></row>
</export>`

	res := ParseXML(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"a", "b"}, res.Headers)
}

func TestParseXML_Invalid(t *testing.T) {
	res := ParseXML(`<export><row>`)

	assert.False(t, res.Success)
	assert.Equal(t, "Invalid XML format", res.Error)
}

func TestParseXML_NoRows(t *testing.T) {
	res := ParseXML(`<export></export>`)

	assert.False(t, res.Success)
	assert.Equal(t, "No data rows found in XML", res.Error)
}
