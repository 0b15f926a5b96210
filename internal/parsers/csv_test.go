package parsers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_Basic(t *testing.T) {
	content := "first_name,last_name,email\nJohn,Doe,jdoe@example.com\nJane,Smith,jsmith@example.com"

	res := ParseCSV(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"first_name", "last_name", "email"}, res.Headers)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "John", res.Data[0]["first_name"])
	assert.Equal(t, "jsmith@example.com", res.Data[1]["email"])
}

func TestParseCSV_QuotedComma(t *testing.T) {
	content := "name,email\n\"Doe, John\",jdoe@example.com"

	res := ParseCSV(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Doe, John", res.Data[0]["name"])
	assert.Equal(t, "jdoe@example.com", res.Data[0]["email"])
}

func TestParseCSV_EscapedQuote(t *testing.T) {
	content := "name,nickname\n\"John \"\"JD\"\" Doe\",JD"

	res := ParseCSV(content)

	require.True(t, res.Success)
	assert.Equal(t, `John "JD" Doe`, res.Data[0]["name"])
}

func TestParseCSV_TrimsWhitespace(t *testing.T) {
	content := "name , email \n John , jdoe@example.com "

	res := ParseCSV(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"name", "email"}, res.Headers)
	assert.Equal(t, "John", res.Data[0]["name"])
	assert.Equal(t, "jdoe@example.com", res.Data[0]["email"])
}

func TestParseCSV_MismatchedRowDropped(t *testing.T) {
	content := "a,b,c\n1,2,3\n4,5\n6,7,8"

	res := ParseCSV(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "1", res.Data[0]["a"])
	assert.Equal(t, "6", res.Data[1]["a"])
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	res := ParseCSV("first_name,last_name")

	assert.False(t, res.Success)
	assert.Equal(t, "CSV must have headers and at least one data row", res.Error)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.Headers)
}

func TestParseCSV_Empty(t *testing.T) {
	res := ParseCSV("")

	assert.False(t, res.Success)
	assert.Equal(t, "CSV must have headers and at least one data row", res.Error)
}

func TestParseCSV_RoundTrip(t *testing.T) {
	headers := []string{"first_name", "last_name", "email", "phone"}
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	for i := 0; i < 25; i++ {
		sb.WriteString(fmt.Sprintf("\nFirst%d,Last%d,user%d@example.com,555-%04d", i, i, i, i))
	}

	res := ParseCSV(sb.String())

	require.True(t, res.Success)
	assert.Equal(t, headers, res.Headers)
	require.Len(t, res.Data, 25)
	for i, record := range res.Data {
		require.Len(t, record, len(headers))
		assert.Equal(t, fmt.Sprintf("First%d", i), record["first_name"])
		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), record["email"])
		assert.Equal(t, fmt.Sprintf("555-%04d", i), record["phone"])
	}
}
