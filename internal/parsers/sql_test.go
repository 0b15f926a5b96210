package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSQL_SingleInsert(t *testing.T) {
	content := `INSERT INTO members (first_name, last_name, email) VALUES ('John', 'Doe', 'jdoe@example.com');`

	res := ParseSQL(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"first_name", "last_name", "email"}, res.Headers)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "John", res.Data[0]["first_name"])
	assert.Equal(t, "jdoe@example.com", res.Data[0]["email"])
}

func TestParseSQL_MultiValueTuples(t *testing.T) {
	content := `INSERT INTO packages (name, price) VALUES ('Gold', 49.99), ('Silver', 29.99), ('Bronze', 19.99);`

	res := ParseSQL(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 3)
	assert.Equal(t, "Silver", res.Data[1]["name"])
	assert.Equal(t, "19.99", res.Data[2]["price"])
}

func TestParseSQL_NullValue(t *testing.T) {
	content := `INSERT INTO packages (name, price) VALUES ('Gold', NULL);`

	res := ParseSQL(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Gold", res.Data[0]["name"])
	assert.Equal(t, "", res.Data[0]["price"])
}

func TestParseSQL_QuotedCommaAndEscapedQuote(t *testing.T) {
	content := `INSERT INTO members (name, note) VALUES ('Doe, John', 'it''s fine');`

	res := ParseSQL(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Doe, John", res.Data[0]["name"])
	assert.Equal(t, "it's fine", res.Data[0]["note"])
}

func TestParseSQL_CaseInsensitiveMultipleStatements(t *testing.T) {
	content := `insert into members (name) values ('John');
INSERT INTO members (name) VALUES ('Jane');`

	res := ParseSQL(content)

	require.True(t, res.Success)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Jane", res.Data[1]["name"])
}

func TestParseSQL_NoInserts(t *testing.T) {
	res := ParseSQL(`SELECT * FROM members;`)

	assert.False(t, res.Success)
	assert.Equal(t, "No valid INSERT statements found", res.Error)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.Headers)
}

func TestParseSQL_HeadersFromFirstStatement(t *testing.T) {
	content := `INSERT INTO a (x, y) VALUES (1, 2);
INSERT INTO b (z) VALUES (3);`

	res := ParseSQL(content)

	require.True(t, res.Success)
	assert.Equal(t, []string{"x", "y"}, res.Headers)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "3", res.Data[1]["z"])
}
