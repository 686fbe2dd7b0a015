package main

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keywordsPage = `<html><body>
<table>
<thead><tr><th>Keyword</th><th>Comment</th></tr></thead>
<tbody>
<tr><td>A</td><td></td></tr>
<tr><td><p>ACCOUNT</p></td><td>Cannot be used as an identifier in a SHOW command.</td></tr>
<tr><td>ALL</td><td>Reserved by ANSI.</td></tr>
<tr><td>CURRENT_DATE</td><td>Cannot be used as column name.</td></tr>
<tr><td>ALL</td><td>duplicate</td></tr>
<tr><td>see note (1)</td><td></td></tr>
</tbody>
</table>
</body></html>`

func TestParseKeywordsPage(t *testing.T) {
	got, err := parseKeywordsPage([]byte(keywordsPage))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACCOUNT", "ALL", "CURRENT_DATE"}, got)
}

func TestGenerateKeywordsCode(t *testing.T) {
	code := generateKeywordsCode([]string{"ACCOUNT", "ALL"})

	assert.Contains(t, code, "// Code generated by scripts/gensnowflake. DO NOT EDIT.")
	assert.Contains(t, code, `"ACCOUNT", "ALL",`)

	_, err := parser.ParseFile(token.NewFileSet(), "keywords_gen.go", code, 0)
	assert.NoError(t, err)
}
