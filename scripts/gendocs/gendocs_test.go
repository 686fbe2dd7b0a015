package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownWriter_Table(t *testing.T) {
	w := NewMarkdownWriter()
	w.Table([]string{"Option", "Description"}, [][]string{
		{InlineCode("--output"), "auto|text"},
	})

	assert.Equal(t, "| Option | Description |\n|---|---|\n| `--output` | auto\\|text |\n\n", string(w.Bytes()))
}

func TestCleanExample(t *testing.T) {
	got := cleanExample("  # Format stdin\n  echo 'select 1' | sqlfmt format\n\n    nested\n")
	assert.Equal(t, "# Format stdin\necho 'select 1' | sqlfmt format\n\n  nested", got)
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		return string(data)
	}

	index := read("index.md")
	assert.Contains(t, index, "[`format`](format.md)")
	assert.Contains(t, index, "| `serve.addr` | `SQLFMT_SERVE_ADDR` | `--addr` | `localhost:8765` |")
	assert.Contains(t, index, "| `params` | `SQLFMT_PARAMS` | `--param` |  | Placeholder value as key=value (repeatable) |")
	assert.Contains(t, index, "| `watch.debounce` | `SQLFMT_WATCH_DEBOUNCE` |  | `100ms` | Quiet period")
	assert.Contains(t, index, "[`pl/sql`](../dialects.md#plsql)")

	page := read("format.md")
	assert.Contains(t, page, "sqlfmt format [files...]")
	assert.Contains(t, page, "Aliases: `fmt`")
	assert.Contains(t, page, "| `--check` |  |  |  | Exit non-zero if any input is not formatted |")
	assert.Contains(t, page, "| `--language` | -l |  | `language` |")

	formatting := read("formatting.md")
	assert.Contains(t, formatting, "## Defaults\n\n```sql\nselect\n  id,\n")
	assert.Contains(t, formatting, "## `--uppercase`\n\nUppercase keywords.")
	assert.Contains(t, formatting, "SELECT\n  id,\n")
	assert.Contains(t, formatting, "Config key `inline_width`, environment `SQLFMT_INLINE_WIDTH`.")
	assert.Contains(t, formatting, "status = 'paid'")
	assert.Contains(t, formatting, "status = :status")
}

func TestGenerateDialectDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateDialectDocs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "dialects.md"))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "| `postgresql` | `postgres`, `pg` | `$1` |")
	assert.Contains(t, doc, "## snowflake")
	assert.Contains(t, doc, "`QUALIFY`")
}
