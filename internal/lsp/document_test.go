package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///b.sql", "select 1", 1)
	store.Open("file:///a.sql", "select 2", 1)

	assert.Equal(t, []string{"file:///a.sql", "file:///b.sql"}, store.List())

	before := store.Get("file:///a.sql")
	store.Update("file:///a.sql", "select 3\nfrom t", 2)
	after := store.Get("file:///a.sql")
	assert.Equal(t, "select 2", before.Content, "readers keep their snapshot")
	assert.Equal(t, "select 3\nfrom t", after.Content)
	assert.Equal(t, 2, after.Version)
	assert.Equal(t, []int{0, 9}, after.Lines)

	store.Update("file:///missing.sql", "x", 1)
	assert.Nil(t, store.Get("file:///missing.sql"), "updates do not open documents")

	store.Close("file:///a.sql")
	assert.Nil(t, store.Get("file:///a.sql"))
}

func TestDocument_Positions(t *testing.T) {
	// "é" is 2 bytes and 1 UTF-16 unit; "😀" is 4 bytes and 2 units.
	doc := newDocument("file:///q.sql", "select 'é'\nselect '😀' x\n", 1)

	tests := []struct {
		name   string
		pos    Position
		offset int
	}{
		{"start", Position{0, 0}, 0},
		{"ascii", Position{0, 7}, 7},
		{"after two-byte rune", Position{0, 9}, 10},
		{"past line end clamps", Position{0, 40}, 11},
		{"second line", Position{1, 0}, 12},
		{"after surrogate pair", Position{1, 10}, 24},
		{"trailing empty line", Position{2, 0}, 28},
		{"past last line", Position{9, 0}, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.offset, doc.PositionToOffset(tt.pos))
		})
	}

	assert.Equal(t, Position{1, 10}, doc.OffsetToPosition(24))
	assert.Equal(t, Position{0, 10}, doc.OffsetToPosition(11))
	assert.Equal(t, Position{2, 0}, doc.EndPosition())
	assert.Equal(t, Position{0, 0}, doc.OffsetToPosition(-5))
}

func TestDocument_GetTextInRange(t *testing.T) {
	doc := newDocument("file:///q.sql", "select 1;\nselect a, b from t;\n", 1)

	got := doc.GetTextInRange(Range{Start: Position{1, 0}, End: Position{1, 20}})
	require.Equal(t, "select a, b from t;", got)
	assert.Empty(t, doc.GetTextInRange(Range{Start: Position{1, 5}, End: Position{1, 2}}))
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/work/q.sql", URIToPath("file:///work/q.sql"))
	assert.Equal(t, "untitled:1", URIToPath("untitled:1"))
}
