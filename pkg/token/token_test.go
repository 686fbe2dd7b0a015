package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "TOP_LEVEL_KEYWORD", TopLevelKeyword.String())
	assert.Equal(t, "PLACEHOLDER", Placeholder.String())
	assert.Equal(t, "CATEGORY(99)", Category(99).String())
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		cat     Category
		keyword bool
		comment bool
		value   bool
	}{
		{TopLevelKeyword, true, false, false},
		{CaseKeyword, true, false, false},
		{LineComment, false, true, false},
		{BlockComment, false, true, false},
		{Identifier, false, false, true},
		{CloseParen, false, false, true},
		{OpenParen, false, false, false},
		{Operator, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			assert.Equal(t, tt.keyword, tt.cat.IsKeyword())
			assert.Equal(t, tt.comment, tt.cat.IsComment())
			assert.Equal(t, tt.value, tt.cat.IsValue())
		})
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Category: NewlineKeyword, Text: "left \n join", Norm: "LEFT JOIN"}
	assert.True(t, tok.Is("LEFT JOIN"))
	assert.False(t, tok.Is("JOIN"))

	ident := Token{Category: Identifier, Text: "join"}
	assert.False(t, ident.Is(""))
}

func TestTokenAnonymous(t *testing.T) {
	assert.True(t, Token{Category: Placeholder, Text: "?"}.Anonymous())
	assert.False(t, Token{Category: Placeholder, Text: "?1", Key: "1"}.Anonymous())
	assert.False(t, Token{Category: Identifier, Text: "x"}.Anonymous())
}

func TestPositionAdvance(t *testing.T) {
	start := Position{Line: 1, Column: 1, Offset: 0}

	p := start.Advance("тест")
	assert.Equal(t, Position{Line: 1, Column: 5, Offset: 8}, p)

	p = start.Advance("ab\ncd")
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 5}, p)
	assert.True(t, p.IsValid())
	assert.False(t, Position{}.IsValid())
}
