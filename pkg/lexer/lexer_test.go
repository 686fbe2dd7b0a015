package lexer

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/dialects/ansi"
	"github.com/leapstack-labs/sqlfmt/pkg/dialects/n1ql"
	"github.com/leapstack-labs/sqlfmt/pkg/dialects/plsql"
	"github.com/leapstack-labs/sqlfmt/pkg/dialects/postgres"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	cat  token.Category
	text string
}

func simplify(toks []token.Token) []tok {
	out := make([]tok, len(toks))
	for i, t := range toks {
		out[i] = tok{t.Category, t.Text}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		dialect *dialect.Dialect
		input   string
		want    []tok
	}{
		{
			name:    "simple select",
			dialect: ansi.ANSI,
			input:   "SELECT a, b FROM t;",
			want: []tok{
				{token.TopLevelKeyword, "SELECT"},
				{token.Identifier, "a"},
				{token.Comma, ","},
				{token.Identifier, "b"},
				{token.TopLevelKeyword, "FROM"},
				{token.Identifier, "t"},
				{token.Semicolon, ";"},
			},
		},
		{
			name:    "multi word keyword across whitespace",
			dialect: ansi.ANSI,
			input:   "a LEFT \t OUTER\n JOIN b",
			want: []tok{
				{token.Identifier, "a"},
				{token.NewlineKeyword, "LEFT \t OUTER\n JOIN"},
				{token.Identifier, "b"},
			},
		},
		{
			name:    "phrase falls back to single word",
			dialect: ansi.ANSI,
			input:   "LEFT(x)",
			want: []tok{
				{token.PlainKeyword, "LEFT"},
				{token.OpenParen, "("},
				{token.Identifier, "x"},
				{token.CloseParen, ")"},
			},
		},
		{
			name:    "operators longest first",
			dialect: ansi.ANSI,
			input:   "a<>b!~~*c::int",
			want: []tok{
				{token.Identifier, "a"},
				{token.Operator, "<>"},
				{token.Identifier, "b"},
				{token.Operator, "!~~*"},
				{token.Identifier, "c"},
				{token.Operator, "::"},
				{token.Identifier, "int"},
			},
		},
		{
			name:    "unknown rune is a single operator",
			dialect: ansi.ANSI,
			input:   "a ~ b %",
			want: []tok{
				{token.Identifier, "a"},
				{token.Operator, "~"},
				{token.Identifier, "b"},
				{token.Operator, "%"},
			},
		},
		{
			name:    "strings with escapes",
			dialect: ansi.ANSI,
			input:   `'it''s' 'a\'b' N'ü'`,
			want: []tok{
				{token.String, `'it''s'`},
				{token.String, `'a\'b'`},
				{token.String, `N'ü'`},
			},
		},
		{
			name:    "quoted identifiers",
			dialect: ansi.ANSI,
			input:   "\"a\"\"b\" `c` [d e]",
			want: []tok{
				{token.QuotedIdentifier, `"a""b"`},
				{token.QuotedIdentifier, "`c`"},
				{token.QuotedIdentifier, "[d e]"},
			},
		},
		{
			name:    "unterminated string runs to end",
			dialect: ansi.ANSI,
			input:   "SELECT 'abc\ndef",
			want: []tok{
				{token.TopLevelKeyword, "SELECT"},
				{token.String, "'abc\ndef"},
			},
		},
		{
			name:    "comments",
			dialect: ansi.ANSI,
			input:   "a -- one\r\n# two\n/* three\n */ b",
			want: []tok{
				{token.Identifier, "a"},
				{token.LineComment, "-- one"},
				{token.LineComment, "# two"},
				{token.BlockComment, "/* three\n */"},
				{token.Identifier, "b"},
			},
		},
		{
			name:    "unterminated block comment",
			dialect: ansi.ANSI,
			input:   "a /* b",
			want: []tok{
				{token.Identifier, "a"},
				{token.BlockComment, "/* b"},
			},
		},
		{
			name:    "numbers",
			dialect: ansi.ANSI,
			input:   "1 2.5 1e10 3.0E-2 0x1F 0b101",
			want: []tok{
				{token.Number, "1"},
				{token.Number, "2.5"},
				{token.Number, "1e10"},
				{token.Number, "3.0E-2"},
				{token.Number, "0x1F"},
				{token.Number, "0b101"},
			},
		},
		{
			name:    "digit led word",
			dialect: ansi.ANSI,
			input:   "1st 2x",
			want: []tok{
				{token.Identifier, "1st"},
				{token.Identifier, "2x"},
			},
		},
		{
			name:    "negative number after keyword",
			dialect: ansi.ANSI,
			input:   "SELECT -1",
			want: []tok{
				{token.TopLevelKeyword, "SELECT"},
				{token.Number, "-1"},
			},
		},
		{
			name:    "minus after value is an operator",
			dialect: ansi.ANSI,
			input:   "a -1 (b)-2",
			want: []tok{
				{token.Identifier, "a"},
				{token.Operator, "-"},
				{token.Number, "1"},
				{token.OpenParen, "("},
				{token.Identifier, "b"},
				{token.CloseParen, ")"},
				{token.Operator, "-"},
				{token.Number, "2"},
			},
		},
		{
			name:    "word after dot is an identifier",
			dialect: ansi.ANSI,
			input:   "t.select",
			want: []tok{
				{token.Identifier, "t"},
				{token.Operator, "."},
				{token.Identifier, "select"},
			},
		},
		{
			name:    "case keywords",
			dialect: ansi.ANSI,
			input:   "CASE WHEN a THEN b ELSE c END",
			want: []tok{
				{token.CaseKeyword, "CASE"},
				{token.CaseKeyword, "WHEN"},
				{token.Identifier, "a"},
				{token.CaseKeyword, "THEN"},
				{token.Identifier, "b"},
				{token.CaseKeyword, "ELSE"},
				{token.Identifier, "c"},
				{token.CaseKeyword, "END"},
			},
		},
		{
			name:    "plsql identifier chars",
			dialect: plsql.PLSQL,
			input:   "SELECT my_col$#@ FROM a.b# WHERE x = 1",
			want: []tok{
				{token.TopLevelKeyword, "SELECT"},
				{token.Identifier, "my_col$#@"},
				{token.TopLevelKeyword, "FROM"},
				{token.Identifier, "a.b#"},
				{token.TopLevelKeyword, "WHERE"},
				{token.Identifier, "x"},
				{token.Operator, "="},
				{token.Number, "1"},
			},
		},
		{
			name:    "plsql set after by",
			dialect: plsql.PLSQL,
			input:   "SEARCH BREADTH FIRST BY id SET order1",
			want: []tok{
				{token.PlainKeyword, "SEARCH"},
				{token.PlainKeyword, "BREADTH"},
				{token.PlainKeyword, "FIRST"},
				{token.PlainKeyword, "BY"},
				{token.Identifier, "id"},
				{token.PlainKeyword, "SET"},
				{token.Identifier, "order1"},
			},
		},
		{
			name:    "postgres dollar quotes and nested comments",
			dialect: postgres.Postgres,
			input:   "$fn$ a 'b' $fn$ /* x /* y */ z */ $$c$$",
			want: []tok{
				{token.String, "$fn$ a 'b' $fn$"},
				{token.BlockComment, "/* x /* y */ z */"},
				{token.String, "$$c$$"},
			},
		},
		{
			name:    "n1ql brackets and braces",
			dialect: n1ql.N1QL,
			input:   "[1, {a: 2}]",
			want: []tok{
				{token.OpenParen, "["},
				{token.Number, "1"},
				{token.Comma, ","},
				{token.OpenParen, "{"},
				{token.Identifier, "a"},
				{token.Operator, ":"},
				{token.Number, "2"},
				{token.CloseParen, "}"},
				{token.CloseParen, "]"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.dialect)
			assert.Equal(t, tt.want, simplify(got))
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		dialect *dialect.Dialect
		input   string
		texts   []string
		keys    []string
	}{
		{"anonymous", ansi.ANSI, "? ?", []string{"?", "?"}, []string{"", ""}},
		{"numbered", ansi.ANSI, "?1 ?20", []string{"?1", "?20"}, []string{"1", "20"}},
		{"named at", ansi.ANSI, "@name", []string{"@name"}, []string{"name"}},
		{"named colon", ansi.ANSI, ":name", []string{":name"}, []string{"name"}},
		{"quoted names", ansi.ANSI, `@"my var" :'x''y'`, []string{`@"my var"`, `:'x''y'`}, []string{"my var", "x'y"}},
		{"postgres numbered", postgres.Postgres, "$1, $2", []string{"$1", "$2"}, []string{"1", "2"}},
		{"n1ql named", n1ql.N1QL, "$name $1", []string{"$name", "$1"}, []string{"name", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var texts, keys []string
			for _, tok := range Tokenize(tt.input, tt.dialect) {
				if tok.Category == token.Placeholder {
					texts = append(texts, tok.Text)
					keys = append(keys, tok.Key)
				}
			}
			assert.Equal(t, tt.texts, texts)
			assert.Equal(t, tt.keys, keys)
		})
	}
}

func TestNamedSentinelsNeedAName(t *testing.T) {
	toks := Tokenize("a::int @ b :", ansi.ANSI)
	require.Len(t, toks, 6)
	assert.Equal(t, tok{token.Operator, "::"}, simplify(toks)[1])
	assert.Equal(t, tok{token.Operator, "@"}, simplify(toks)[3])
	assert.Equal(t, tok{token.Operator, ":"}, simplify(toks)[5])
}

func TestWhitespaceFlags(t *testing.T) {
	toks := Tokenize("a b\nc\n\n  d(e", ansi.ANSI)
	require.Len(t, toks, 6)

	flags := func(tk token.Token) [3]bool {
		return [3]bool{tk.SpaceBefore, tk.NewlineBefore, tk.BlankLineBefore}
	}
	assert.Equal(t, [3]bool{false, false, false}, flags(toks[0]))
	assert.Equal(t, [3]bool{true, false, false}, flags(toks[1]))
	assert.Equal(t, [3]bool{true, true, false}, flags(toks[2]))
	assert.Equal(t, [3]bool{true, true, true}, flags(toks[3]))
	assert.Equal(t, [3]bool{false, false, false}, flags(toks[4]))
}

func TestPositions(t *testing.T) {
	toks := Tokenize("SELECT 'é',\n  x", ansi.ANSI)
	require.Len(t, toks, 4)

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, toks[0].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 8, Offset: 7}, toks[1].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 11, Offset: 11}, toks[2].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 3, Offset: 15}, toks[3].Pos)
}

func TestKeywordNorm(t *testing.T) {
	toks := Tokenize("group \n by x", ansi.ANSI)
	require.Len(t, toks, 2)
	assert.Equal(t, "GROUP BY", toks[0].Norm)
	assert.Equal(t, "group \n by", toks[0].Text)
	assert.Empty(t, toks[1].Norm)
}

func TestTokensReconstructSource(t *testing.T) {
	inputs := []string{
		"SELECT a, b FROM t WHERE x = 'y' -- c\n/* d */ ;",
		"select\t*  from \"t\" where a between 1 and 2",
		"$$ unterminated",
		"CASE WHEN ?1 THEN @x ELSE :'q' END",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tk := range Tokenize(input, postgres.Postgres) {
			b.WriteString(tk.Text)
		}
		assert.Equal(t, strings.Join(strings.Fields(input), ""), strings.Join(strings.Fields(b.String()), ""), input)
	}

	// Whitespace sits exactly between token spans.
	input := "SELECT  a ,\n b"
	toks := Tokenize(input, ansi.ANSI)
	end := 0
	for _, tk := range toks {
		gap := input[end:tk.Pos.Offset]
		assert.Empty(t, strings.TrimSpace(gap))
		assert.Equal(t, gap != "", tk.SpaceBefore)
		assert.Equal(t, tk.Text, input[tk.Pos.Offset:tk.Pos.Offset+len(tk.Text)])
		end = tk.Pos.Offset + len(tk.Text)
	}
	assert.Equal(t, len(input), end)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize("", ansi.ANSI))
	assert.Empty(t, Tokenize(" \n\t ", ansi.ANSI))
}
