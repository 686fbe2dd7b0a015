package sqlfmt_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leapstack-labs/sqlfmt/internal/testutil"
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/lexer"
	"github.com/leapstack-labs/sqlfmt/pkg/params"
	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     sqlfmt.Options
		expected string
	}{
		{
			name:     "defaults",
			input:    "select a,b from t",
			expected: "select\n  a,\n  b\nfrom\n  t\n",
		},
		{
			name:     "language alias is case-insensitive",
			input:    "select a::int",
			opts:     sqlfmt.Options{Language: "PostgreSQL"},
			expected: "select\n  a::int\n",
		},
		{
			name:     "indexed placeholders",
			input:    "SELECT ?1, ?2, ?0;",
			opts:     sqlfmt.Options{Params: params.Named(map[string]any{"0": "first", "1": "second", "2": "third"})},
			expected: "SELECT\n  second,\n  third,\n  first;\n",
		},
		{
			name:     "positional placeholders",
			input:    "SELECT ?, ?, ?;",
			opts:     sqlfmt.Options{Language: "pl/sql", Params: params.Positional("first", "second", "third")},
			expected: "SELECT\n  first,\n  second,\n  third;\n",
		},
		{
			name:     "named placeholders keep missing ones",
			input:    "select * from t where a = :a and b = :b",
			opts:     sqlfmt.Options{Language: "oracle", Params: params.Named(map[string]any{"a": 42})},
			expected: "select\n  *\nfrom\n  t\nwhere\n  a = 42\n  and b = :b\n",
		},
		{
			name:     "substituted values keep their case",
			input:    "select ?",
			opts:     sqlfmt.Options{Uppercase: true, Params: params.Positional("lower_case")},
			expected: "SELECT\n  lower_case\n",
		},
		{
			name:     "all options",
			input:    "select a from t; select b from u",
			opts:     sqlfmt.Options{Indent: "    ", Uppercase: true, LinesBetweenQueries: 2},
			expected: "SELECT\n    a\nFROM\n    t;\n\nSELECT\n    b\nFROM\n    u\n",
		},
		{
			name:     "statement separation",
			input:    "foo;bar;",
			expected: "foo;\nbar;\n",
		},
		{
			name:     "empty",
			input:    "",
			expected: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := sqlfmt.Format(tt.input, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormat_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		opts   sqlfmt.Options
		option string
		target error
	}{
		{
			name:   "unknown language",
			opts:   sqlfmt.Options{Language: "cobol"},
			option: "language",
			target: dialect.ErrUnknownDialect,
		},
		{
			name:   "negative lines between queries",
			opts:   sqlfmt.Options{LinesBetweenQueries: -1},
			option: "lines_between_queries",
			target: sqlfmt.ErrInvalidOption,
		},
		{
			name:   "negative inline width",
			opts:   sqlfmt.Options{InlineWidth: -5},
			option: "inline_width",
			target: sqlfmt.ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sqlfmt.Format("select 1", tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)

			var cfgErr *sqlfmt.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestNew_Dialect(t *testing.T) {
	f, err := sqlfmt.New(sqlfmt.Options{})
	require.NoError(t, err)
	assert.Equal(t, sqlfmt.DefaultLanguage, f.Dialect().Name)

	f, err = sqlfmt.New(sqlfmt.Options{Language: "spark"})
	require.NoError(t, err)
	assert.Equal(t, "databricks", f.Dialect().Name)
}

func TestFormatter_Logger(t *testing.T) {
	f, err := sqlfmt.New(sqlfmt.Options{
		Params: params.Positional("x"),
		Logger: testutil.NewTestLogger(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "select\n  x,\n  ?\n", f.Format("select ?, ?"))
}

func TestFormatter_Concurrent(t *testing.T) {
	f, err := sqlfmt.New(sqlfmt.Options{Uppercase: true, Params: params.Positional(1, 2)})
	require.NoError(t, err)

	const want = "SELECT\n  1,\n  2\nFROM\n  (\n    SELECT\n      c\n    FROM\n      t\n    WHERE\n      x = 'y'\n  )\n"

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			got := f.Format("select ?, ? from (select c from t where x = 'y')")
			if got != want {
				return fmt.Errorf("goroutine %d: got %q", i, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := map[string]string{
		"sql":        "select a, count(*) from t left join u on t.id = u.id where a between 1 and 2 or b in (1, 2) group by a",
		"postgresql": "select $1::text, payload->>'k' from e where tags @> array['x'] returning id",
		"n1ql":       "SELECT {a:1, b:[2,3]} FROM bucket USE KEYS $keys NEST other ON KEYS id",
		"db2":        "select * from t where a ¬= b fetch first 5 rows only",
		"duckdb":     "select * exclude (x) from tbl qualify row_number() over () = 1 limit 3",
		"databricks": "select `col`, a <=> b from t cluster by a distribute by b",
	}

	for lang, input := range inputs {
		t.Run(lang, func(t *testing.T) {
			once, err := sqlfmt.Format(input, sqlfmt.Options{Language: lang})
			require.NoError(t, err)
			twice, err := sqlfmt.Format(once, sqlfmt.Options{Language: lang})
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

var builtinDialects = []string{"sql", "pl/sql", "db2", "n1ql", "postgresql", "duckdb", "snowflake", "databricks"}

// tokenKeys lexes src and returns one comparable key per token: keywords by
// their normalized spelling, everything else by its text with whitespace
// collapsed.
func tokenKeys(t *testing.T, src, language string) []string {
	t.Helper()
	d, err := dialect.Lookup(language)
	require.NoError(t, err)

	toks := lexer.Tokenize(src, d)
	keys := make([]string, 0, len(toks))
	for _, tk := range toks {
		text := strings.Join(strings.Fields(tk.Text), " ")
		if tk.Category.IsKeyword() {
			text = tk.Norm
		}
		keys = append(keys, tk.Category.String()+" "+text)
	}
	return keys
}

func TestFormat_PreservesTokens(t *testing.T) {
	common := "SELECT a, b FROM t WHERE x = 1 AND (y < 2 OR z > 3) ORDER BY a; select c from u /* note\n   here */"
	specific := map[string]string{
		"sql":        "select a, count(*) from t left join u on t.id = u.id where a between 1 and 2 or b in (1, 2) group by a",
		"pl/sql":     "select a, b from t where x = :id and y <> 'z' order by a",
		"db2":        "select * from t where a ¬= b fetch first 5 rows only",
		"n1ql":       "SELECT {a:1, b:[2,3]} FROM bucket USE KEYS $keys NEST other ON KEYS id",
		"postgresql": "select $1::text, payload->>'k' from e where tags @> array['x'] returning id",
		"duckdb":     "select * exclude (x) from tbl qualify row_number() over () = 1 limit 3",
		"snowflake":  "select a, count(*) from t group by a qualify rank() over (partition by a order by b) = 1",
		"databricks": "select `col`, a <=> b from t cluster by a distribute by b",
	}

	for _, lang := range builtinDialects {
		for _, input := range []string{common, specific[lang]} {
			for _, upper := range []bool{false, true} {
				t.Run(fmt.Sprintf("%s/upper=%v", lang, upper), func(t *testing.T) {
					out, err := sqlfmt.Format(input, sqlfmt.Options{Language: lang, Uppercase: upper})
					require.NoError(t, err)
					assert.Equal(t, tokenKeys(t, input, lang), tokenKeys(t, out, lang))
				})
			}
		}
	}
}

func TestFormat_UnmatchedCloseParen(t *testing.T) {
	for _, lang := range builtinDialects {
		t.Run(lang, func(t *testing.T) {
			out, err := sqlfmt.Format("SELECT a) FROM b", sqlfmt.Options{Language: lang})
			require.NoError(t, err)
			assert.Equal(t, "SELECT\n  a)\nFROM\n  b\n", out)

			out, err = sqlfmt.Format("SELECT a FROM (SELECT b) ) WHERE c", sqlfmt.Options{Language: lang})
			require.NoError(t, err)
			assert.Equal(t, "SELECT\n  a\nFROM\n  (\n    SELECT\n      b\n  ))\nWHERE\n  c\n", out)
		})
	}
}
