// Package duckdb provides the DuckDB SQL dialect definition.
package duckdb

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

// Config is the DuckDB dialect configuration.
// The Builder reads feature flags and auto-wires QUALIFY and the :: cast operator.
var Config = &dialect.Config{
	Name: "duckdb",

	TopLevel:           slices.Concat(dialect.StandardTopLevel, []string{"RETURNING", "WINDOW", "OFFSET", "USING SAMPLE"}),
	TopLevelNoIndent:   slices.Concat(dialect.StandardTopLevelNoIndent, []string{"UNION BY NAME", "UNION ALL BY NAME"}),
	Newline:            slices.Concat(dialect.StandardNewline, duckDBJoins),
	Reserved:           slices.Concat(dialect.StandardReserved, duckDBKeywords, duckDBReserved),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:      slices.Concat(dialect.StandardOperators, []string{"//", "**", "^@"}),
	TightOperators: slices.Concat(dialect.StandardTight, []string{"::"}),

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Doubled: true},
		{Open: "'", Close: "'", Prefixes: []string{"E"}, Doubled: true, Backslash: true},
		{Open: `"`, Close: `"`, Identifier: true, Doubled: true},
	},
	LineComments: []string{"--"},
	BlockComment: dialect.StandardBlockComment,
	Parens: []dialect.Pair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
	},
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: "$", Numbered: true, Named: true},
	},

	SupportsDollarQuotes: true,
	SupportsQualify:      true,
	SupportsCastOperator: true,
}

var duckDBJoins = []string{
	"SEMI JOIN", "ANTI JOIN", "ASOF JOIN", "ASOF LEFT JOIN", "POSITIONAL JOIN",
	"LEFT SEMI JOIN", "LEFT ANTI JOIN",
}

var duckDBReserved = []string{
	"ANTI", "ASOF", "COLUMNS", "EXCLUDE", "ILIKE", "LAMBDA", "LATERAL", "PIVOT",
	"PIVOT_LONGER", "PIVOT_WIDER", "POSITIONAL", "QUALIFY", "RECURSIVE", "SEMI",
	"STRUCT", "UNPIVOT",
}
