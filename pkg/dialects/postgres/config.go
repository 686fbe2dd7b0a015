// Package postgres provides the PostgreSQL SQL dialect definition.
package postgres

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

// Config is the PostgreSQL dialect configuration.
// The Builder reads feature flags and auto-wires the :: cast operator.
var Config = &dialect.Config{
	Name:    "postgresql",
	Aliases: []string{"postgres", "pg"},

	TopLevel:           slices.Concat(dialect.StandardTopLevel, []string{"RETURNING", "WINDOW", "OFFSET"}),
	TopLevelNoIndent:   dialect.StandardTopLevelNoIndent,
	Newline:            slices.Concat(dialect.StandardNewline, []string{"LEFT JOIN LATERAL", "CROSS JOIN LATERAL"}),
	Reserved:           slices.Concat(dialect.StandardReserved, postgresReserved),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:      slices.Concat(dialect.StandardOperators, dialect.PostgresOperators),
	TightOperators: slices.Concat(dialect.StandardTight, []string{"::"}),

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Prefixes: []string{"B", "X", "U&"}, Doubled: true},
		{Open: "'", Close: "'", Prefixes: []string{"E"}, Doubled: true, Backslash: true},
		{Open: `"`, Close: `"`, Prefixes: []string{"U&"}, Identifier: true, Doubled: true},
	},
	LineComments: []string{"--"},
	BlockComment: dialect.StandardBlockComment,
	Parens:       []dialect.Pair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}},
	Placeholders: []dialect.PlaceholderStyle{
		{Sentinel: "$", Numbered: true},
	},
	IdentChars: "$",

	SupportsDollarQuotes:   true,
	SupportsNestedComments: true,
	SupportsCastOperator:   true,
}

var postgresReserved = []string{
	"ARRAY", "ASYMMETRIC", "AUTHORIZATION", "CONCURRENTLY", "CONFLICT", "DEFERRABLE",
	"FREEZE", "ILIKE", "INITIALLY", "ISNULL", "LATERAL", "MATERIALIZED", "NOTNULL",
	"NOTHING", "OVERLAPS", "PLACING", "RECURSIVE", "SIMILAR", "SYMMETRIC", "VARIADIC",
	"VERBOSE", "WINDOW",
}
