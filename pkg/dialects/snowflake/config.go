// Package snowflake provides the Snowflake SQL dialect definition.
package snowflake

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

// Config is the Snowflake SQL dialect configuration.
// The Builder reads feature flags and auto-wires QUALIFY and the :: cast operator.
var Config = &dialect.Config{
	Name: "snowflake",

	TopLevel:           slices.Concat(dialect.StandardTopLevel, []string{"OFFSET", "MERGE INTO"}),
	TopLevelNoIndent:   dialect.StandardTopLevelNoIndent,
	Newline:            slices.Concat(dialect.StandardNewline, []string{"ASOF JOIN", "LATERAL FLATTEN"}),
	Reserved:           slices.Concat(dialect.StandardReserved, snowflakeKeywords, snowflakeReserved),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	// src:customer.name is a semi-structured path, not a bind variable.
	Operators:      dialect.StandardOperators,
	TightOperators: slices.Concat(dialect.StandardTight, []string{"::", ":"}),

	Quotes: []dialect.QuoteStyle{
		dialect.SingleQuoted,
		{Open: `"`, Close: `"`, Identifier: true, Doubled: true},
	},
	LineComments: []string{"--", "//"},
	BlockComment: dialect.StandardBlockComment,
	Parens: []dialect.Pair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
	},
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: ":", Numbered: true},
	},
	IdentChars: "$",

	SupportsDollarQuotes: true,
	SupportsQualify:      true,
	SupportsCastOperator: true,
}

var snowflakeReserved = []string{
	"FLATTEN", "ILIKE", "INCREMENT", "LATERAL", "MATCHED", "QUALIFY", "REGEXP",
	"RLIKE", "SAMPLE", "TABLESAMPLE", "TRY_CAST",
}
