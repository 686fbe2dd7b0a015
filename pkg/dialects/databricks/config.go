// Package databricks provides the Databricks SQL dialect definition.
package databricks

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

// Config is the Databricks SQL dialect configuration.
// The Builder reads feature flags and auto-wires QUALIFY and the :: cast operator.
var Config = &dialect.Config{
	Name:    "databricks",
	Aliases: []string{"spark", "sparksql"},

	TopLevel: slices.Concat(dialect.StandardTopLevel, []string{
		"CLUSTER BY", "DISTRIBUTE BY", "SORT BY", "LATERAL VIEW", "OFFSET", "WINDOW",
	}),
	TopLevelNoIndent: dialect.StandardTopLevelNoIndent,
	Newline: slices.Concat(dialect.StandardNewline, []string{
		"SEMI JOIN", "ANTI JOIN", "LEFT SEMI JOIN", "LEFT ANTI JOIN",
	}),
	Reserved:           slices.Concat(dialect.StandardReserved, databricksReserved),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:      slices.Concat(dialect.StandardOperators, []string{"?::", "<=>"}),
	TightOperators: slices.Concat(dialect.StandardTight, []string{"::", "?::"}),

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Prefixes: []string{"R", "X"}, Doubled: true, Backslash: true},
		{Open: `"`, Close: `"`, Doubled: true, Backslash: true},
		dialect.BacktickQuoted,
	},
	LineComments: []string{"--"},
	BlockComment: dialect.StandardBlockComment,
	Parens:       []dialect.Pair{{Open: "(", Close: ")"}, {Open: "[", Close: "]"}},
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: ":", Named: true},
	},

	SupportsNestedComments: true,
	SupportsQualify:        true,
	SupportsCastOperator:   true,
}

var databricksReserved = []string{
	"ANTI", "BUCKET", "DIV", "EXPLODE", "ILIKE", "LATERAL", "PERCENT", "QUALIFY", "REGEXP",
	"RLIKE", "SEMI", "TABLESAMPLE", "VIEW",
}
