package ansi

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

// Config is the standard SQL dialect configuration.
// This is pure data - dialect files may extend it by name.
var Config = &dialect.Config{
	Name:    "sql",
	Aliases: []string{"standard", "ansi"},

	TopLevel:           dialect.StandardTopLevel,
	TopLevelNoIndent:   dialect.StandardTopLevelNoIndent,
	Newline:            dialect.StandardNewline,
	Reserved:           dialect.StandardReserved,
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:      dialect.StandardOperators,
	TightOperators: dialect.StandardTight,

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Prefixes: []string{"N"}, Doubled: true, Backslash: true},
		dialect.DoubleQuoted,
		dialect.BacktickQuoted,
		dialect.BracketQuoted,
	},
	IdentChars:   "$",
	LineComments: []string{"--", "#"},
	BlockComment: dialect.StandardBlockComment,
	Parens:       dialect.StandardParens,
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: "@", Named: true, Quoted: true},
		{Sentinel: ":", Named: true, Quoted: true},
	},
}
