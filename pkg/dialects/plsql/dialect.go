// Package plsql provides the Oracle PL/SQL dialect definition.
package plsql

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

func init() {
	dialect.Register(PLSQL)
}

// Config is the PL/SQL dialect configuration.
var Config = &dialect.Config{
	Name:    "pl/sql",
	Aliases: []string{"plsql", "oracle"},

	TopLevel: []string{
		"ADD", "ALTER COLUMN", "ALTER TABLE", "BEGIN", "CONNECT BY", "DECLARE", "DELETE FROM",
		"DELETE", "EXCEPTION", "FETCH FIRST", "FROM", "GROUP BY", "HAVING", "INSERT INTO",
		"INSERT", "LIMIT", "LOOP", "MODIFY", "ORDER BY", "SELECT", "SET CURRENT SCHEMA",
		"SET SCHEMA", "SET", "START WITH", "UPDATE", "VALUES", "WHERE",
	},
	TopLevelNoIndent: dialect.StandardTopLevelNoIndent,
	Newline:          dialect.StandardNewline,
	Reserved: slices.Concat(dialect.StandardReserved, []string{
		"BINARY_INTEGER", "BODY", "BREADTH", "BULK", "COLLECT", "CURSOR", "DEPTH", "ELSIF",
		"EXIT", "FORALL", "NOCOPY", "NUMBER", "OUT", "PACKAGE", "PLS_INTEGER", "PRAGMA",
		"PRIOR", "RAISE", "RECORD", "RETURNING", "ROWNUM", "ROWTYPE", "SEARCH", "SUBTYPE",
		"SYSDATE", "VARCHAR2", "WHILE",
	}),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,
	// SEARCH BREADTH FIRST BY id SET order1: SET names the ordering column.
	Overrides: []dialect.KeywordOverride{{Keyword: "SET", After: "BY", As: "reserved"}},

	Operators:      dialect.StandardOperators,
	TightOperators: dialect.StandardTight,

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Prefixes: []string{"N"}, Doubled: true, Backslash: true},
		dialect.DoubleQuoted,
		dialect.BacktickQuoted,
	},
	LineComments: []string{"--"},
	BlockComment: dialect.StandardBlockComment,
	Parens:       dialect.StandardParens,
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: ":", Numbered: true, Named: true, Quoted: true},
	},
	IdentChars: "_$#.@",
}

// PLSQL is the Oracle PL/SQL dialect.
var PLSQL = dialect.New(Config).Build()
