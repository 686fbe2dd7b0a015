// Package db2 provides the IBM Db2 dialect definition.
package db2

import (
	"slices"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
)

func init() {
	dialect.Register(DB2)
}

// Config is the Db2 dialect configuration.
var Config = &dialect.Config{
	Name: "db2",

	TopLevel: []string{
		"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM", "FETCH FIRST", "FROM",
		"GROUP BY", "GO", "HAVING", "INSERT INTO", "LIMIT", "OFFSET", "ORDER BY", "SELECT",
		"SET CURRENT SCHEMA", "SET SCHEMA", "SET", "UPDATE", "VALUES", "WHERE",
	},
	TopLevelNoIndent: dialect.StandardTopLevelNoIndent,
	Newline:          dialect.StandardNewline,
	Reserved: slices.Concat(dialect.StandardReserved, []string{
		"ALIAS", "ALLOW", "AUDIT", "AUX", "AUXILIARY", "BUFFERPOOL", "CAPTURE", "CCSID",
		"CLONE", "CLUSTER", "COLLECTION", "CONTINUE", "DATAPARTITIONNAME", "DB2GENERAL",
		"DB2GENRL", "DB2SQL", "DBINFO", "DBPARTITIONNAME", "DBPARTITIONNUM", "DEACTIVATE",
		"DSSIZE", "EDITPROC", "ENCODING", "ERASE", "FENCED", "FIELDPROC", "GENERATED",
		"IMMEDIATE", "IMPLICITLY", "INCLUDING", "INHERIT", "ISOBID", "LOCATOR", "LOCKMAX",
		"LOCKSIZE", "MAXVALUE", "MICROSECOND", "MICROSECONDS", "MINVALUE", "NEXTVAL",
		"NOCACHE", "NOCYCLE", "NODENAME", "NODENUMBER", "NOMAXVALUE", "NOMINVALUE", "NOORDER",
		"OBID", "OPTIMIZATION", "PACKAGE", "PADDED", "PARAMETER", "PIECESIZE", "PREVVAL",
		"PRIQTY", "PSID", "QUERYNO", "RRN", "SECQTY", "STOGROUP", "SUMMARY", "SYSTEM_USER",
		"TABLESPACE", "VALIDPROC", "VOLATILE", "VOLUMES", "WLM",
	}),
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:      slices.Concat(dialect.StandardOperators, []string{"¬=", "¬>", "¬<", "!!"}),
	TightOperators: dialect.StandardTight,

	Quotes: []dialect.QuoteStyle{
		{Open: "'", Close: "'", Prefixes: []string{"X", "G", "N", "GX", "UX", "BX"}, Doubled: true},
		dialect.DoubleQuoted,
		dialect.BacktickQuoted,
	},
	LineComments: []string{"--"},
	BlockComment: dialect.StandardBlockComment,
	Parens:       dialect.StandardParens,
	Placeholders: []dialect.PlaceholderStyle{
		dialect.Positional,
		{Sentinel: ":", Named: true},
	},
	IdentChars: "#@$",
}

// DB2 is the IBM Db2 dialect.
var DB2 = dialect.New(Config).Build()
