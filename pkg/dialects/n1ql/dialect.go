// Package n1ql provides the Couchbase N1QL dialect definition.
package n1ql

import "github.com/leapstack-labs/sqlfmt/pkg/dialect"

func init() {
	dialect.Register(N1QL)
}

// Config is the N1QL dialect configuration.
var Config = &dialect.Config{
	Name:    "n1ql",
	Aliases: []string{"couchbase"},

	TopLevel: []string{
		"DELETE FROM", "EXPLAIN DELETE FROM", "EXPLAIN UPDATE", "EXPLAIN UPSERT", "FROM",
		"GROUP BY", "HAVING", "INFER", "INSERT INTO", "LET", "LIMIT", "MERGE", "NEST",
		"ORDER BY", "PREPARE", "SELECT", "SET CURRENT SCHEMA", "SET SCHEMA", "SET", "UNNEST",
		"UPDATE", "UPSERT", "USE KEYS", "VALUES", "WHERE",
	},
	TopLevelNoIndent: dialect.StandardTopLevelNoIndent,
	Newline: []string{
		"AND", "INNER JOIN", "JOIN", "LEFT JOIN", "LEFT OUTER JOIN", "OR", "OUTER JOIN",
		"RIGHT JOIN", "RIGHT OUTER JOIN", "XOR",
	},
	Reserved: []string{
		"ALL", "ALTER", "ANALYZE", "ANY", "ARRAY", "AS", "ASC", "BEGIN", "BETWEEN", "BINARY",
		"BOOLEAN", "BREAK", "BUCKET", "BUILD", "BY", "CALL", "CAST", "CLUSTER", "COLLATE",
		"COLLECTION", "COMMIT", "CONNECT", "CONTINUE", "CORRELATE", "COVER", "CREATE",
		"DATABASE", "DATASET", "DATASTORE", "DECLARE", "DECREMENT", "DELETE", "DERIVED", "DESC",
		"DESCRIBE", "DISTINCT", "DO", "DROP", "EACH", "ELEMENT", "EVERY", "EXCLUDE", "EXECUTE",
		"EXISTS", "EXPLAIN", "FALSE", "FETCH", "FIRST", "FLATTEN", "FOR", "FORCE", "FUNCTION",
		"GRANT", "GROUP", "GSI", "IF", "IGNORE", "ILIKE", "IN", "INCLUDE", "INCREMENT", "INDEX",
		"INLINE", "INNER", "INSERT", "INTO", "IS", "KEY", "KEYS", "KEYSPACE", "KNOWN", "LAST",
		"LEFT", "LETTING", "LIKE", "LSM", "MAP", "MAPPING", "MATCHED", "MATERIALIZED", "MISSING",
		"NAMESPACE", "NOT", "NULL", "NUMBER", "OBJECT", "OFFSET", "ON", "OPTION", "OUTER", "OVER",
		"PARSE", "PARTITION", "PASSWORD", "PATH", "POOL", "PRIMARY", "PRIVATE", "PRIVILEGE",
		"PROCEDURE", "PUBLIC", "RAW", "REALM", "REDUCE", "RENAME", "RETURN", "RETURNING",
		"REVOKE", "RIGHT", "ROLE", "ROLLBACK", "SATISFIES", "SCHEMA", "SELF", "SEMI", "SHOW",
		"SOME", "START", "STATISTICS", "STRING", "SYSTEM", "TO", "TRANSACTION", "TRIGGER",
		"TRUE", "TRUNCATE", "UNDER", "UNIQUE", "UNKNOWN", "UNSET", "USE", "USER", "USING",
		"VALIDATE", "VALUE", "VALUED", "VIA", "VIEW", "WHILE", "WITH", "WITHIN", "WORK",
	},
	Case:               dialect.StandardCase,
	Range:              dialect.StandardRange,
	InlineCommaClauses: dialect.StandardInlineCommaClauses,

	Operators:              dialect.StandardOperators,
	TightOperators:         dialect.StandardTight,
	TrailingSpaceOperators: []string{":"},

	Quotes: []dialect.QuoteStyle{
		dialect.SingleQuoted,
		{Open: `"`, Close: `"`, Doubled: true, Backslash: true},
		dialect.BacktickQuoted,
	},
	LineComments: []string{"#", "--"},
	BlockComment: dialect.StandardBlockComment,
	Parens: []dialect.Pair{
		{Open: "(", Close: ")"},
		{Open: "[", Close: "]"},
		{Open: "{", Close: "}"},
	},
	Placeholders: []dialect.PlaceholderStyle{
		{Sentinel: "$", Numbered: true, Named: true},
	},
}

// N1QL is the Couchbase N1QL dialect.
var N1QL = dialect.New(Config).Build()
