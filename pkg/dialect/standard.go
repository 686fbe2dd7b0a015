package dialect

// This file contains the keyword tables and lexical conventions shared by the
// built-in dialects - the "menu items" that dialects compose from.

// StandardTopLevel are clause keywords that start a new indented section.
var StandardTopLevel = []string{
	"ADD", "AFTER", "ALTER COLUMN", "ALTER TABLE", "DELETE FROM", "FETCH FIRST",
	"FROM", "GROUP BY", "GO", "HAVING", "INSERT INTO", "INSERT", "LIMIT", "MODIFY",
	"ORDER BY", "SELECT", "SET CURRENT SCHEMA", "SET SCHEMA", "SET", "UPDATE",
	"VALUES", "WHERE",
}

// StandardTopLevelNoIndent are set operators that sit between two queries.
var StandardTopLevelNoIndent = []string{
	"INTERSECT", "INTERSECT ALL", "MINUS", "UNION", "UNION ALL", "EXCEPT", "EXCEPT ALL",
}

// StandardNewline are keywords that start a new line without changing indentation.
var StandardNewline = []string{
	"AND", "OR", "XOR",
	"CROSS APPLY", "OUTER APPLY",
	"JOIN", "INNER JOIN", "CROSS JOIN", "NATURAL JOIN",
	"LEFT JOIN", "LEFT OUTER JOIN", "RIGHT JOIN", "RIGHT OUTER JOIN",
	"FULL JOIN", "FULL OUTER JOIN", "OUTER JOIN",
}

// StandardReserved are plain keywords. They matter for case conversion and
// for commas after LIMIT-like clauses.
var StandardReserved = []string{
	"ACCESSIBLE", "ACTION", "AGAINST", "AGGREGATE", "ALGORITHM", "ALL", "ALTER", "ANALYSE",
	"ANALYZE", "ANY", "AS", "ASC", "AUTOCOMMIT", "AUTO_INCREMENT", "BACKUP", "BEGIN",
	"BETWEEN", "BINLOG", "BOTH", "BY", "CASCADE", "CHANGE", "CHANGED", "CHARACTER SET",
	"CHARSET", "CHECK", "CHECKSUM", "COLLATE", "COLLATION", "COLUMN", "COLUMNS", "COMMENT",
	"COMMIT", "COMMITTED", "COMPRESSED", "CONCURRENT", "CONSTRAINT", "CONTAINS", "CONVERT",
	"CREATE", "CROSS", "CURRENT_TIMESTAMP", "DATABASE", "DATABASES", "DAY", "DAY_HOUR",
	"DAY_MINUTE", "DAY_SECOND", "DEFAULT", "DEFINER", "DELAYED", "DELETE", "DESC", "DESCRIBE",
	"DETERMINISTIC", "DISTINCT", "DISTINCTROW", "DIV", "DO", "DROP", "DUMPFILE", "DUPLICATE",
	"DYNAMIC", "ENCLOSED", "ENGINE", "ENGINES", "ENGINE_TYPE", "ESCAPE", "ESCAPED", "EVENTS",
	"EXEC", "EXECUTE", "EXISTS", "EXPLAIN", "EXTENDED", "FAST", "FIELDS", "FILE", "FIRST",
	"FIXED", "FLUSH", "FOR", "FORCE", "FOREIGN", "FULL", "FULLTEXT", "FUNCTION", "GLOBAL",
	"GRANT", "GRANTS", "GROUP_CONCAT", "HEAP", "HIGH_PRIORITY", "HOSTS", "HOUR", "HOUR_MINUTE",
	"HOUR_SECOND", "IDENTIFIED", "IF", "IFNULL", "IGNORE", "IN", "INDEX", "INDEXES", "INFILE",
	"INNER", "INSERT_ID", "INSERT_METHOD", "INTERVAL", "INTO", "INVOKER", "IS", "ISOLATION",
	"KEY", "KEYS", "KILL", "LAST", "LAST_INSERT_ID", "LEADING", "LEFT", "LEVEL", "LIKE",
	"LINEAR", "LINES", "LOAD", "LOCAL", "LOCK", "LOCKS", "LOGS", "LOW_PRIORITY", "MARIA",
	"MASTER", "MATCH", "MAX_ROWS", "MEDIUM", "MERGE", "MINUTE", "MINUTE_SECOND", "MIN_ROWS",
	"MODE", "MONTH", "MRG_MYISAM", "MYISAM", "NAMES", "NATURAL", "NOT", "NULL",
	"OFFSET", "ON", "ON DELETE", "ON UPDATE", "ONLY", "OPEN", "OPTIMIZE", "OPTIONALLY",
	"OUTER", "OUTFILE", "OVER", "PACK_KEYS", "PAGE", "PARTIAL", "PARTITION", "PARTITIONS",
	"PASSWORD", "PRIMARY", "PRIVILEGES", "PROCEDURE", "PROCESS", "PROCESSLIST", "PURGE",
	"QUICK", "RAID0", "RAID_CHUNKS", "RAID_CHUNKSIZE", "RAID_TYPE", "RANGE", "READ",
	"READ_ONLY", "READ_WRITE", "REFERENCES", "REGEXP", "RELOAD", "RENAME", "REPAIR",
	"REPEATABLE", "REPLACE", "REPLICATION", "RESET", "RESTORE", "RESTRICT", "RETURN",
	"RETURNS", "REVOKE", "RIGHT", "RLIKE", "ROLLBACK", "ROW", "ROWS", "ROW_FORMAT", "SECOND",
	"SECURITY", "SEPARATOR", "SERIALIZABLE", "SESSION", "SHARE", "SHOW", "SHUTDOWN", "SLAVE",
	"SONAME", "SOUNDS", "SQL", "SQL_AUTO_IS_NULL", "SQL_BIG_RESULT", "SQL_BIG_SELECTS",
	"SQL_BIG_TABLES", "SQL_BUFFER_RESULT", "SQL_CACHE", "SQL_CALC_FOUND_ROWS", "SQL_LOG_BIN",
	"SQL_LOG_OFF", "SQL_LOG_UPDATE", "SQL_LOW_PRIORITY_UPDATES", "SQL_MAX_JOIN_SIZE",
	"SQL_NO_CACHE", "SQL_QUOTE_SHOW_CREATE", "SQL_SAFE_UPDATES", "SQL_SELECT_LIMIT",
	"SQL_SLAVE_SKIP_COUNTER", "SQL_SMALL_RESULT", "SQL_WARNINGS", "START", "STARTING",
	"STATUS", "STOP", "STORAGE", "STRAIGHT_JOIN", "STRING", "STRIPED", "SUPER", "TABLE",
	"TABLES", "TEMPORARY", "TERMINATED", "THEN", "TO", "TRAILING", "TRANSACTIONAL", "TRUE",
	"FALSE", "TRUNCATE", "TYPE", "TYPES", "UNCOMMITTED", "UNIQUE", "UNLOCK", "UNSIGNED",
	"USAGE", "USE", "USING", "VARIABLES", "VIEW", "WITH", "WORK", "WRITE", "YEAR_MONTH",
}

// StandardCase is the CASE expression shape shared by every built-in dialect.
var StandardCase = CaseConfig{
	Open:     "CASE",
	Close:    "END",
	Branches: []string{"WHEN", "ELSE"},
	Inline:   []string{"THEN"},
}

// StandardRange keeps the AND of BETWEEN x AND y on the BETWEEN line.
var StandardRange = RangeConfig{Keyword: "BETWEEN", Conjunction: "AND"}

// StandardInlineCommaClauses are clauses whose commas never break lines (LIMIT 5, 10).
var StandardInlineCommaClauses = []string{"LIMIT"}

// StandardBlockComment is the C-style block comment.
var StandardBlockComment = Pair{Open: "/*", Close: "*/"}

// StandardParens are round brackets only.
var StandardParens = []Pair{{Open: "(", Close: ")"}}

// SingleQuoted is the standard string literal with both escape conventions.
var SingleQuoted = QuoteStyle{Open: "'", Close: "'", Doubled: true, Backslash: true}

// DoubleQuoted is a double-quoted identifier.
var DoubleQuoted = QuoteStyle{Open: `"`, Close: `"`, Identifier: true, Doubled: true, Backslash: true}

// BacktickQuoted is a MySQL-style quoted identifier.
var BacktickQuoted = QuoteStyle{Open: "`", Close: "`", Identifier: true, Doubled: true}

// BracketQuoted is a T-SQL style bracketed identifier.
var BracketQuoted = QuoteStyle{Open: "[", Close: "]", Identifier: true, Doubled: true}

// Positional is the anonymous or numbered ? placeholder.
var Positional = PlaceholderStyle{Sentinel: "?", Numbered: true, Bare: true}
