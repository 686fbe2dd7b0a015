package dialect

// This file contains operator definitions that form the "toolbox" of
// reusable operator configurations. These can be composed into any dialect.

// StandardOperators are the multi-character operators shared by every built-in
// dialect. Single-character operators need no declaration: any rune the lexer
// cannot classify otherwise becomes a one-rune operator.
var StandardOperators = []string{
	"!=", "<>", "==", "<=", ">=", "!<", "!>",
	"||", "&&", ":=", "=>",
	"<<", ">>", "|/", "||/",
	"::", "->", "->>",
	"~~", "~~*", "!~~", "!~~*", "~*", "!~", "!~*",
}

// PostgresOperators are JSON, containment and geometric operators. They clash
// with placeholder sentinels in other dialects (?|, @>), so only dialects
// without those sentinels add them.
var PostgresOperators = []string{
	"#>", "#>>", "#-", "@>", "<@", "?|", "?&", "@@", "-|-", "&<", "&>",
}

// StandardTight are operators printed without surrounding spaces.
var StandardTight = []string{"."}
