// Package token defines the lexical categories and tokens produced by the SQL lexer.
//
// Tokens carry their exact source text. Whitespace is never emitted as a token;
// instead every token records what kind of whitespace separated it from the
// previous one so the layout engine can reason about comment placement and
// paren adjacency.
package token

import "fmt"

// Category classifies a token for the layout engine.
type Category int32

const (
	TopLevelKeyword         Category = iota // SELECT, FROM, WHERE
	TopLevelKeywordNoIndent                 // UNION, EXCEPT, MINUS
	NewlineKeyword                          // AND, OR, JOIN
	PlainKeyword                            // AS, DISTINCT, IS
	CaseKeyword                             // CASE, WHEN, THEN, ELSE, END
	Operator
	Identifier
	QuotedIdentifier
	String
	Number
	LineComment
	BlockComment
	Placeholder
	OpenParen
	CloseParen
	Comma
	Semicolon
	Whitespace
)

// String returns the string representation of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CATEGORY(%d)", c)
}

var categoryNames = map[Category]string{
	TopLevelKeyword:         "TOP_LEVEL_KEYWORD",
	TopLevelKeywordNoIndent: "TOP_LEVEL_KEYWORD_NO_INDENT",
	NewlineKeyword:          "NEWLINE_KEYWORD",
	PlainKeyword:            "PLAIN_KEYWORD",
	CaseKeyword:             "CASE_KEYWORD",
	Operator:                "OPERATOR",
	Identifier:              "IDENTIFIER",
	QuotedIdentifier:        "QUOTED_IDENTIFIER",
	String:                  "STRING",
	Number:                  "NUMBER",
	LineComment:             "LINE_COMMENT",
	BlockComment:            "BLOCK_COMMENT",
	Placeholder:             "PLACEHOLDER",
	OpenParen:               "OPEN_PAREN",
	CloseParen:              "CLOSE_PAREN",
	Comma:                   "COMMA",
	Semicolon:               "SEMICOLON",
	Whitespace:              "WHITESPACE",
}

// IsKeyword reports whether the category is one of the keyword categories.
func (c Category) IsKeyword() bool {
	switch c {
	case TopLevelKeyword, TopLevelKeywordNoIndent, NewlineKeyword, PlainKeyword, CaseKeyword:
		return true
	}
	return false
}

// IsComment reports whether the category is a line or block comment.
func (c Category) IsComment() bool {
	return c == LineComment || c == BlockComment
}

// IsValue reports whether a token of this category ends an operand.
// A minus sign after such a token is a binary operator, not a sign.
func (c Category) IsValue() bool {
	switch c {
	case Identifier, QuotedIdentifier, String, Number, Placeholder, CloseParen:
		return true
	}
	return false
}

// Token is a classified, indivisible lexical unit of the input.
type Token struct {
	Category Category
	Text     string // exact source text, case preserved
	Norm     string // keywords only: upper case, whitespace collapsed
	Key      string // placeholders only: name or digits, empty when anonymous

	SpaceBefore     bool // any whitespace preceded the token
	NewlineBefore   bool // the preceding whitespace held a line break
	BlankLineBefore bool // the preceding whitespace held an empty line

	Pos Position
}

// Is reports whether t is a keyword whose normalized form equals norm.
func (t Token) Is(norm string) bool {
	return t.Norm != "" && t.Norm == norm
}

// Anonymous reports whether t is a placeholder without a key.
func (t Token) Anonymous() bool {
	return t.Category == Placeholder && t.Key == ""
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Category, t.Text)
}
