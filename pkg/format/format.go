// Package format lays out a classified token stream as indented SQL text.
//
// The layout is purely lexical: no statement is parsed. Keyword categories
// from the dialect drive line breaks, a pair of stacks tracks indentation
// and open brackets, and a bounded look-ahead decides whether a bracketed
// span fits on one line.
package format

import (
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
)

// Defaults applied to zero-valued Options fields.
const (
	DefaultIndent      = "  "
	DefaultInlineWidth = 50
)

// Options controls the layout.
type Options struct {
	// Indent is the text repeated per indentation level.
	Indent string
	// Uppercase renders keywords in upper case.
	Uppercase bool
	// LinesBetweenQueries is the number of line breaks after each semicolon.
	// Values below 1 behave as 1.
	LinesBetweenQueries int
	// InlineWidth is the widest bracketed span kept on one line.
	InlineWidth int
	// BreakBetweenAnd breaks before the AND of BETWEEN x AND y like any other AND.
	BreakBetweenAnd bool
}

func (o Options) withDefaults() Options {
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.InlineWidth <= 0 {
		o.InlineWidth = DefaultInlineWidth
	}
	if o.LinesBetweenQueries < 1 {
		o.LinesBetweenQueries = 1
	}
	return o
}

// Print renders tokens as formatted SQL. The result always ends with exactly
// one newline; empty input yields "\n".
func Print(tokens []token.Token, d *dialect.Dialect, opts Options) string {
	p := newPrinter(tokens, d, opts.withDefaults())
	p.print()
	return p.String()
}
