// Package sqlfmt formats SQL text.
//
// Format tokenizes the input with the selected dialect, substitutes
// placeholder values and lays the tokens out again:
//
//	out, err := sqlfmt.Format("select a,b from t", sqlfmt.Options{Uppercase: true})
//
// Formatting never fails on malformed SQL. Only bad options produce an error.
package sqlfmt

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/format"
	"github.com/leapstack-labs/sqlfmt/pkg/lexer"
	"github.com/leapstack-labs/sqlfmt/pkg/params"

	// Built-in dialects register themselves.
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/db2"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/n1ql"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/plsql"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/sqlfmt/pkg/dialects/snowflake"
)

// DefaultLanguage is the dialect used when Options.Language is empty.
const DefaultLanguage = "sql"

// Options configures a Formatter. The zero value formats standard SQL with
// two-space indentation.
type Options struct {
	// Language is a registered dialect name or alias.
	Language string
	// Indent is the string repeated per indentation level.
	Indent    string
	Uppercase bool
	// LinesBetweenQueries is the number of line breaks after each semicolon.
	LinesBetweenQueries int
	// InlineWidth is the widest parenthesized span kept on one line.
	InlineWidth     int
	BreakBetweenAnd bool
	Params          *params.Params
	Logger          *slog.Logger
}

// Formatter formats SQL with fixed options. It is safe for concurrent use.
type Formatter struct {
	dialect *dialect.Dialect
	layout  format.Options
	params  *params.Params
	logger  *slog.Logger
}

// New validates opts and returns a Formatter.
func New(opts Options) (*Formatter, error) {
	lang := opts.Language
	if lang == "" {
		lang = DefaultLanguage
	}
	d, err := dialect.Lookup(lang)
	if err != nil {
		return nil, &ConfigurationError{Option: "language", Err: err}
	}
	if opts.LinesBetweenQueries < 0 {
		return nil, &ConfigurationError{
			Option: "lines_between_queries",
			Err:    fmt.Errorf("%w: %d is negative", ErrInvalidOption, opts.LinesBetweenQueries),
		}
	}
	if opts.InlineWidth < 0 {
		return nil, &ConfigurationError{
			Option: "inline_width",
			Err:    fmt.Errorf("%w: %d is negative", ErrInvalidOption, opts.InlineWidth),
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Formatter{
		dialect: d,
		layout: format.Options{
			Indent:              opts.Indent,
			Uppercase:           opts.Uppercase,
			LinesBetweenQueries: opts.LinesBetweenQueries,
			InlineWidth:         opts.InlineWidth,
			BreakBetweenAnd:     opts.BreakBetweenAnd,
		},
		params: opts.Params,
		logger: logger,
	}, nil
}

// Dialect returns the dialect the formatter was built for.
func (f *Formatter) Dialect() *dialect.Dialect {
	return f.dialect
}

// Format returns src reformatted.
func (f *Formatter) Format(src string) string {
	tokens := lexer.Tokenize(src, f.dialect)
	if f.params.Len() > 0 {
		if missing := params.Missing(tokens, f.params); missing > 0 {
			f.logger.Debug("unresolved placeholders", "count", missing)
		}
		tokens = params.Resolve(tokens, f.params)
	}

	f.logger.Debug("formatting", "dialect", f.dialect.Name, "tokens", len(tokens))
	return format.Print(tokens, f.dialect, f.layout)
}

// Format formats src with opts.
func Format(src string, opts Options) (string, error) {
	f, err := New(opts)
	if err != nil {
		return "", err
	}
	return f.Format(src), nil
}
