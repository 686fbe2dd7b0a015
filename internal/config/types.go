// Package config provides shared configuration types for sqlfmt.
// This package is decoupled from CLI concerns and is used by the HTTP
// server and the REPL as well as the command line.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/sqlfmt/pkg/params"
	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
)

// Formatting holds the formatting options a user can set.
// The same field names are used in config files, environment variables,
// flags and HTTP request bodies.
type Formatting struct {
	Language            string `koanf:"language" json:"language"`
	Indent              int    `koanf:"indent" json:"indent"` // spaces per level
	Tab                 bool   `koanf:"tab" json:"tab"`
	Uppercase           bool   `koanf:"uppercase" json:"uppercase"`
	LinesBetweenQueries int    `koanf:"lines_between_queries" json:"lines_between_queries"`
	InlineWidth         int    `koanf:"inline_width" json:"inline_width"`
	BreakBetweenAnd     bool   `koanf:"break_between_and" json:"break_between_and"`

	// Params is a list (positional) or a map (named) of placeholder values.
	Params any `koanf:"params" json:"params"`
}

// IndentString returns the indentation unit.
func (f *Formatting) IndentString() string {
	if f.Tab {
		return "\t"
	}
	n := f.Indent
	if n <= 0 {
		n = DefaultIndent
	}
	return strings.Repeat(" ", n)
}

// Options converts the settings into formatter options.
func (f *Formatting) Options(logger *slog.Logger) sqlfmt.Options {
	return sqlfmt.Options{
		Language:            f.Language,
		Indent:              f.IndentString(),
		Uppercase:           f.Uppercase,
		LinesBetweenQueries: f.LinesBetweenQueries,
		InlineWidth:         f.InlineWidth,
		BreakBetweenAnd:     f.BreakBetweenAnd,
		Params:              params.From(f.Params),
		Logger:              logger,
	}
}

// Formatter builds a formatter from the settings.
func (f *Formatting) Formatter(logger *slog.Logger) (*sqlfmt.Formatter, error) {
	fm, err := sqlfmt.New(f.Options(logger))
	if err != nil {
		return nil, fmt.Errorf("invalid formatting options: %w", err)
	}
	return fm, nil
}
