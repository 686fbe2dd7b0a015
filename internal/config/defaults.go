package config

import (
	"time"

	"github.com/leapstack-labs/sqlfmt/pkg/format"
	"github.com/leapstack-labs/sqlfmt/pkg/sqlfmt"
)

// Default configuration values.
const (
	DefaultLanguage            = sqlfmt.DefaultLanguage
	DefaultIndent              = 2
	DefaultLinesBetweenQueries = 1
	DefaultInlineWidth         = format.DefaultInlineWidth
	DefaultServeAddr           = "localhost:8765"
	DefaultDebounce            = 100 * time.Millisecond
)

// DefaultFormatting returns the formatting settings used when nothing is configured.
func DefaultFormatting() Formatting {
	return Formatting{
		Language:            DefaultLanguage,
		Indent:              DefaultIndent,
		LinesBetweenQueries: DefaultLinesBetweenQueries,
		InlineWidth:         DefaultInlineWidth,
	}
}

// ApplyDefaults fills unset values of f.
func ApplyDefaults(f *Formatting) {
	if f == nil {
		return
	}
	if f.Language == "" {
		f.Language = DefaultLanguage
	}
	if f.Indent == 0 {
		f.Indent = DefaultIndent
	}
	if f.LinesBetweenQueries == 0 {
		f.LinesBetweenQueries = DefaultLinesBetweenQueries
	}
	if f.InlineWidth == 0 {
		f.InlineWidth = DefaultInlineWidth
	}
}
