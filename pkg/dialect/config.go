package dialect

import "slices"

// Config is the pure data description of a dialect.
// Built-in dialects declare one in Go; user dialects load one from YAML.
type Config struct {
	Name    string   `yaml:"name"`
	Extends string   `yaml:"extends,omitempty"`
	Aliases []string `yaml:"aliases,omitempty"`

	// Keyword categories. Entries may be multi-word phrases ("GROUP BY").
	TopLevel         []string `yaml:"top_level,omitempty"`
	TopLevelNoIndent []string `yaml:"top_level_no_indent,omitempty"`
	Newline          []string `yaml:"newline,omitempty"`
	Reserved         []string `yaml:"reserved,omitempty"`

	Case               CaseConfig        `yaml:"case,omitempty"`
	Range              RangeConfig       `yaml:"range,omitempty"`
	InlineCommaClauses []string          `yaml:"inline_comma_clauses,omitempty"`
	Overrides          []KeywordOverride `yaml:"overrides,omitempty"`

	Operators              []string `yaml:"operators,omitempty"`
	TightOperators         []string `yaml:"tight_operators,omitempty"`
	TrailingSpaceOperators []string `yaml:"trailing_space_operators,omitempty"`

	Quotes       []QuoteStyle       `yaml:"quotes,omitempty"`
	LineComments []string           `yaml:"line_comments,omitempty"`
	BlockComment Pair               `yaml:"block_comment,omitempty"`
	Parens       []Pair             `yaml:"parens,omitempty"`
	Placeholders []PlaceholderStyle `yaml:"placeholders,omitempty"`
	IdentChars   string             `yaml:"ident_chars,omitempty"`

	// Framework features (auto-wired by Build)
	SupportsDollarQuotes   bool `yaml:"dollar_quotes,omitempty"`
	SupportsNestedComments bool `yaml:"nested_comments,omitempty"`
	SupportsCastOperator   bool `yaml:"cast_operator,omitempty"`
	SupportsQualify        bool `yaml:"qualify,omitempty"`
}

// Pair is an opening and closing delimiter.
type Pair struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// IsZero reports whether the pair is unset.
func (p Pair) IsZero() bool {
	return p.Open == "" && p.Close == ""
}

// CaseConfig names the keywords that make up a CASE expression.
type CaseConfig struct {
	Open     string   `yaml:"open,omitempty"`     // CASE
	Close    string   `yaml:"close,omitempty"`    // END
	Branches []string `yaml:"branches,omitempty"` // WHEN, ELSE: start their own line
	Inline   []string `yaml:"inline,omitempty"`   // THEN
}

// RangeConfig names the keyword pair whose conjunction stays inline
// (BETWEEN x AND y).
type RangeConfig struct {
	Keyword     string `yaml:"keyword,omitempty"`
	Conjunction string `yaml:"conjunction,omitempty"`
}

// KeywordOverride re-categorizes a keyword when it directly follows another keyword.
type KeywordOverride struct {
	Keyword string `yaml:"keyword"`
	After   string `yaml:"after"`
	As      string `yaml:"as"` // top_level, top_level_no_indent, newline, reserved
}

// QuoteStyle describes a string or quoted identifier delimiter.
type QuoteStyle struct {
	Open       string   `yaml:"open"`
	Close      string   `yaml:"close"`
	Prefixes   []string `yaml:"prefixes,omitempty"`   // N, E, X: case-insensitive
	Identifier bool     `yaml:"identifier,omitempty"` // lexes as QuotedIdentifier
	Doubled    bool     `yaml:"doubled,omitempty"`    // '' escapes '
	Backslash  bool     `yaml:"backslash,omitempty"`  // \' escapes '
}

// PlaceholderStyle describes one placeholder sentinel.
type PlaceholderStyle struct {
	Sentinel string `yaml:"sentinel"`
	Numbered bool   `yaml:"numbered,omitempty"` // ?1, $1
	Named    bool   `yaml:"named,omitempty"`    // :name, @name
	Quoted   bool   `yaml:"quoted,omitempty"`   // @"name", :'name'
	Bare     bool   `yaml:"bare,omitempty"`     // ? alone
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	out := *c
	out.Aliases = slices.Clone(c.Aliases)
	out.TopLevel = slices.Clone(c.TopLevel)
	out.TopLevelNoIndent = slices.Clone(c.TopLevelNoIndent)
	out.Newline = slices.Clone(c.Newline)
	out.Reserved = slices.Clone(c.Reserved)
	out.Case.Branches = slices.Clone(c.Case.Branches)
	out.Case.Inline = slices.Clone(c.Case.Inline)
	out.InlineCommaClauses = slices.Clone(c.InlineCommaClauses)
	out.Overrides = slices.Clone(c.Overrides)
	out.Operators = slices.Clone(c.Operators)
	out.TightOperators = slices.Clone(c.TightOperators)
	out.TrailingSpaceOperators = slices.Clone(c.TrailingSpaceOperators)
	out.Quotes = make([]QuoteStyle, len(c.Quotes))
	for i, q := range c.Quotes {
		q.Prefixes = slices.Clone(q.Prefixes)
		out.Quotes[i] = q
	}
	out.LineComments = slices.Clone(c.LineComments)
	out.Parens = slices.Clone(c.Parens)
	out.Placeholders = slices.Clone(c.Placeholders)
	return &out
}

// Merge layers overlay on top of c and returns the result.
// Keyword, operator and override lists are appended; lexical conventions
// (quotes, comments, parens, placeholders) are replaced when the overlay sets them.
// Feature flags are enabled if either side enables them.
func (c *Config) Merge(overlay *Config) *Config {
	out := c.Clone()
	out.Name = overlay.Name
	out.Extends = overlay.Extends
	out.Aliases = slices.Clone(overlay.Aliases)

	out.TopLevel = append(out.TopLevel, overlay.TopLevel...)
	out.TopLevelNoIndent = append(out.TopLevelNoIndent, overlay.TopLevelNoIndent...)
	out.Newline = append(out.Newline, overlay.Newline...)
	out.Reserved = append(out.Reserved, overlay.Reserved...)
	out.InlineCommaClauses = append(out.InlineCommaClauses, overlay.InlineCommaClauses...)
	out.Overrides = append(out.Overrides, overlay.Overrides...)
	out.Operators = append(out.Operators, overlay.Operators...)
	out.TightOperators = append(out.TightOperators, overlay.TightOperators...)
	out.TrailingSpaceOperators = append(out.TrailingSpaceOperators, overlay.TrailingSpaceOperators...)

	if overlay.Case.Open != "" {
		out.Case = overlay.Case
	}
	if overlay.Range.Keyword != "" {
		out.Range = overlay.Range
	}
	if len(overlay.Quotes) > 0 {
		out.Quotes = overlay.Clone().Quotes
	}
	if len(overlay.LineComments) > 0 {
		out.LineComments = slices.Clone(overlay.LineComments)
	}
	if !overlay.BlockComment.IsZero() {
		out.BlockComment = overlay.BlockComment
	}
	if len(overlay.Parens) > 0 {
		out.Parens = slices.Clone(overlay.Parens)
	}
	if len(overlay.Placeholders) > 0 {
		out.Placeholders = slices.Clone(overlay.Placeholders)
	}
	if overlay.IdentChars != "" {
		out.IdentChars = overlay.IdentChars
	}

	out.SupportsDollarQuotes = c.SupportsDollarQuotes || overlay.SupportsDollarQuotes
	out.SupportsNestedComments = c.SupportsNestedComments || overlay.SupportsNestedComments
	out.SupportsCastOperator = c.SupportsCastOperator || overlay.SupportsCastOperator
	out.SupportsQualify = c.SupportsQualify || overlay.SupportsQualify
	return out
}
