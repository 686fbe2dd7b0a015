// Package dialect provides SQL dialect configuration for the lexer and layout engine.
//
// A dialect is a declarative record: keyword categories, operators, quoting,
// comment and placeholder conventions. The lexer and printer consult it and
// never branch on a dialect name. Concrete dialects are registered from
// pkg/dialects/*/ packages; user dialects can be loaded from YAML.
package dialect

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/leapstack-labs/sqlfmt/pkg/token"
)

// CaseRole is the part a keyword plays in a CASE expression.
type CaseRole int

const (
	CaseNone CaseRole = iota
	CaseOpen
	CaseClose
	CaseBranch
	CaseInline
)

// Spacing describes how an operator is separated from its neighbours.
type Spacing int

const (
	SpaceAround Spacing = iota // a + b
	SpaceNone                  // a.b
	SpaceAfter                 // a: b
)

// Dialect is a compiled dialect. It is immutable after Build and safe for
// concurrent use.
type Dialect struct {
	Name    string
	Aliases []string

	keywords  map[string]token.Category // normalized phrase -> category
	maxPhrase int                       // longest keyword phrase, in words

	operators []string // longest first
	spacing   map[string]Spacing

	quotes       []QuoteStyle // one entry per prefix, longest opener first
	lineComments []string
	blockComment Pair
	parens       []Pair
	placeholders []PlaceholderStyle
	identChars   map[rune]struct{}

	caseRoles   map[string]CaseRole
	rangeKw     string
	rangeConj   string
	inlineComma map[string]struct{}
	overrides   map[string][]override

	nestedComments bool
	dollarQuotes   bool

	config *Config
}

type override struct {
	after    string
	category token.Category
}

// Config returns a copy of the pure data configuration the dialect was built from.
func (d *Dialect) Config() *Config {
	return d.config.Clone()
}

// LookupKeyword returns the category of a keyword phrase.
// The phrase is matched case-insensitively with whitespace runs collapsed.
func (d *Dialect) LookupKeyword(phrase string) (token.Category, bool) {
	cat, ok := d.keywords[Normalize(phrase)]
	return cat, ok
}

// MaxPhraseWords returns the word count of the longest keyword phrase.
func (d *Dialect) MaxPhraseWords() int {
	return d.maxPhrase
}

// Keywords returns all keyword phrases in normalized form (sorted).
func (d *Dialect) Keywords() []string {
	out := make([]string, 0, len(d.keywords))
	for kw := range d.keywords {
		out = append(out, kw)
	}
	slices.Sort(out)
	return out
}

// Override returns the category a keyword takes when it follows prev.
func (d *Dialect) Override(norm, prev string) (token.Category, bool) {
	for _, o := range d.overrides[norm] {
		if o.after == prev {
			return o.category, true
		}
	}
	return 0, false
}

// Operators returns the multi-character operators, longest first.
func (d *Dialect) Operators() []string {
	return d.operators
}

// OperatorSpacing returns how the operator is spaced when printed.
func (d *Dialect) OperatorSpacing(op string) Spacing {
	return d.spacing[op]
}

// Quotes returns the string and quoted identifier styles, longest opener first.
func (d *Dialect) Quotes() []QuoteStyle {
	return d.quotes
}

// LineComments returns the line comment markers.
func (d *Dialect) LineComments() []string {
	return d.lineComments
}

// BlockComment returns the block comment delimiters and whether they nest.
func (d *Dialect) BlockComment() (Pair, bool) {
	return d.blockComment, d.nestedComments
}

// DollarQuotes reports whether $tag$...$tag$ strings are recognized.
func (d *Dialect) DollarQuotes() bool {
	return d.dollarQuotes
}

// Parens returns the bracket pairs that open and close blocks.
func (d *Dialect) Parens() []Pair {
	return d.parens
}

// Placeholders returns the placeholder styles.
func (d *Dialect) Placeholders() []PlaceholderStyle {
	return d.placeholders
}

// IsIdentRune reports whether r can appear in an unquoted word.
func (d *Dialect) IsIdentRune(r rune) bool {
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return true
	}
	_, ok := d.identChars[r]
	return ok
}

// CaseRole returns the role of a normalized keyword in CASE expressions.
func (d *Dialect) CaseRole(norm string) CaseRole {
	return d.caseRoles[norm]
}

// IsRangeKeyword reports whether norm opens a range (BETWEEN).
func (d *Dialect) IsRangeKeyword(norm string) bool {
	return d.rangeKw != "" && norm == d.rangeKw
}

// IsRangeConjunction reports whether norm joins the bounds of a range (AND).
func (d *Dialect) IsRangeConjunction(norm string) bool {
	return d.rangeConj != "" && norm == d.rangeConj
}

// IsInlineCommaClause reports whether commas in the clause's body stay on one line.
func (d *Dialect) IsInlineCommaClause(norm string) bool {
	_, ok := d.inlineComma[norm]
	return ok
}

// Normalize upper-cases a keyword phrase and collapses its whitespace.
func Normalize(phrase string) string {
	return strings.ToUpper(strings.Join(strings.Fields(phrase), " "))
}

// Builder provides a fluent API for constructing dialects.
type Builder struct {
	config *Config
}

// New creates a dialect builder from a Config.
// The builder auto-wires features based on config flags when Build() is called.
func New(cfg *Config) *Builder {
	return &Builder{config: cfg.Clone()}
}

// NewDialect creates an empty dialect builder with the given name.
func NewDialect(name string) *Builder {
	return &Builder{config: &Config{Name: name}}
}

// Extend creates a builder that starts from an existing dialect.
func Extend(base *Dialect, name string) *Builder {
	cfg := base.Config()
	cfg.Name = name
	cfg.Aliases = nil
	return &Builder{config: cfg}
}

// Aliases adds alternate lookup names.
func (b *Builder) Aliases(names ...string) *Builder {
	b.config.Aliases = append(b.config.Aliases, names...)
	return b
}

// TopLevel adds top-level keywords.
func (b *Builder) TopLevel(kws ...string) *Builder {
	b.config.TopLevel = append(b.config.TopLevel, kws...)
	return b
}

// TopLevelNoIndent adds top-level keywords that do not indent their body.
func (b *Builder) TopLevelNoIndent(kws ...string) *Builder {
	b.config.TopLevelNoIndent = append(b.config.TopLevelNoIndent, kws...)
	return b
}

// Newline adds keywords that start a new line.
func (b *Builder) Newline(kws ...string) *Builder {
	b.config.Newline = append(b.config.Newline, kws...)
	return b
}

// Reserved adds plain keywords.
func (b *Builder) Reserved(kws ...string) *Builder {
	b.config.Reserved = append(b.config.Reserved, kws...)
	return b
}

// AddOperator adds multi-character operators.
func (b *Builder) AddOperator(ops ...string) *Builder {
	b.config.Operators = append(b.config.Operators, ops...)
	return b
}

// Placeholder adds a placeholder style.
func (b *Builder) Placeholder(style PlaceholderStyle) *Builder {
	b.config.Placeholders = append(b.config.Placeholders, style)
	return b
}

// Override re-categorizes keyword when it directly follows after.
func (b *Builder) Override(keyword, after, as string) *Builder {
	b.config.Overrides = append(b.config.Overrides, KeywordOverride{Keyword: keyword, After: after, As: as})
	return b
}

// Build returns the compiled dialect.
func (b *Builder) Build() *Dialect {
	cfg := b.config.Clone()

	// ===== Auto-wire features from config flags =====

	if cfg.SupportsCastOperator && !slices.Contains(cfg.Operators, "::") {
		cfg.Operators = append(cfg.Operators, "::")
	}
	if cfg.SupportsQualify && !slices.Contains(cfg.TopLevel, "QUALIFY") {
		cfg.TopLevel = append(cfg.TopLevel, "QUALIFY")
	}

	d := &Dialect{
		Name:           cfg.Name,
		Aliases:        slices.Clone(cfg.Aliases),
		keywords:       make(map[string]token.Category),
		spacing:        make(map[string]Spacing),
		identChars:     make(map[rune]struct{}),
		caseRoles:      make(map[string]CaseRole),
		inlineComma:    make(map[string]struct{}),
		overrides:      make(map[string][]override),
		lineComments:   slices.Clone(cfg.LineComments),
		blockComment:   cfg.BlockComment,
		parens:         slices.Clone(cfg.Parens),
		placeholders:   slices.Clone(cfg.Placeholders),
		nestedComments: cfg.SupportsNestedComments,
		dollarQuotes:   cfg.SupportsDollarQuotes,
		rangeKw:        Normalize(cfg.Range.Keyword),
		rangeConj:      Normalize(cfg.Range.Conjunction),
		config:         cfg,
	}

	// Later categories win: a phrase listed twice keeps the more specific role.
	d.addKeywords(cfg.Reserved, token.PlainKeyword)
	d.addKeywords(cfg.Newline, token.NewlineKeyword)
	d.addKeywords(cfg.TopLevelNoIndent, token.TopLevelKeywordNoIndent)
	d.addKeywords(cfg.TopLevel, token.TopLevelKeyword)
	if cfg.Range.Keyword != "" {
		d.addKeyword(cfg.Range.Keyword, token.PlainKeyword, false)
	}

	d.addCaseRole(cfg.Case.Open, CaseOpen)
	d.addCaseRole(cfg.Case.Close, CaseClose)
	for _, kw := range cfg.Case.Branches {
		d.addCaseRole(kw, CaseBranch)
	}
	for _, kw := range cfg.Case.Inline {
		d.addCaseRole(kw, CaseInline)
	}

	for _, kw := range cfg.InlineCommaClauses {
		d.inlineComma[Normalize(kw)] = struct{}{}
	}
	for _, o := range cfg.Overrides {
		norm := Normalize(o.Keyword)
		d.overrides[norm] = append(d.overrides[norm], override{
			after:    Normalize(o.After),
			category: categoryByName[o.As],
		})
	}

	seen := make(map[string]struct{})
	for _, op := range cfg.Operators {
		if _, ok := seen[op]; ok || op == "" {
			continue
		}
		seen[op] = struct{}{}
		d.operators = append(d.operators, op)
	}
	slices.SortStableFunc(d.operators, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	for _, op := range cfg.TightOperators {
		d.spacing[op] = SpaceNone
	}
	for _, op := range cfg.TrailingSpaceOperators {
		d.spacing[op] = SpaceAfter
	}

	for _, q := range cfg.Quotes {
		d.quotes = append(d.quotes, q)
		for _, prefix := range q.Prefixes {
			pq := q
			pq.Open = prefix + q.Open
			pq.Prefixes = nil
			d.quotes = append(d.quotes, pq)
		}
	}
	slices.SortStableFunc(d.quotes, func(a, b QuoteStyle) int {
		return cmp.Compare(len(b.Open), len(a.Open))
	})

	for _, r := range cfg.IdentChars {
		d.identChars[r] = struct{}{}
	}

	return d
}

func (d *Dialect) addKeywords(kws []string, cat token.Category) {
	for _, kw := range kws {
		d.addKeyword(kw, cat, true)
	}
}

func (d *Dialect) addKeyword(kw string, cat token.Category, replace bool) {
	norm := Normalize(kw)
	if norm == "" {
		return
	}
	if _, exists := d.keywords[norm]; exists && !replace {
		return
	}
	d.keywords[norm] = cat
	if n := len(strings.Fields(norm)); n > d.maxPhrase {
		d.maxPhrase = n
	}
}

func (d *Dialect) addCaseRole(kw string, role CaseRole) {
	norm := Normalize(kw)
	if norm == "" {
		return
	}
	d.caseRoles[norm] = role
	d.addKeyword(norm, token.CaseKeyword, true)
}

// categoryByName maps the names used in overrides to token categories.
var categoryByName = map[string]token.Category{
	"top_level":           token.TopLevelKeyword,
	"top_level_no_indent": token.TopLevelKeywordNoIndent,
	"newline":             token.NewlineKeyword,
	"reserved":            token.PlainKeyword,
}
