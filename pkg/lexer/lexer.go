// Package lexer splits SQL text into classified tokens for the layout engine.
//
// The lexer is driven entirely by a *dialect.Dialect: comment markers, quote
// styles, operators, placeholder sentinels and keyword tables all come from
// the dialect record. Lexing never fails; input the dialect does not describe
// degrades to single-rune operator tokens and unterminated literals run to
// the end of input.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int            // byte offset of the next unread rune
	cur     token.Position // position of input[pos]
	dialect *dialect.Dialect

	// Context for minus signs, dotted names and keyword overrides.
	prev        token.Token // last non-comment token
	hasPrev     bool
	prevKeyword string // Norm of the last keyword token
}

// New creates a Lexer for input using dialect d.
func New(input string, d *dialect.Dialect) *Lexer {
	return &Lexer{
		input:   input,
		cur:     token.Position{Line: 1, Column: 1},
		dialect: d,
	}
}

// Tokenize returns every token of src. Whitespace is folded into the
// SpaceBefore, NewlineBefore and BlankLineBefore flags of the next token.
func Tokenize(src string, d *dialect.Dialect) []token.Token {
	l := New(src, d)
	var toks []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token, or false at end of input.
func (l *Lexer) Next() (token.Token, bool) {
	space, newlines := l.skipWhitespace()
	if l.pos >= len(l.input) {
		return token.Token{}, false
	}

	start := l.cur
	tok := l.scan(l.input[l.pos:])
	l.advance(len(tok.Text))

	tok.Pos = start
	tok.SpaceBefore = space
	tok.NewlineBefore = newlines > 0
	tok.BlankLineBefore = newlines > 1

	if !tok.Category.IsComment() {
		l.prev = tok
		l.hasPrev = true
	}
	if tok.Category.IsKeyword() {
		l.prevKeyword = tok.Norm
	}
	return tok, true
}

func (l *Lexer) advance(n int) {
	l.cur = l.cur.Advance(l.input[l.pos : l.pos+n])
	l.pos += n
}

// skipWhitespace consumes a whitespace run and reports whether there was one
// and how many line breaks it held.
func (l *Lexer) skipWhitespace() (space bool, newlines int) {
	n := 0
	rest := l.input[l.pos:]
	for n < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if !unicode.IsSpace(r) {
			break
		}
		if r == '\n' {
			newlines++
		}
		n += size
	}
	l.advance(n)
	return n > 0, newlines
}

// scan classifies the token at the start of rest. Only Category, Text, Norm
// and Key are set.
func (l *Lexer) scan(rest string) token.Token {
	d := l.dialect

	if n := l.lineComment(rest); n > 0 {
		return token.Token{Category: token.LineComment, Text: rest[:n]}
	}
	if n := l.blockComment(rest); n > 0 {
		return token.Token{Category: token.BlockComment, Text: rest[:n]}
	}
	if tok, ok := l.quoted(rest); ok {
		return tok
	}

	for _, p := range d.Parens() {
		if strings.HasPrefix(rest, p.Open) {
			return token.Token{Category: token.OpenParen, Text: p.Open}
		}
		if strings.HasPrefix(rest, p.Close) {
			return token.Token{Category: token.CloseParen, Text: p.Close}
		}
	}

	switch rest[0] {
	case ',':
		return token.Token{Category: token.Comma, Text: ","}
	case ';':
		return token.Token{Category: token.Semicolon, Text: ";"}
	}

	for _, op := range d.Operators() {
		if strings.HasPrefix(rest, op) {
			return token.Token{Category: token.Operator, Text: op}
		}
	}

	if tok, ok := l.placeholder(rest); ok {
		return tok
	}
	if n := l.number(rest); n > 0 {
		return token.Token{Category: token.Number, Text: rest[:n]}
	}
	if tok, ok := l.word(rest); ok {
		return tok
	}

	_, size := utf8.DecodeRuneInString(rest)
	return token.Token{Category: token.Operator, Text: rest[:size]}
}

// lineComment returns the length of a line comment at the start of rest,
// excluding the line break.
func (l *Lexer) lineComment(rest string) int {
	for _, marker := range l.dialect.LineComments() {
		if marker == "" || !strings.HasPrefix(rest, marker) {
			continue
		}
		if end := strings.IndexAny(rest, "\r\n"); end >= 0 {
			return end
		}
		return len(rest)
	}
	return 0
}

// blockComment returns the length of a block comment at the start of rest.
func (l *Lexer) blockComment(rest string) int {
	pair, nested := l.dialect.BlockComment()
	if pair.IsZero() || !strings.HasPrefix(rest, pair.Open) {
		return 0
	}

	depth := 1
	i := len(pair.Open)
	for i < len(rest) {
		switch {
		case strings.HasPrefix(rest[i:], pair.Close):
			i += len(pair.Close)
			depth--
			if depth == 0 || !nested {
				return i
			}
		case nested && strings.HasPrefix(rest[i:], pair.Open):
			i += len(pair.Open)
			depth++
		default:
			i++
		}
	}
	return len(rest)
}

// quoted scans a string literal or quoted identifier.
func (l *Lexer) quoted(rest string) (token.Token, bool) {
	if l.dialect.DollarQuotes() {
		if n := dollarQuoted(rest); n > 0 {
			return token.Token{Category: token.String, Text: rest[:n]}, true
		}
	}

	for _, q := range l.dialect.Quotes() {
		if !hasPrefixFold(rest, q.Open) {
			continue
		}
		cat := token.String
		if q.Identifier {
			cat = token.QuotedIdentifier
		}
		return token.Token{Category: cat, Text: rest[:quotedLen(rest, q)]}, true
	}
	return token.Token{}, false
}

// quotedLen returns the length of the quoted literal at the start of rest,
// or len(rest) when it is unterminated.
func quotedLen(rest string, q dialect.QuoteStyle) int {
	i := len(q.Open)
	for i < len(rest) {
		if q.Backslash && rest[i] == '\\' {
			i += 2
			continue
		}
		if strings.HasPrefix(rest[i:], q.Close) {
			i += len(q.Close)
			if q.Doubled && strings.HasPrefix(rest[i:], q.Close) {
				i += len(q.Close)
				continue
			}
			return i
		}
		i++
	}
	return len(rest)
}

// dollarQuoted returns the length of a $tag$...$tag$ string at the start of rest.
func dollarQuoted(rest string) int {
	if rest[0] != '$' {
		return 0
	}
	j := 1
	if j < len(rest) && (isASCIILetter(rest[j]) || rest[j] == '_') {
		for j < len(rest) && (isASCIILetter(rest[j]) || isDigit(rest[j]) || rest[j] == '_') {
			j++
		}
	}
	if j >= len(rest) || rest[j] != '$' {
		return 0
	}
	delim := rest[:j+1]
	body := rest[len(delim):]
	if end := strings.Index(body, delim); end >= 0 {
		return len(delim) + end + len(delim)
	}
	return len(rest)
}

// placeholder scans a bind parameter such as ?, ?1, $2, :name or @"my var".
func (l *Lexer) placeholder(rest string) (token.Token, bool) {
	for _, ph := range l.dialect.Placeholders() {
		if !strings.HasPrefix(rest, ph.Sentinel) {
			continue
		}
		after := rest[len(ph.Sentinel):]

		if n := l.wordLen(after); n > 0 {
			word := after[:n]
			switch {
			case ph.Numbered && allDigits(word):
				return l.newPlaceholder(rest, len(ph.Sentinel)+n, word), true
			case ph.Named:
				return l.newPlaceholder(rest, len(ph.Sentinel)+n, word), true
			case ph.Numbered:
				if digits := leadingDigits(word); digits > 0 {
					return l.newPlaceholder(rest, len(ph.Sentinel)+digits, word[:digits]), true
				}
			}
		}

		if ph.Quoted {
			if n, key, ok := l.quotedName(after); ok {
				return l.newPlaceholder(rest, len(ph.Sentinel)+n, key), true
			}
		}

		if ph.Bare {
			return l.newPlaceholder(rest, len(ph.Sentinel), ""), true
		}
	}
	return token.Token{}, false
}

func (l *Lexer) newPlaceholder(rest string, n int, key string) token.Token {
	return token.Token{Category: token.Placeholder, Text: rest[:n], Key: key}
}

// quotedName scans a quoted placeholder name and returns its unescaped text.
// Only unprefixed quote styles qualify, and the name must be terminated.
func (l *Lexer) quotedName(rest string) (int, string, bool) {
	for _, q := range l.dialect.Quotes() {
		if utf8.RuneCountInString(q.Open) != 1 || !strings.HasPrefix(rest, q.Open) {
			continue
		}
		n := quotedLen(rest, q)
		if n < len(q.Open)+len(q.Close) || !strings.HasSuffix(rest[:n], q.Close) {
			return 0, "", false
		}
		name := rest[len(q.Open) : n-len(q.Close)]
		if q.Doubled {
			name = strings.ReplaceAll(name, q.Close+q.Close, q.Close)
		}
		if q.Backslash {
			name = strings.ReplaceAll(name, `\`+q.Close, q.Close)
		}
		return n, name, true
	}
	return 0, "", false
}

// number returns the length of a numeric literal at the start of rest, or 0.
func (l *Lexer) number(rest string) int {
	i := 0
	if rest[0] == '-' {
		if len(rest) < 2 || !isDigit(rest[1]) || (l.hasPrev && l.prev.Category.IsValue()) {
			return 0
		}
		i = 1
	}
	if !isDigit(rest[i]) {
		return 0
	}

	n := i + numberLen(rest[i:])
	// 1st, 2x: a digit-led word, not a number.
	if r, _ := utf8.DecodeRuneInString(rest[n:]); n < len(rest) && l.dialect.IsIdentRune(r) {
		return 0
	}
	return n
}

// numberLen measures [0-9]+(\.[0-9]+)?([eE][-+]?[0-9]+)?, 0x.. and 0b.. forms.
func numberLen(s string) int {
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			if n := countWhile(s[2:], isHexDigit); n > 0 {
				return 2 + n
			}
		case 'b', 'B':
			if n := countWhile(s[2:], func(c byte) bool { return c == '0' || c == '1' }); n > 0 {
				return 2 + n
			}
		}
	}

	i := countWhile(s, isDigit)
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i++
		i += countWhile(s[i:], isDigit)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countWhile(s[j:], isDigit); n > 0 {
			i = j + n
		}
	}
	return i
}

// word scans an identifier or keyword, preferring the longest keyword phrase.
func (l *Lexer) word(rest string) (token.Token, bool) {
	n := l.wordLen(rest)
	if n == 0 {
		return token.Token{}, false
	}

	if l.hasPrev && l.prev.Category == token.Operator && l.prev.Text == "." {
		return token.Token{Category: token.Identifier, Text: rest[:n]}, true
	}

	ends := l.phraseEnds(rest, n)
	for k := len(ends) - 1; k >= 0; k-- {
		text := rest[:ends[k]]
		cat, ok := l.dialect.LookupKeyword(text)
		if !ok {
			continue
		}
		norm := dialect.Normalize(text)
		if over, ok := l.dialect.Override(norm, l.prevKeyword); ok {
			cat = over
		}
		return token.Token{Category: cat, Text: text, Norm: norm}, true
	}
	return token.Token{Category: token.Identifier, Text: rest[:n]}, true
}

// phraseEnds returns the end offsets of the first word and of each following
// whitespace-separated word, up to the dialect's longest keyword phrase.
func (l *Lexer) phraseEnds(rest string, first int) []int {
	ends := []int{first}
	end := first
	for len(ends) < l.dialect.MaxPhraseWords() {
		gap := 0
		for end+gap < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[end+gap:])
			if !unicode.IsSpace(r) {
				break
			}
			gap += size
		}
		if gap == 0 {
			break
		}
		n := l.wordLen(rest[end+gap:])
		if n == 0 {
			break
		}
		end += gap + n
		ends = append(ends, end)
	}
	return ends
}

// wordLen returns the byte length of the run of identifier runes at the start of s.
func (l *Lexer) wordLen(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !l.dialect.IsIdentRune(r) {
			break
		}
		n += size
	}
	return n
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func countWhile(s string, f func(byte) bool) int {
	n := 0
	for n < len(s) && f(s[n]) {
		n++
	}
	return n
}

func allDigits(s string) bool {
	return s != "" && countWhile(s, isDigit) == len(s)
}

func leadingDigits(s string) int {
	return countWhile(s, isDigit)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
