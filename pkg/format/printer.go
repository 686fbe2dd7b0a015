package format

import (
	"strings"

	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// printer holds the layout state of one Print call.
type printer struct {
	d      *dialect.Dialect
	opts   Options
	tokens []token.Token
	caser  cases.Caser

	// rangeAnd marks the AND tokens that join BETWEEN bounds and stay inline.
	rangeAnd []bool

	out         []byte
	indent      indentation
	blocks      []bool // open brackets and CASE blocks; true when inline
	lastKeyword string
	prev        token.Token
	hasPrev     bool
}

func newPrinter(tokens []token.Token, d *dialect.Dialect, opts Options) *printer {
	p := &printer{
		d:        d,
		opts:     opts,
		tokens:   tokens,
		caser:    cases.Upper(language.Und),
		rangeAnd: make([]bool, len(tokens)),
		indent:   indentation{unit: opts.Indent},
	}
	if !opts.BreakBetweenAnd {
		last := ""
		for i, tok := range tokens {
			if !tok.Category.IsKeyword() {
				continue
			}
			p.rangeAnd[i] = tok.Category == token.NewlineKeyword &&
				d.IsRangeConjunction(tok.Norm) && d.IsRangeKeyword(last)
			last = tok.Norm
		}
	}
	return p
}

// String returns the formatted output.
func (p *printer) String() string {
	return strings.TrimSpace(string(p.out)) + "\n"
}

func (p *printer) print() {
	for i, tok := range p.tokens {
		switch tok.Category {
		case token.LineComment:
			p.lineComment(tok)
		case token.BlockComment:
			p.blockComment(i, tok)
		case token.TopLevelKeyword:
			p.topLevelKeyword(tok)
		case token.TopLevelKeywordNoIndent:
			p.topLevelKeywordNoIndent(tok)
		case token.NewlineKeyword:
			p.newlineKeyword(i, tok)
		case token.CaseKeyword:
			switch p.d.CaseRole(tok.Norm) {
			case dialect.CaseOpen:
				p.openBlock(i, tok)
			case dialect.CaseClose:
				p.closeBlock(tok)
			case dialect.CaseBranch:
				p.newlineKeyword(i, tok)
			default:
				p.word(tok)
			}
		case token.OpenParen:
			p.openBlock(i, tok)
		case token.CloseParen:
			p.closeBlock(tok)
		case token.Comma:
			p.comma()
		case token.Semicolon:
			p.semicolon()
		case token.Operator:
			p.operator(tok)
		default:
			p.word(tok)
		}

		if tok.Category.IsKeyword() {
			p.lastKeyword = tok.Norm
		}
		p.prev = tok
		p.hasPrev = true
	}
}

// render returns the text a token prints as. Keyword phrases have their
// whitespace collapsed and are upper-cased when requested.
func (p *printer) render(tok token.Token) string {
	if !tok.Category.IsKeyword() {
		return tok.Text
	}
	text := strings.Join(strings.Fields(tok.Text), " ")
	if p.opts.Uppercase {
		return p.caser.String(text)
	}
	return text
}

func (p *printer) topLevelKeyword(tok token.Token) {
	p.indent.decreaseTopLevel()
	p.addNewline()
	p.indent.increaseTopLevel()
	p.write(p.render(tok))
	p.addNewline()
}

func (p *printer) topLevelKeywordNoIndent(tok token.Token) {
	p.indent.decreaseTopLevel()
	p.addNewline()
	p.write(p.render(tok))
	p.addNewline()
}

func (p *printer) newlineKeyword(i int, tok token.Token) {
	if p.rangeAnd[i] {
		p.word(tok)
		return
	}
	p.addNewline()
	p.word(tok)
}

func (p *printer) word(tok token.Token) {
	p.write(p.render(tok))
	p.write(" ")
}

func (p *printer) opensBlock(tok token.Token) bool {
	return tok.Category == token.OpenParen ||
		(tok.Category == token.CaseKeyword && p.d.CaseRole(tok.Norm) == dialect.CaseOpen)
}

func (p *printer) closesBlock(tok token.Token) bool {
	return tok.Category == token.CloseParen ||
		(tok.Category == token.CaseKeyword && p.d.CaseRole(tok.Norm) == dialect.CaseClose)
}

func (p *printer) inInlineBlock() bool {
	return len(p.blocks) > 0 && p.blocks[len(p.blocks)-1]
}

func (p *printer) openBlock(i int, tok token.Token) {
	if tok.Category == token.OpenParen {
		if p.hasPrev && hugs(p.prev, tok) {
			p.unspace()
		}
		p.write(tok.Text)
	} else {
		p.word(tok)
	}

	inline := p.inInlineBlock() || p.fitsInline(i)
	p.blocks = append(p.blocks, inline)
	if !inline {
		p.indent.increaseBlockLevel()
		p.addNewline()
	}
}

// closeBlock ends the innermost bracket or CASE block. A closer with no open
// block stays on the current line and leaves the indentation alone.
func (p *printer) closeBlock(tok token.Token) {
	if len(p.blocks) == 0 || p.inInlineBlock() {
		if len(p.blocks) > 0 {
			p.blocks = p.blocks[:len(p.blocks)-1]
		}
		if tok.Category == token.CloseParen {
			p.unspace()
		}
		p.word(tok)
		return
	}

	p.blocks = p.blocks[:len(p.blocks)-1]
	p.indent.decreaseBlockLevel()
	p.addNewline()
	p.word(tok)
}

func (p *printer) comma() {
	p.unspace()
	p.write(", ")
	if p.inInlineBlock() || p.d.IsInlineCommaClause(p.lastKeyword) {
		return
	}
	p.addNewline()
}

func (p *printer) operator(tok token.Token) {
	switch p.d.OperatorSpacing(tok.Text) {
	case dialect.SpaceNone:
		p.unspace()
		p.write(tok.Text)
	case dialect.SpaceAfter:
		p.unspace()
		p.word(tok)
	default:
		p.word(tok)
	}
}

func (p *printer) semicolon() {
	p.indent.reset()
	p.blocks = p.blocks[:0]
	p.lastKeyword = ""

	p.trimSpaces()
	p.write(";")
	p.write(strings.Repeat("\n", p.opts.LinesBetweenQueries))
}

// addNewline ends the current line, unless it is already empty, and indents
// the next one.
func (p *printer) addNewline() {
	p.trimSpaces()
	if n := len(p.out); n > 0 && p.out[n-1] != '\n' {
		p.out = append(p.out, '\n')
	}
	p.out = append(p.out, p.indent.String()...)
}

func (p *printer) write(s string) {
	p.out = append(p.out, s...)
}

// trimSpaces removes trailing spaces and tabs.
func (p *printer) trimSpaces() {
	n := len(p.out)
	for n > 0 && (p.out[n-1] == ' ' || p.out[n-1] == '\t') {
		n--
	}
	p.out = p.out[:n]
}

// unspace removes the space after the last token on the current line. An
// empty line keeps its indentation.
func (p *printer) unspace() {
	if p.lineIsBlank() {
		return
	}
	p.trimSpaces()
}

// lineIsBlank reports whether the current line holds only indentation.
func (p *printer) lineIsBlank() bool {
	for i := len(p.out) - 1; i >= 0; i-- {
		switch p.out[i] {
		case '\n':
			return true
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}
