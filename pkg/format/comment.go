package format

import (
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/sqlfmt/pkg/token"
)

func (p *printer) lineComment(tok token.Token) {
	switch {
	case tok.NewlineBefore:
		p.standalone(tok)
	case p.lineIsBlank() && len(p.out) > 0 && !p.afterSemicolon():
		// The comment trailed the previous line in the source; a clause
		// keyword has since broken the line.
		p.out = []byte(strings.TrimRight(string(p.out), " \t\n"))
		p.write(" ")
	}
	p.write(tok.Text)
	p.addNewline()
}

func (p *printer) blockComment(i int, tok token.Token) {
	if strings.Contains(tok.Text, "\n") {
		p.standalone(tok)
		p.write(p.reindent(tok))
		p.addNewline()
		return
	}
	if !tok.NewlineBefore {
		p.word(tok)
		return
	}

	// A one-line comment that started a source line keeps whatever followed
	// it on that line.
	p.standalone(tok)
	p.word(tok)
	if i+1 < len(p.tokens) && p.tokens[i+1].NewlineBefore {
		p.addNewline()
	}
}

// standalone starts a comment's own line, keeping one blank line above it
// when the source had one.
func (p *printer) standalone(tok token.Token) {
	p.addNewline()
	if tok.BlankLineBefore && len(strings.TrimSpace(string(p.out))) > 0 && !p.afterSemicolon() {
		p.trimSpaces()
		p.write("\n")
		p.write(p.indent.String())
	}
}

func (p *printer) afterSemicolon() bool {
	return p.hasPrev && p.prev.Category == token.Semicolon
}

// reindent moves a multi-line block comment to the current indentation.
// Continuation lines keep their offset from the column the comment started
// at, or from the shallowest continuation line when one sits left of it.
// Line content is kept verbatim.
func (p *printer) reindent(tok token.Token) string {
	lines := strings.Split(tok.Text, "\n")
	if len(lines) == 1 {
		return tok.Text
	}

	base := tok.Pos.Column - 1
	leads := make([]int, len(lines))
	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		body := strings.TrimLeft(line, " \t")
		if body == "" {
			leads[i+1] = -1
			continue
		}
		leads[i+1] = utf8.RuneCountInString(line[:len(line)-len(body)])
		base = min(base, leads[i+1])
	}

	indent := p.indent.String()
	var b strings.Builder
	b.WriteString(strings.TrimSuffix(lines[0], "\r"))
	for i, line := range lines[1:] {
		b.WriteByte('\n')
		lead := leads[i+1]
		if lead < 0 {
			continue
		}
		line = strings.TrimSuffix(line, "\r")
		b.WriteString(indent)
		b.WriteString(strings.Repeat(" ", lead-base))
		b.WriteString(strings.TrimLeft(line, " \t"))
	}
	return b.String()
}
