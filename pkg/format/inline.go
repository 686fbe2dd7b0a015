package format

import (
	"github.com/leapstack-labs/sqlfmt/pkg/dialect"
	"github.com/leapstack-labs/sqlfmt/pkg/token"
	"github.com/mattn/go-runewidth"
)

// fitsInline reports whether the block opened at tokens[start] closes within
// InlineWidth rendered columns and contains nothing that forces a line break.
func (p *printer) fitsInline(start int) bool {
	width := 0
	depth := 0
	for i := start; i < len(p.tokens); i++ {
		tok := p.tokens[i]
		if i > start && p.spaced(p.tokens[i-1], tok) {
			width++
		}
		width += runewidth.StringWidth(p.render(tok))
		if width > p.opts.InlineWidth {
			return false
		}

		switch {
		case p.opensBlock(tok):
			depth++
		case p.closesBlock(tok):
			depth--
			if depth == 0 {
				return true
			}
		case p.breaksLine(i, tok):
			return false
		}
	}
	return false
}

// breaksLine reports whether the token always starts or ends a line.
func (p *printer) breaksLine(i int, tok token.Token) bool {
	switch tok.Category {
	case token.TopLevelKeyword, token.TopLevelKeywordNoIndent,
		token.LineComment, token.BlockComment, token.Semicolon:
		return true
	case token.NewlineKeyword:
		return !p.rangeAnd[i]
	case token.CaseKeyword:
		return p.d.CaseRole(tok.Norm) == dialect.CaseBranch
	}
	return false
}

// spaced reports whether the printer separates prev and tok with a space.
func (p *printer) spaced(prev, tok token.Token) bool {
	switch {
	case prev.Category == token.OpenParen:
		return false
	case prev.Category == token.Operator && p.d.OperatorSpacing(prev.Text) == dialect.SpaceNone:
		return false
	}

	switch tok.Category {
	case token.Comma, token.CloseParen, token.Semicolon:
		return false
	case token.Operator:
		return p.d.OperatorSpacing(tok.Text) == dialect.SpaceAround
	case token.OpenParen:
		return !hugs(prev, tok)
	}
	return true
}

// hugs reports whether an opening bracket keeps its source adjacency to the
// previous token, as in count(*).
func hugs(prev, open token.Token) bool {
	return !open.SpaceBefore && prev.Category != token.Operator && prev.Category != token.Comma
}
