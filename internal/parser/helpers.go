package parser

import (
	"slices"

	"syntek/internal/diag"
	"syntek/internal/source"
	"syntek/internal/token"
)

// peek смотрит на offset токенов вперёд; за концом - всегда EOF.
func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) check(k token.Kind, offset int) bool {
	return p.peek(offset).Kind == k
}

// match съедает текущий токен, если он одного из видов kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	if slices.Contains(kinds, p.peek(0).Kind) {
		p.advance()
		return true
	}
	return false
}

// consume съедает токен вида k или поднимает SyntaxError.
func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k, 0) {
		return p.advance()
	}
	code := diag.SynUnexpectedToken
	switch k {
	case token.Indent:
		code = diag.SynExpectIndent
	case token.Ident:
		code = diag.SynExpectIdentifier
	}
	p.fail(code, msg)
	return token.Token{}
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return token.Token{Kind: token.Invalid}
	}
	return p.toks[p.pos-1]
}

// advance возвращает текущий токен и сдвигается; на EOF стоит на месте.
func (p *Parser) advance() token.Token {
	tok := p.peek(0)
	if tok.Kind == token.EOF {
		return tok
	}
	p.pos++
	switch tok.Kind {
	case token.Newline, token.Indent, token.Outdent:
	default:
		p.lastSig = tok.Span
	}
	return tok
}

// eatWhitespace пропускает незначимые переводы строк (внутри скобок, после оператора).
func (p *Parser) eatWhitespace() {
	for p.check(token.Newline, 0) {
		p.advance()
	}
}

// spanFrom covers start up to the last significant token consumed.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSig)
}

// fail records a SyntaxError at the current token and unwinds.
func (p *Parser) fail(code diag.Code, msg string) {
	p.failWithNotes(code, msg)
}

// failWithNotes - как fail, но прикладывает заметки к диагностике.
func (p *Parser) failWithNotes(code diag.Code, msg string, notes ...diag.Note) {
	tok := p.peek(0)
	err := &SyntaxError{Token: tok, Message: msg, Code: code}
	p.errs = append(p.errs, err)
	// Invalid уже отмечен лексером: вторую диагностику на то же место не шлём
	if p.opts.Reporter != nil && tok.Kind != token.Invalid {
		sp := tok.Span
		if tok.Kind == token.EOF && p.lastSig.End > 0 {
			sp = p.lastSig.ZeroAtEnd()
		}
		b := diag.ReportError(p.opts.Reporter, code, sp, msg)
		for _, n := range notes {
			b.WithNote(n.Span, n.Msg)
		}
		b.Emit()
	}
	if p.opts.Mode != ModeCollect {
		p.stop = true
	} else if p.opts.MaxErrors > 0 && uint(len(p.errs)) >= p.opts.MaxErrors {
		p.stop = true
	}
	panic(bailout{})
}

// synchronize пропускает токены до границы следующего оператора.
// Хотя бы один токен съедается, чтобы цикл разбора продвигался.
func (p *Parser) synchronize(start int) {
	p.nesting = 0
	for !p.check(token.EOF, 0) {
		switch p.peek(0).Kind {
		case token.Newline:
			p.advance()
			if p.check(token.Indent, 0) {
				p.skipBlock()
			}
			return
		case token.Indent:
			p.skipBlock()
			return
		case token.Outdent:
			if p.pos == start {
				p.advance()
			}
			return
		default:
			p.advance()
		}
	}
}

// skipBlock съедает Indent ... Outdent с учётом вложенности.
func (p *Parser) skipBlock() {
	depth := 0
	for !p.check(token.EOF, 0) {
		switch p.advance().Kind {
		case token.Indent:
			depth++
		case token.Outdent:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}
