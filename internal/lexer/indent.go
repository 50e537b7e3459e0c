package lexer

import (
	"syntek/internal/diag"
	"syntek/internal/source"
	"syntek/internal/token"
)

// handleLineStart измеряет отступ новой логической строки.
// Пустые строки и строки из одного комментария пропускаются целиком.
func (lx *Lexer) handleLineStart() {
	tw := lx.opts.tabWidth()
	for {
		lineStart := lx.cursor.Mark()
		var width uint32
	measure:
		for {
			switch lx.cursor.Peek() {
			case ' ':
				width++
			case '\t':
				width = (width/tw + 1) * tw
			case '\r', '\f':
			default:
				break measure
			}
			lx.cursor.Bump()
		}

		if lx.cursor.EOF() {
			lx.finish()
			return
		}
		switch lx.cursor.Peek() {
		case '\n':
			lx.cursor.Bump()
			continue
		case '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			if lx.cursor.Eat('\n') {
				continue
			}
			lx.finish()
			return
		}

		lx.applyIndent(width, lx.cursor.SpanFrom(lineStart))
		return
	}
}

func (lx *Lexer) applyIndent(width uint32, ws source.Span) {
	here := lx.cursor.Here()
	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.push(token.Token{Kind: token.Indent, Span: here})
	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.push(token.Token{Kind: token.Outdent, Span: here})
		}
		if lx.indents[len(lx.indents)-1] != width {
			lx.errLex(diag.LexBadDedent, ws, "unindent does not match any outer indentation level")
			lx.push(token.Token{Kind: token.Invalid, Span: ws, Text: string(lx.file.Content[ws.Start:ws.End])})
		}
	}
}

// finish закрывает поток: Newline для незавершённой строки,
// Outdent на каждый оставшийся уровень, затем EOF.
func (lx *Lexer) finish() {
	here := lx.cursor.Here()
	if lx.lineHasToks {
		lx.lineHasToks = false
		lx.push(token.Token{Kind: token.Newline, Span: here})
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.push(token.Token{Kind: token.Outdent, Span: here})
	}
	lx.push(token.Token{Kind: token.EOF, Span: here})
	lx.done = true
}
