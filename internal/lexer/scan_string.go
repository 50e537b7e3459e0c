package lexer

import (
	"syntek/internal/diag"
	"syntek/internal/token"
)

// scanString читает "..." или '...'. Text сохраняет кавычки и escape как есть.
// Неизвестный escape даёт предупреждение, строка остаётся StringLit.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case '\\':
			escStart := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				continue
			}
			switch lx.cursor.Bump() {
			case 'n', 't', 'r', '0', '\\', '\'', '"':
			case 'x':
				if !isHex(lx.cursor.PeekAt(0)) || !isHex(lx.cursor.PeekAt(1)) {
					lx.warnLex(diag.LexBadEscape, lx.cursor.SpanFrom(escStart), "\\x escape needs two hex digits")
					continue
				}
				lx.cursor.Bump()
				lx.cursor.Bump()
			default:
				lx.warnLex(diag.LexBadEscape, lx.cursor.SpanFrom(escStart), "unknown escape sequence")
			}
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
