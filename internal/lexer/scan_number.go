package lexer

import (
	"syntek/internal/diag"
	"syntek/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b101, 0o17, 0x1F, 1.5, .5, 1e3, 1.0e-10.
// Все формы дают NumberLit; значение строит ast.LiteralValue из Text.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	bad := func(msg string) token.Token {
		// доедаем хвост идентификатора, чтобы не плодить каскад ошибок
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x', 'X':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for digit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Bump() != '_' {
					n++
				}
			}
			if n == 0 {
				return bad("expected digits after base prefix")
			}
			if isIdentContinueByte(lx.cursor.Peek()) {
				return bad("invalid digit in number literal")
			}
			return lx.emitNumber(start)
		}
	}

	lx.eatDecimal()
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.eatDecimal()
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(save)
			return bad("expected digit after exponent")
		}
		lx.eatDecimal()
	}
	if isIdentContinueByte(lx.cursor.Peek()) {
		return bad("invalid character in number literal")
	}
	return lx.emitNumber(start)
}

func (lx *Lexer) eatDecimal() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
