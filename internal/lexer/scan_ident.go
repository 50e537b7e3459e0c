package lexer

import (
	"syntek/internal/diag"
	"syntek/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор, затем проверяет многословные
// фразы ("is less than") и одиночные ключевые слова. Регистр важен.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	if !lx.bumpIdent() {
		// не буква: символ вроде '→' или '§'
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		lx.errLex(diag.LexUnknownChar, sp, "unknown character '"+text+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if token.StartsPhrase(text) {
		if k, ok := lx.matchPhrase(text); ok {
			sp = lx.cursor.SpanFrom(start)
			return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// bumpIdent съедает [start continue*]; false если первый символ не подходит.
func (lx *Lexer) bumpIdent() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
	} else if !isIdentStartRune(r) {
		return false
	}
	lx.bumpRune()
	for {
		r, sz = lx.peekRune()
		if sz == 0 {
			return true
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				return true
			}
		} else if !isIdentContinueRune(r) {
			return true
		}
		lx.bumpRune()
	}
}

// matchPhrase пробует фразы от самой длинной к короткой. Первое слово уже
// прочитано. При неудаче курсор возвращается на конец первого слова.
func (lx *Lexer) matchPhrase(first string) (token.Kind, bool) {
	afterFirst := lx.cursor.Mark()
	for _, ph := range token.MultiWordKeywords() {
		if ph.Words[0] != first {
			continue
		}
		if lx.matchWords(ph.Words[1:]) {
			return ph.Kind, true
		}
		lx.cursor.Reset(afterFirst)
	}
	return 0, false
}

func (lx *Lexer) matchWords(words []string) bool {
	for _, w := range words {
		// слова разделены хотя бы одним пробелом или табом, не переводом строки
		gap := lx.cursor.Mark()
		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}
		if lx.cursor.Mark() == gap {
			return false
		}
		wordStart := lx.cursor.Mark()
		if !lx.bumpIdent() {
			return false
		}
		sp := lx.cursor.SpanFrom(wordStart)
		if string(lx.file.Content[sp.Start:sp.End]) != w {
			return false
		}
	}
	return true
}
