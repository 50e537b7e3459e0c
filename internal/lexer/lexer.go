package lexer

import (
	"syntek/internal/source"
	"syntek/internal/token"
)

// Lexer turns a source file into a token stream with synthesized
// Newline/Indent/Outdent tokens. It never aborts: malformed input yields
// token.Invalid plus a diagnostic, and the stream always ends with EOF.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	indents []uint32      // стек отступов, всегда начинается с 0
	pending []token.Token // структурные токены, ждущие выдачи
	look    *token.Token

	depth       int  // глубина (), [], {}
	atLineStart bool // следующий токен начинает логическую строку
	lineHasToks bool // в текущей логической строке уже были токены
	done        bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		indents:     []uint32{0},
		atLineStart: true,
	}
}

// Tokenize scans the whole file. The result always ends with a single EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/3+4)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	for {
		if tok, ok := lx.popPending(); ok {
			return tok
		}
		if lx.done {
			return token.Token{Kind: token.EOF, Span: lx.cursor.Here()}
		}
		if lx.atLineStart && lx.depth == 0 {
			lx.atLineStart = false
			lx.handleLineStart()
			continue
		}

		lx.skipBlanksAndComment()
		if lx.cursor.EOF() {
			lx.finish()
			continue
		}

		if lx.cursor.Peek() == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if lx.depth > 0 {
				// внутри скобок отступы не считаем, но перевод строки отдаём парсеру
				return token.Token{Kind: token.Newline, Span: sp}
			}
			lx.atLineStart = true
			if lx.lineHasToks {
				lx.lineHasToks = false
				return token.Token{Kind: token.Newline, Span: sp}
			}
			continue
		}

		tok := lx.scanToken()
		lx.lineHasToks = true
		lx.trackDepth(tok.Kind)
		return tok
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Depth reports the current indentation stack height, 1 at top level.
func (lx *Lexer) Depth() int { return len(lx.indents) }

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) trackDepth(k token.Kind) {
	switch k {
	case token.LParen, token.LBracket, token.LBrace:
		lx.depth++
	case token.RParen, token.RBracket, token.RBrace:
		// лишняя закрывающая скобка: ошибку увидит парсер
		if lx.depth > 0 {
			lx.depth--
		}
	}
}

// skipBlanksAndComment пропускает пробелы, табы, '\r' и комментарий до конца строки.
// Сам '\n' не съедается.
func (lx *Lexer) skipBlanksAndComment() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\f':
			lx.cursor.Bump()
		case '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) push(tok token.Token) {
	lx.pending = append(lx.pending, tok)
}

func (lx *Lexer) popPending() (token.Token, bool) {
	if len(lx.pending) == 0 {
		return token.Token{}, false
	}
	tok := lx.pending[0]
	lx.pending = lx.pending[1:]
	if len(lx.pending) == 0 {
		lx.pending = lx.pending[:0:0]
	}
	return tok, true
}
