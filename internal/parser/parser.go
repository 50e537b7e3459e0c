package parser

import (
	"errors"

	"syntek/internal/ast"
	"syntek/internal/diag"
	"syntek/internal/source"
	"syntek/internal/token"
)

// ErrorMode selects what happens after the first syntax error.
type ErrorMode uint8

const (
	// ModeAbort stops at the first syntax error.
	ModeAbort ErrorMode = iota
	// ModeCollect records the error, skips to the next statement and continues.
	ModeCollect
)

func (m ErrorMode) String() string {
	if m == ModeCollect {
		return "collect"
	}
	return "abort"
}

// ParseErrorMode maps "abort"/"collect" to a mode.
func ParseErrorMode(s string) (ErrorMode, bool) {
	switch s {
	case "", "abort":
		return ModeAbort, true
	case "collect":
		return ModeCollect, true
	}
	return ModeAbort, false
}

type Options struct {
	Mode ErrorMode
	// MaxErrors ограничивает ModeCollect; 0 - без лимита.
	MaxErrors uint
	Reporter  diag.Reporter
}

type Result struct {
	// Program всегда валиден; при ошибке содержит то, что успели разобрать.
	Program ast.NodeID
	Errors  []*SyntaxError
}

// Err returns nil, the single error, or all errors joined.
func (r Result) Err() error {
	switch len(r.Errors) {
	case 0:
		return nil
	case 1:
		return r.Errors[0]
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Parser - состояние парсера на один файл.
type Parser struct {
	toks    []token.Token
	pos     int
	nodes   *ast.Nodes
	opts    Options
	errs    []*SyntaxError
	lastSig source.Span // span последнего значимого (не структурного) токена
	nesting int         // глубина скобок в выражении: переводы строк незначимы
	inClass bool        // тело класса: разрешён static
	stop    bool        // достигнут MaxErrors
}

// Parse builds a Program from tokens. A stream without a trailing EOF is
// treated as if it had one.
func Parse(tokens []token.Token, b *ast.Builder, opts Options) Result {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		var eofSpan source.Span
		if len(tokens) > 0 {
			eofSpan = tokens[len(tokens)-1].Span.ZeroAtEnd()
		}
		tokens = append(tokens[:len(tokens):len(tokens)], token.Token{Kind: token.EOF, Span: eofSpan})
	}
	p := &Parser{
		toks:  tokens,
		nodes: b.Nodes,
		opts:  opts,
	}
	body := p.parseProgram()

	// программа покрывает весь файл, включая ведущие комментарии
	eof := tokens[len(tokens)-1].Span
	span := source.Span{File: eof.File, Start: 0, End: eof.End}
	return Result{
		Program: p.nodes.NewProgram(span, body),
		Errors:  p.errs,
	}
}

func (p *Parser) parseProgram() (body []ast.NodeID) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()
	for !p.check(token.EOF, 0) {
		if id := p.declarationSafe(); id.IsValid() {
			body = append(body, id)
		}
	}
	return body
}

// declarationSafe parses one declaration; in ModeCollect a syntax error is
// absorbed here and the parser resynchronizes.
func (p *Parser) declarationSafe() (id ast.NodeID) {
	if p.opts.Mode != ModeCollect {
		return p.declaration()
	}
	start := p.pos
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); !ok || p.stop {
			panic(r)
		}
		p.synchronize(start)
		id = ast.NoNodeID
	}()
	return p.declaration()
}
