package parser

import (
	"syntek/internal/ast"
	"syntek/internal/source"
	"syntek/internal/token"
)

// declReport is the outcome of declaration lookahead. No tokens are consumed.
type declReport struct {
	ok     bool
	typed  bool
	offset int // позиция имени относительно текущего токена
	depth  int // число пар []
}

// bracketPairs counts consecutive `[` `]` pairs starting at offset.
// An unpaired bracket stops the count, so `T[ x` or `T[1] x` is not a type.
func (p *Parser) bracketPairs(offset int) int {
	n := 0
	for p.check(token.LBracket, offset+2*n) && p.check(token.RBracket, offset+2*n+1) {
		n++
	}
	return n
}

// varDeclCheck распознаёт
//
//	x = ...            untyped
//	Number x = ...     typed, depth 0
//	Number[][] x = ... typed, depth 2
func (p *Parser) varDeclCheck() declReport {
	if !p.check(token.Ident, 0) {
		return declReport{}
	}
	if p.check(token.Assign, 1) {
		return declReport{ok: true}
	}
	depth := p.bracketPairs(1)
	nameAt := 1 + 2*depth
	if p.check(token.Ident, nameAt) && p.check(token.Assign, nameAt+1) {
		return declReport{ok: true, typed: true, offset: nameAt, depth: depth}
	}
	return declReport{}
}

// typeDeclCheck распознаёт аннотацию типа перед именем: `Number x`, `Number[] x`.
// Используется в for, catch и параметрах функций.
func (p *Parser) typeDeclCheck() declReport {
	if !p.check(token.Ident, 0) {
		return declReport{}
	}
	depth := p.bracketPairs(1)
	nameAt := 1 + 2*depth
	if p.check(token.Ident, nameAt) {
		return declReport{ok: true, typed: true, offset: nameAt, depth: depth}
	}
	return declReport{}
}

// consumeType съедает тип, найденный typeDeclCheck/varDeclCheck.
func (p *Parser) consumeType(r declReport) ast.TypeRef {
	if !r.typed {
		return ast.TypeRef{}
	}
	name := p.advance()
	span := name.Span
	for range r.depth {
		p.advance()
		span = span.Cover(p.advance().Span)
	}
	return ast.TypeRef{Name: name.Text, Span: span, ArrayDepth: r.depth}
}

// ident съедает идентификатор и возвращает имя и span.
func (p *Parser) ident(msg string) (string, source.Span) {
	tok := p.consume(token.Ident, msg)
	return tok.Text, tok.Span
}
