package parser

import (
	"syntek/internal/ast"
	"syntek/internal/diag"
	"syntek/internal/token"
)

// expression - точка входа: самый низкий уровень, присваивание.
func (p *Parser) expression() ast.NodeID {
	return p.parsePrecedence(precAssignment)
}

// parsePrecedence реализует precedence climbing: съедает инфиксные операторы
// с приоритетом >= minPrec. Левоассоциативные рекурсируют с prec+1,
// правоассоциативные (^ и =) с prec.
func (p *Parser) parsePrecedence(minPrec int) ast.NodeID {
	left := p.prefix()
	for {
		if p.nesting > 0 {
			p.eatWhitespace()
		}
		opTok := p.peek(0)
		prec, rightAssoc := infixPrec(opTok.Kind)
		if prec == precNone || prec < minPrec {
			return left
		}
		next := prec + 1
		if rightAssoc {
			next = prec
		}

		switch opTok.Kind {
		case token.LParen:
			left = p.callExpr(left)
		case token.LBracket:
			left = p.indexExpr(left)
		case token.Dot:
			left = p.memberExpr(left)
		case token.Assign:
			left = p.assignmentExpr(left)
		case token.KwInstanceof:
			p.advance()
			p.eatWhitespace()
			right := p.parsePrecedence(next)
			left = p.nodes.NewInstanceof(p.nodes.Span(left).Cover(p.nodes.Span(right)), left, right)
		default:
			p.advance()
			p.eatWhitespace()
			right := p.parsePrecedence(next)
			span := p.nodes.Span(left).Cover(p.nodes.Span(right))
			left = p.nodes.NewBinary(span, binaryOps[opTok.Kind], opTok.Span, left, right)
		}
	}
}

// prefix - разбор по первому токену выражения.
func (p *Parser) prefix() ast.NodeID {
	tok := p.peek(0)
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		return p.nodes.NewLiteral(tok.Span, ast.LitNumber, tok.Text)
	case token.StringLit:
		p.advance()
		return p.nodes.NewLiteral(tok.Span, ast.LitString, tok.Text)
	case token.BoolLit:
		p.advance()
		return p.nodes.NewLiteral(tok.Span, ast.LitBool, tok.Text)
	case token.NilLit:
		p.advance()
		return p.nodes.NewLiteral(tok.Span, ast.LitNil, tok.Text)
	case token.Ident:
		p.advance()
		return p.nodes.NewIdent(tok.Span, tok.Text)
	case token.KwThis:
		p.advance()
		return p.nodes.NewLeaf(ast.This, tok.Span)
	case token.KwSuper:
		p.advance()
		return p.nodes.NewLeaf(ast.Super, tok.Span)
	case token.LParen:
		return p.groupExpr()
	case token.LBracket:
		p.advance()
		elems := p.expressionList(token.RBracket)
		return p.nodes.NewArray(p.spanFrom(tok.Span), elems)
	case token.LBrace:
		return p.objectExpr()
	case token.Minus, token.Plus, token.KwNot:
		p.advance()
		operand := p.parsePrecedence(precExponent)
		return p.nodes.NewUnary(tok.Span.Cover(p.nodes.Span(operand)), unaryOps[tok.Kind], tok.Span, operand)
	case token.KwNew:
		return p.newExpr()
	case token.KwAsync:
		p.advance()
		operand := p.parsePrecedence(precUnary)
		return p.nodes.NewAsync(tok.Span.Cover(p.nodes.Span(operand)), operand)
	}
	p.fail(diag.SynExpectExpression, "Expected expression")
	return ast.NoNodeID
}

func (p *Parser) groupExpr() ast.NodeID {
	open := p.advance()
	p.nesting++
	p.eatWhitespace()
	inner := p.expression()
	p.eatWhitespace()
	p.consume(token.RParen, `Expected ")" after expression`)
	p.nesting--
	return p.nodes.NewWrapped(p.spanFrom(open.Span), inner)
}

// expressionList разбирает `a, b, c` до closing включительно; допускает
// переводы строк и висячую запятую.
func (p *Parser) expressionList(closing token.Kind) []ast.NodeID {
	var items []ast.NodeID
	p.nesting++
	p.eatWhitespace()
	for !p.match(closing) {
		items = append(items, p.expression())
		p.eatWhitespace()
		if !p.check(closing, 0) {
			p.consume(token.Comma, `Expected ","`)
			p.eatWhitespace()
		}
	}
	p.nesting--
	return items
}

func (p *Parser) callExpr(callee ast.NodeID) ast.NodeID {
	p.advance() // (
	args := p.expressionList(token.RParen)
	return p.nodes.NewCall(p.nodes.Span(callee).Cover(p.lastSig), callee, args)
}

func (p *Parser) indexExpr(object ast.NodeID) ast.NodeID {
	p.advance() // [
	p.nesting++
	p.eatWhitespace()
	index := p.expression()
	p.eatWhitespace()
	p.consume(token.RBracket, `Expected "]" after index`)
	p.nesting--
	return p.nodes.NewIndex(p.nodes.Span(object).Cover(p.lastSig), object, index)
}

func (p *Parser) memberExpr(object ast.NodeID) ast.NodeID {
	p.advance() // .
	p.eatWhitespace()
	name, nameSpan := p.ident(`Expected property name after "."`)
	return p.nodes.NewMember(p.nodes.Span(object).Cover(nameSpan), object, name, nameSpan)
}

// assignmentExpr: цель - идентификатор, поле или индекс; правая часть
// правоассоциативна: a.x = b.y = 1.
func (p *Parser) assignmentExpr(target ast.NodeID) ast.NodeID {
	switch p.nodes.Kind(target) {
	case ast.Identifier, ast.MemberExpr, ast.IndexExpr:
	default:
		p.fail(diag.SynUnexpectedToken, "Invalid assignment target")
	}
	p.advance() // =
	p.eatWhitespace()
	value := p.parsePrecedence(precAssignment)
	return p.nodes.NewAssignment(p.nodes.Span(target).Cover(p.nodes.Span(value)), target, value)
}

// newExpr: `new` primary (. name)* ( args ).
func (p *Parser) newExpr() ast.NodeID {
	kw := p.advance()
	p.eatWhitespace()
	class := p.prefix()
	for p.check(token.Dot, 0) {
		class = p.memberExpr(class)
	}
	p.consume(token.LParen, `Expected "(" after class in new expression`)
	args := p.expressionList(token.RParen)
	return p.nodes.NewNewExpr(p.spanFrom(kw.Span), class, args)
}

// objectExpr: { key: value, "other key": value }.
func (p *Parser) objectExpr() ast.NodeID {
	open := p.advance()
	p.nesting++
	p.eatWhitespace()
	var entries []ast.ObjectEntry
	for !p.match(token.RBrace) {
		keyTok := p.peek(0)
		var key string
		switch keyTok.Kind {
		case token.Ident:
			key = keyTok.Text
		case token.StringLit:
			key = keyTok.Text[1 : len(keyTok.Text)-1]
		default:
			p.fail(diag.SynExpectIdentifier, "Expected object key")
		}
		p.advance()
		p.consume(token.Colon, `Expected ":" after object key`)
		p.eatWhitespace()
		value := p.expression()
		entries = append(entries, ast.ObjectEntry{Key: key, KeySpan: keyTok.Span, Value: value})
		p.eatWhitespace()
		if !p.check(token.RBrace, 0) {
			p.consume(token.Comma, `Expected ","`)
			p.eatWhitespace()
		}
	}
	p.nesting--
	return p.nodes.NewObject(p.spanFrom(open.Span), entries)
}
