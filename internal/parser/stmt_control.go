package parser

import (
	"syntek/internal/ast"
	"syntek/internal/diag"
	"syntek/internal/token"
)

func (p *Parser) statement() ast.NodeID {
	tok := p.peek(0)
	switch tok.Kind {
	case token.KwIf:
		return p.ifStmt(p.advance())
	case token.KwFor:
		return p.forStmt()
	case token.KwWhile:
		return p.whileStmt()
	case token.KwRepeat:
		return p.repeatStmt()
	case token.KwTry:
		return p.tryStmt()
	case token.KwSwitch:
		return p.switchStmt()
	case token.KwThrow:
		p.advance()
		value := p.expression()
		span := tok.Span.Cover(p.nodes.Span(value))
		p.endStatement()
		return p.nodes.NewThrow(span, value)
	case token.KwReturn:
		p.advance()
		value := ast.NoNodeID
		if !p.check(token.Newline, 0) {
			value = p.expression()
		}
		span := p.spanFrom(tok.Span)
		p.endStatement()
		return p.nodes.NewReturn(span, value)
	case token.KwBreak, token.KwContinue, token.KwFallthrough:
		p.advance()
		p.endStatement()
		return p.nodes.NewLeaf(leafKinds[tok.Kind], tok.Span)
	case token.KwElse, token.KwElseIf:
		p.fail(diag.SynUnexpectedToken, `"else" without "if"`)
	case token.KwCatch:
		p.fail(diag.SynUnexpectedToken, `"catch" without "try"`)
	case token.KwCase:
		p.fail(diag.SynUnexpectedToken, `"case" outside of "switch"`)
	}
	return p.expressionStmt()
}

var leafKinds = map[token.Kind]ast.NodeKind{
	token.KwBreak:       ast.BreakStmt,
	token.KwContinue:    ast.ContinueStmt,
	token.KwFallthrough: ast.FallthroughStmt,
}

func (p *Parser) expressionStmt() ast.NodeID {
	expr := p.expression()
	span := p.nodes.Span(expr)
	p.endStatement()
	return p.nodes.NewExprStmt(span, expr)
}

// ifStmt: kw - уже съеденный "if" или "elseif".
// else if / elseif превращаются в ElseStmt с единственным IfStmt в теле.
func (p *Parser) ifStmt(kw token.Token) ast.NodeID {
	var d ast.IfStmtData
	d.Cond = p.expression()
	d.Header = kw.Span.Cover(p.nodes.Span(d.Cond))
	d.Body = p.block("if condition")

	switch {
	case p.check(token.KwElse, 0):
		elseTok := p.advance()
		if p.check(token.KwIf, 0) {
			inner := p.ifStmt(p.advance())
			d.Else = p.nodes.NewElse(elseTok.Span.Cover(p.nodes.Span(inner)), ast.ElseStmtData{
				Body:   []ast.NodeID{inner},
				Header: elseTok.Span,
			})
			break
		}
		body := p.block("else")
		d.Else = p.nodes.NewElse(p.spanFrom(elseTok.Span), ast.ElseStmtData{Body: body, Header: elseTok.Span})
	case p.check(token.KwElseIf, 0):
		elseTok := p.advance()
		inner := p.ifStmt(elseTok)
		d.Else = p.nodes.NewElse(p.nodes.Span(inner), ast.ElseStmtData{
			Body:   []ast.NodeID{inner},
			Header: elseTok.Span,
		})
	}
	return p.nodes.NewIf(p.spanFrom(kw.Span), d)
}

// forStmt: for [Type([])*] name in expr block
func (p *Parser) forStmt() ast.NodeID {
	kw := p.advance()
	var d ast.ForStmtData
	d.VarType = p.consumeType(p.typeDeclCheck())
	d.Var, d.VarSpan = p.ident(`Expected identifier after "for"`)
	p.consume(token.KwIn, `Expected "in" after identifier`)
	d.Iterable = p.expression()
	d.Header = p.spanFrom(kw.Span)
	d.Body = p.block("for statement")
	return p.nodes.NewFor(p.spanFrom(kw.Span), d)
}

func (p *Parser) whileStmt() ast.NodeID {
	kw := p.advance()
	var d ast.WhileStmtData
	d.Cond = p.expression()
	d.Header = p.spanFrom(kw.Span)
	d.Body = p.block("while condition")
	return p.nodes.NewWhile(p.spanFrom(kw.Span), d)
}

// repeatStmt: repeat expr times block
func (p *Parser) repeatStmt() ast.NodeID {
	kw := p.advance()
	var d ast.RepeatStmtData
	d.Count = p.expression()
	p.consume(token.KwTimes, `Expected "times" after repeat count`)
	d.Header = p.spanFrom(kw.Span)
	d.Body = p.block("repeat statement")
	return p.nodes.NewRepeat(p.spanFrom(kw.Span), d)
}

// tryStmt: try block catch [[Type] name] block
func (p *Parser) tryStmt() ast.NodeID {
	kw := p.advance()
	var d ast.TryStmtData
	d.Header = kw.Span
	d.Body = p.block("try")
	if !p.check(token.KwCatch, 0) {
		p.failWithNotes(diag.SynTryWithoutCatch, `Expected "catch" after try block`,
			diag.Note{Span: kw.Span, Msg: "try block starts here"})
	}
	d.Catch = p.catchStmt()
	return p.nodes.NewTry(p.spanFrom(kw.Span), d)
}

func (p *Parser) catchStmt() ast.NodeID {
	kw := p.advance()
	var d ast.CatchStmtData
	d.ParamType = p.consumeType(p.typeDeclCheck())
	if !d.ParamType.IsZero() || p.check(token.Ident, 0) {
		d.Param, d.ParamSpan = p.ident(`Expected identifier after "catch"`)
	}
	d.Header = p.spanFrom(kw.Span)
	d.Body = p.block("catch")
	return p.nodes.NewCatch(p.spanFrom(kw.Span), d)
}

// switchStmt: у switch нет собственного блока, только у case.
//
//	switch expr
//	    case 1, 2
//	        ...
func (p *Parser) switchStmt() ast.NodeID {
	kw := p.advance()
	var d ast.SwitchStmtData
	d.Subject = p.expression()
	d.Header = p.spanFrom(kw.Span)
	p.consume(token.Newline, "Expected newline after switch subject")
	p.consume(token.Indent, "Expected indented cases after switch")
	for !p.match(token.Outdent) {
		if !p.check(token.KwCase, 0) {
			p.fail(diag.SynUnexpectedToken, `Expected "case"`)
		}
		d.Cases = append(d.Cases, p.switchCase())
	}
	return p.nodes.NewSwitch(p.spanFrom(kw.Span), d)
}

func (p *Parser) switchCase() ast.NodeID {
	kw := p.advance()
	var d ast.SwitchCaseData
	for {
		d.Conditions = append(d.Conditions, p.expression())
		if !p.match(token.Comma) {
			break
		}
	}
	d.Header = p.spanFrom(kw.Span)
	d.Body = p.block("case")
	return p.nodes.NewCase(p.spanFrom(kw.Span), d)
}
