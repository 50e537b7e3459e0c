package parser

import (
	"syntek/internal/ast"
	"syntek/internal/diag"
	"syntek/internal/token"
)

// declaration выбирает разбор по первому токену: объявления, затем
// объявление переменной по lookahead, иначе оператор.
func (p *Parser) declaration() ast.NodeID {
	switch p.peek(0).Kind {
	case token.KwImport:
		return p.importDecl()
	case token.KwClass:
		return p.classDecl()
	case token.KwFunction:
		return p.functionDecl(p.advance(), false)
	case token.KwStatic:
		if !p.inClass {
			p.fail(diag.SynUnexpectedToken, `"static" is only allowed in a class body`)
		}
		kw := p.advance()
		p.consume(token.KwFunction, `Expected "function" after "static"`)
		return p.functionDecl(kw, true)
	}
	if r := p.varDeclCheck(); r.ok {
		return p.variableDecl(r)
	}
	return p.statement()
}

// block: Newline Indent declaration* Outdent.
func (p *Parser) block(what string) []ast.NodeID {
	p.consume(token.Newline, "Expected newline after "+what)
	p.consume(token.Indent, "Expected indented block after "+what)
	var body []ast.NodeID
	for !p.match(token.Outdent) {
		if p.check(token.EOF, 0) {
			p.fail(diag.SynUnexpectedToken, "Expected end of block")
		}
		if id := p.declarationSafe(); id.IsValid() {
			body = append(body, id)
		}
	}
	return body
}

// endStatement требует конец логической строки.
func (p *Parser) endStatement() {
	p.consume(token.Newline, "Expected newline after statement")
}

func (p *Parser) variableDecl(r declReport) ast.NodeID {
	start := p.peek(0).Span
	typ := p.consumeType(r)
	name, nameSpan := p.ident("Expected variable name")
	p.consume(token.Assign, `Expected "="`)
	p.eatWhitespace()
	value := p.expression()
	span := start.Cover(p.nodes.Span(value))
	p.endStatement()
	return p.nodes.NewVariableDecl(span, ast.VariableDeclData{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
		Value:    value,
	})
}

// importDecl: import a.b.c [as x]
func (p *Parser) importDecl() ast.NodeID {
	kw := p.advance()
	var d ast.ImportDeclData
	name, sp := p.ident(`Expected module name after "import"`)
	d.Path = append(d.Path, ast.Name{Text: name, Span: sp})
	for p.match(token.Dot) {
		name, sp = p.ident(`Expected module name after "."`)
		d.Path = append(d.Path, ast.Name{Text: name, Span: sp})
	}
	if p.match(token.KwAs) {
		name, sp = p.ident(`Expected alias after "as"`)
		d.Alias = ast.Name{Text: name, Span: sp}
	}
	span := p.spanFrom(kw.Span)
	p.endStatement()
	return p.nodes.NewImportDecl(span, d)
}

// classDecl: class Name [extends A, B] block
func (p *Parser) classDecl() ast.NodeID {
	kw := p.advance()
	var d ast.ClassDeclData
	d.Name, d.NameSpan = p.ident(`Expected class name after "class"`)
	if p.match(token.KwExtends) {
		for {
			name, sp := p.ident(`Expected class name after "extends"`)
			d.Extends = append(d.Extends, ast.Name{Text: name, Span: sp})
			if !p.match(token.Comma) {
				break
			}
		}
	}
	d.Header = p.spanFrom(kw.Span)

	saved := p.inClass
	p.inClass = true
	defer func() { p.inClass = saved }()
	d.Body = p.block("class declaration")

	return p.nodes.NewClassDecl(p.spanFrom(kw.Span), d)
}

// functionDecl: function name(params) block. kw - первый токен
// объявления ("function" или "static").
func (p *Parser) functionDecl(kw token.Token, static bool) ast.NodeID {
	d := ast.FunctionDeclData{Static: static}
	d.Name, d.NameSpan = p.ident(`Expected function name`)
	p.consume(token.LParen, `Expected "(" after function name`)
	d.Params = p.params()
	d.Header = p.spanFrom(kw.Span)

	saved := p.inClass
	p.inClass = false
	defer func() { p.inClass = saved }()
	d.Body = p.block("function declaration")

	return p.nodes.NewFunctionDecl(p.spanFrom(kw.Span), d)
}

// params: ([Type] name, ...) - "(" уже съедена.
func (p *Parser) params() []ast.Param {
	var out []ast.Param
	p.nesting++
	p.eatWhitespace()
	for !p.match(token.RParen) {
		var prm ast.Param
		prm.Type = p.consumeType(p.typeDeclCheck())
		prm.Name, prm.NameSpan = p.ident("Expected parameter name")
		out = append(out, prm)
		p.eatWhitespace()
		if !p.check(token.RParen, 0) {
			p.consume(token.Comma, `Expected ","`)
			p.eatWhitespace()
		}
	}
	p.nesting--
	return out
}
