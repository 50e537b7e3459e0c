package testkit

import (
	"strings"
	"testing"

	"syntek/internal/ast"
	"syntek/internal/lexer"
	"syntek/internal/parser"
	"syntek/internal/scope"
	"syntek/internal/source"
)

const sample = `import std.io
class Stack extends Base
    function push(Number v)
        items = items + [v]
    static function empty()
        return new Stack()
for Number x in xs
    if x > 1
        y = x
    elseif x is 0
        continue
    else
        try
            throw x
        catch Error e
            z = e
switch y
    case 1, 2
        fallthrough
    case 3
        break
`

func TestInvariantsHoldOnParsedProgram(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("sample.stk", []byte(sample)))
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(lexer.Tokenize(file, lexer.Options{}), b, parser.Options{})
	if err := res.Err(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := CheckSpanInvariants(b.Nodes, res.Program, file); err != nil {
		t.Errorf("span invariants: %v", err)
	}
	if err := CheckScopeTopology(scope.Resolve(b.Nodes, res.Program)); err != nil {
		t.Errorf("scope topology: %v", err)
	}
}

func TestCheckSpanInvariantsDetectsEscapingChild(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bad.stk", []byte("abc = defghij\n")))
	nodes := ast.NewBuilder(ast.Hints{}).Nodes

	ident := nodes.NewIdent(source.Span{File: file.ID, Start: 6, End: 13}, "defghij")
	stmt := nodes.NewExprStmt(source.Span{File: file.ID, Start: 0, End: 3}, ident)
	prog := nodes.NewProgram(source.Span{File: file.ID, Start: 0, End: 14}, []ast.NodeID{stmt})

	err := CheckSpanInvariants(nodes, prog, file)
	if err == nil || !strings.Contains(err.Error(), "does not contain child Identifier") {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckSpanInvariantsRejectsNonProgram(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.stk", []byte("x\n")))
	nodes := ast.NewBuilder(ast.Hints{}).Nodes
	ident := nodes.NewIdent(source.Span{File: file.ID, Start: 0, End: 1}, "x")
	if err := CheckSpanInvariants(nodes, ident, file); err == nil {
		t.Fatal("expected error for non-Program root")
	}
}

func TestCheckScopeTopologyNil(t *testing.T) {
	if err := CheckScopeTopology(nil); err == nil {
		t.Fatal("expected error for nil tree")
	}
}
