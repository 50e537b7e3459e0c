package scope_test

import (
	"errors"
	"reflect"
	"testing"

	"syntek/internal/ast"
	"syntek/internal/lexer"
	"syntek/internal/parser"
	"syntek/internal/scope"
	"syntek/internal/source"
)

type fixture struct {
	file  *source.File
	nodes *ast.Nodes
	prog  ast.NodeID
}

func parse(t *testing.T, src string) fixture {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.stk", []byte(src)))
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(lexer.Tokenize(file, lexer.Options{}), b, parser.Options{})
	if err := res.Err(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fixture{file: file, nodes: b.Nodes, prog: res.Program}
}

func (f fixture) text(sp source.Span) string {
	return string(f.file.Content[sp.Start:sp.End])
}

func varNames(tree *scope.Tree, s *scope.Scope) []string {
	out := make([]string, 0, len(s.Variables))
	for _, v := range s.Variables {
		out = append(out, tree.DeclName(v))
	}
	return out
}

func TestIfElseSiblings(t *testing.T) {
	f := parse(t, "if c\n    a = 1\nelse\n    b = 2\n")
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)
	if root.Kind != scope.KindFile || root.Parent.IsValid() {
		t.Fatalf("root = %+v", root)
	}
	if len(root.Branches) != 2 {
		t.Fatalf("root branches = %d, want 2", len(root.Branches))
	}
	ifScope, elseScope := tree.Get(root.Branches[0]), tree.Get(root.Branches[1])
	if ifScope.Parent != tree.Root || elseScope.Parent != tree.Root {
		t.Errorf("if/else scopes must share the root as parent")
	}
	if got := varNames(tree, ifScope); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("if variables = %v", got)
	}
	if got := varNames(tree, elseScope); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("else variables = %v", got)
	}
	if len(ifScope.Branches) != 0 {
		t.Errorf("else must not nest under if")
	}
	if got := f.text(ifScope.Header); got != "if c" {
		t.Errorf("if header = %q", got)
	}
	if f.nodes.Kind(elseScope.Node) != ast.ElseStmt || elseScope.Header != f.nodes.Span(elseScope.Node) {
		t.Errorf("else scope header must be the else node span")
	}
}

func TestElseIfChain(t *testing.T) {
	f := parse(t, "if a\n    x = 1\nelseif b\n    y = 1\nelse\n    z = 1\n")
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)
	if len(root.Branches) != 2 {
		t.Fatalf("root branches = %d, want 2", len(root.Branches))
	}
	outerElse := tree.Get(root.Branches[1])
	if len(outerElse.Branches) != 2 {
		t.Fatalf("outer else branches = %d, want 2", len(outerElse.Branches))
	}
	inner, last := tree.Get(outerElse.Branches[0]), tree.Get(outerElse.Branches[1])
	if f.nodes.Kind(inner.Node) != ast.IfStmt || f.nodes.Kind(last.Node) != ast.ElseStmt {
		t.Fatalf("unexpected nested scopes %s, %s", f.nodes.Kind(inner.Node), f.nodes.Kind(last.Node))
	}
	if got := varNames(tree, last); !reflect.DeepEqual(got, []string{"z"}) {
		t.Errorf("last else variables = %v", got)
	}
	if tree.Len() != 5 {
		t.Errorf("scopes = %d, want 5", tree.Len())
	}
}

func TestTryCatchSiblings(t *testing.T) {
	f := parse(t, "function f()\n    try\n        a = 1\n    catch e\n        b = 2\n")
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)
	if len(root.Functions) != 1 {
		t.Fatalf("functions = %d", len(root.Functions))
	}
	fnID := root.Functions[0]
	fn := tree.Get(fnID)
	if len(fn.Branches) != 2 {
		t.Fatalf("function branches = %d, want 2", len(fn.Branches))
	}
	catchScope := tree.Get(fn.Branches[1])
	if catchScope.Parent != fnID || f.nodes.Kind(catchScope.Node) != ast.CatchStmt {
		t.Fatalf("catch scope must be a branch of the function")
	}
	b, ok := tree.Lookup(fn.Branches[1], "e")
	if !ok || b.Kind != scope.BindParam {
		t.Errorf("catch parameter not found: %+v", b)
	}
	if _, ok := tree.Lookup(fn.Branches[1], "a"); ok {
		t.Errorf("try variable must not be visible in catch")
	}
}

func TestSwitchCases(t *testing.T) {
	f := parse(t, "switch x\n    case 1\n        a = 1\n    case 2, 3\n        b = 2\n")
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)
	if len(root.Branches) != 2 {
		t.Fatalf("root branches = %d, want 2 (one per case)", len(root.Branches))
	}
	for i, id := range root.Branches {
		if k := f.nodes.Kind(tree.Get(id).Node); k != ast.SwitchCase {
			t.Errorf("branch %d kind = %s", i, k)
		}
	}
	if got := f.text(tree.Get(root.Branches[1]).Header); got != "case 2, 3" {
		t.Errorf("case header = %q", got)
	}
}

func TestDeclarations(t *testing.T) {
	src := "import std.io as io\n" +
		"class Point\n" +
		"    function len(Number k)\n" +
		"        for x in xs\n" +
		"            total = total + x * k\n" +
		"        return total\n" +
		"a = b = 1\n" +
		"p.x = 2\n" +
		"q[0] = 3\n"
	f := parse(t, src)
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)

	if len(root.Imports) != 1 || len(root.Classes) != 1 {
		t.Fatalf("imports = %d, classes = %d", len(root.Imports), len(root.Classes))
	}
	if got := varNames(tree, root); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("root variables = %v, want [a b]", got)
	}
	class := tree.Get(root.Classes[0])
	if class.Kind != scope.KindClass || len(class.Functions) != 1 {
		t.Fatalf("class scope = %+v", class)
	}
	fnID := class.Functions[0]
	fn := tree.Get(fnID)
	if fn.Kind != scope.KindFunction || len(fn.Branches) != 1 {
		t.Fatalf("function scope = %+v", fn)
	}
	loop := fn.Branches[0]
	if tree.Depth(loop) != 3 {
		t.Errorf("loop depth = %d, want 3", tree.Depth(loop))
	}

	tests := []struct {
		name string
		kind scope.BindingKind
		at   scope.ID
	}{
		{"total", scope.BindVariable, loop},
		{"x", scope.BindParam, loop},
		{"k", scope.BindParam, fnID},
		{"len", scope.BindFunction, root.Classes[0]},
		{"Point", scope.BindClass, tree.Root},
		{"io", scope.BindImport, tree.Root},
	}
	for _, tt := range tests {
		b, ok := tree.Lookup(loop, tt.name)
		if !ok {
			t.Errorf("%s: not found", tt.name)
			continue
		}
		if b.Kind != tt.kind || b.Scope != tt.at {
			t.Errorf("%s: got %s in %d, want %s in %d", tt.name, b.Kind, b.Scope, tt.kind, tt.at)
		}
	}
	if _, ok := tree.Lookup(loop, "missing"); ok {
		t.Errorf("missing name resolved")
	}
}

func TestInnermost(t *testing.T) {
	src := "if c\n    a = 1\nelse\n    b = 2\n"
	f := parse(t, src)
	tree := scope.Resolve(f.nodes, f.prog)
	root := tree.Get(tree.Root)

	pos := func(sub string) source.Span {
		for i := 0; i+len(sub) <= len(f.file.Content); i++ {
			if string(f.file.Content[i:i+len(sub)]) == sub {
				return source.Span{File: f.file.ID, Start: uint32(i), End: uint32(i + len(sub))}
			}
		}
		t.Fatalf("%q not in source", sub)
		return source.Span{}
	}
	if got := tree.Innermost(pos("a = 1")); got != root.Branches[0] {
		t.Errorf("a = 1 resolved to scope %d", got)
	}
	if got := tree.Innermost(pos("b = 2")); got != root.Branches[1] {
		t.Errorf("b = 2 resolved to scope %d", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	f := parse(t, "class A\n    function f(x)\n        if x\n            y = 1\n        else\n            y = 2\n")
	first := scope.Resolve(f.nodes, f.prog)
	second := scope.Resolve(f.nodes, f.prog)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two resolutions of the same AST differ")
	}
}

func TestElseWithoutIfPanics(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{Start: 0, End: 4}
	elseID := b.Nodes.NewElse(sp, ast.ElseStmtData{Header: sp})
	prog := b.Nodes.NewProgram(sp, []ast.NodeID{elseID})

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic with error, got %v", r)
		}
		var ce *scope.ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ContractError, got %T", err)
		}
		if ce.Node != elseID {
			t.Errorf("node = %d, want %d", ce.Node, elseID)
		}
	}()
	scope.Resolve(b.Nodes, prog)
}
