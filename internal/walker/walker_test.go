package walker_test

import (
	"slices"
	"testing"

	"syntek/internal/ast"
	"syntek/internal/lexer"
	"syntek/internal/parser"
	"syntek/internal/source"
	"syntek/internal/walker"
)

func parse(t *testing.T, src string) (*ast.Nodes, ast.NodeID) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.stk", []byte(src)))
	b := ast.NewBuilder(ast.Hints{})
	res := parser.Parse(lexer.Tokenize(file, lexer.Options{}), b, parser.Options{})
	if err := res.Err(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return b.Nodes, res.Program
}

// ids программы `10 + 2 * 5`: Program, ExpressionStmt, внешний и внутренний BinaryExpr.
func expectedOrder(t *testing.T, nodes *ast.Nodes, prog ast.NodeID) []ast.NodeID {
	t.Helper()
	p, _ := nodes.Program(prog)
	stmt := p.Body[0]
	es, _ := nodes.ExprStmt(stmt)
	outer, _ := nodes.Binary(es.Expr)
	return []ast.NodeID{prog, stmt, es.Expr, outer.Right}
}

func TestWalkerEnter(t *testing.T) {
	nodes, prog := parse(t, "10 + 2 * 5\n")
	var got []ast.NodeID
	depth := 0
	cb := func(id ast.NodeID, parents []ast.NodeID) {
		got = append(got, id)
		if len(parents) != depth {
			t.Errorf("node %d: parents = %d, want %d", id, len(parents), depth)
		}
		depth++
	}
	walker.New(nodes, prog).
		OnEnter(ast.Program, cb).
		OnEnter(ast.ExpressionStmt, cb).
		OnEnter(ast.BinaryExpr, cb).
		Walk()

	want := expectedOrder(t, nodes, prog)
	if !slices.Equal(got, want) {
		t.Fatalf("enter order = %v, want %v", got, want)
	}
}

func TestWalkerLeave(t *testing.T) {
	nodes, prog := parse(t, "10 + 2 * 5\n")
	var got []ast.NodeID
	depth := 3
	cb := func(id ast.NodeID, parents []ast.NodeID) {
		got = append(got, id)
		if len(parents) != depth {
			t.Errorf("node %d: parents = %d, want %d", id, len(parents), depth)
		}
		depth--
	}
	walker.New(nodes, prog).
		OnLeave(ast.Program, cb).
		OnLeave(ast.ExpressionStmt, cb).
		OnLeave(ast.BinaryExpr, cb).
		Walk()

	want := expectedOrder(t, nodes, prog)
	slices.Reverse(want)
	if !slices.Equal(got, want) {
		t.Fatalf("leave order = %v, want %v", got, want)
	}
	if depth != -1 {
		t.Errorf("depth = %d after walk", depth)
	}
}

func TestWalkerEnterAndLeave(t *testing.T) {
	nodes, prog := parse(t, "10 + 2 * 5\n")
	type event struct {
		id    ast.NodeID
		enter bool
	}
	var got []event
	depth := 0
	enter := func(id ast.NodeID, parents []ast.NodeID) {
		got = append(got, event{id, true})
		if len(parents) != depth {
			t.Errorf("enter %d: parents = %d, want %d", id, len(parents), depth)
		}
		depth++
	}
	leave := func(id ast.NodeID, parents []ast.NodeID) {
		got = append(got, event{id, false})
		depth--
		if len(parents) != depth {
			t.Errorf("leave %d: parents = %d, want %d", id, len(parents), depth)
		}
	}
	w := walker.New(nodes, prog)
	for _, k := range []ast.NodeKind{ast.Program, ast.ExpressionStmt, ast.BinaryExpr} {
		w.OnEnter(k, enter).OnLeave(k, leave)
	}
	w.Walk()

	order := expectedOrder(t, nodes, prog)
	want := []event{
		{order[0], true}, {order[1], true}, {order[2], true}, {order[3], true},
		{order[3], false}, {order[2], false}, {order[1], false}, {order[0], false},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestWalkerParentsChain(t *testing.T) {
	nodes, prog := parse(t, "if a\n    x = b + 1\n")
	var chain []ast.NodeID
	walker.New(nodes, prog).OnEnter(ast.BinaryExpr, func(_ ast.NodeID, parents []ast.NodeID) {
		chain = slices.Clone(parents)
	}).Walk()

	kinds := make([]ast.NodeKind, len(chain))
	for i, id := range chain {
		kinds[i] = nodes.Kind(id)
	}
	want := []ast.NodeKind{ast.Program, ast.IfStmt, ast.VariableDecl}
	if !slices.Equal(kinds, want) {
		t.Fatalf("parents = %v, want %v", kinds, want)
	}
}

func TestWalkerMultipleCallbacks(t *testing.T) {
	nodes, prog := parse(t, "a = 1\nb = 2\n")
	var log []string
	walker.New(nodes, prog).
		OnEnter(ast.VariableDecl, func(ast.NodeID, []ast.NodeID) { log = append(log, "first") }).
		OnEnter(ast.VariableDecl, func(ast.NodeID, []ast.NodeID) { log = append(log, "second") }).
		Walk()
	want := []string{"first", "second", "first", "second"}
	if !slices.Equal(log, want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
}
