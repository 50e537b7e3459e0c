// Package testkit holds invariant checkers shared by package tests and
// fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"syntek/internal/ast"
	"syntek/internal/scope"
	"syntek/internal/source"
)

// CheckSpanInvariants walks the tree under program and verifies:
// 1) the program span points at sf and lies within its content
// 2) every node span belongs to sf and is ordered (Start <= End)
// 3) every child span is contained in its parent span
func CheckSpanInvariants(nodes *ast.Nodes, program ast.NodeID, sf *source.File) error {
	if nodes == nil || sf == nil {
		return fmt.Errorf("nil nodes or file")
	}
	if nodes.Kind(program) != ast.Program {
		return fmt.Errorf("root %d is %s, want Program", program, nodes.Kind(program))
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	root := nodes.Span(program)
	if root.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", root.File, sf.ID)
	}
	if root.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", root.End, lenContent)
	}

	var check func(id ast.NodeID) error
	check = func(id ast.NodeID) error {
		parent := nodes.Span(id)
		for _, c := range nodes.Children(id) {
			sp := nodes.Span(c)
			if sp.File != sf.ID {
				return fmt.Errorf("%s span file mismatch: got=%d want=%d", nodes.Kind(c), sp.File, sf.ID)
			}
			if sp.End < sp.Start {
				return fmt.Errorf("%s span is inverted: %v", nodes.Kind(c), sp)
			}
			if !parent.Contains(sp) {
				return fmt.Errorf("%s %v does not contain child %s %v", nodes.Kind(id), parent, nodes.Kind(c), sp)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	return check(program)
}

// CheckScopeTopology verifies the structural contract of a scope tree:
// 1) the root is the only file scope and has no parent
// 2) every scope is listed exactly once, in the collection of its parent
// 3) the opening node kind matches the scope kind
// 4) scope headers lie within the root header
// 5) recorded variables are declarations or identifier assignments
func CheckScopeTopology(tree *scope.Tree) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	root := tree.Get(tree.Root)
	if root == nil || root.Kind != scope.KindFile || root.Parent.IsValid() {
		return fmt.Errorf("root %d is not a parentless file scope", tree.Root)
	}

	seen := make([]int, tree.Len()+1)
	seen[tree.Root]++
	for i := 1; i <= tree.Len(); i++ {
		id := scope.ID(i) // #nosec G115 -- i ограничен tree.Len()
		s := tree.Get(id)
		for _, c := range s.Children() {
			child := tree.Get(c)
			if child == nil {
				return fmt.Errorf("scope %d lists unknown child %d", id, c)
			}
			if child.Parent != id {
				return fmt.Errorf("scope %d is listed under %d but its parent is %d", c, id, child.Parent)
			}
			seen[c]++
		}
		if err := checkOpener(tree, id, s); err != nil {
			return err
		}
		if !root.Header.Contains(s.Header) {
			return fmt.Errorf("scope %d header %v is outside the file %v", id, s.Header, root.Header)
		}
		for _, v := range s.Variables {
			switch tree.Nodes.Kind(v) {
			case ast.VariableDecl:
			case ast.AssignmentExpr:
				if tree.DeclName(v) == "" {
					return fmt.Errorf("scope %d records a non-identifier assignment %d", id, v)
				}
			default:
				return fmt.Errorf("scope %d records %s as a variable", id, tree.Nodes.Kind(v))
			}
		}
	}
	for i, n := range seen[1:] {
		if n != 1 {
			return fmt.Errorf("scope %d is referenced %d times", i+1, n)
		}
	}
	return nil
}

func checkOpener(tree *scope.Tree, id scope.ID, s *scope.Scope) error {
	kind := tree.Nodes.Kind(s.Node)
	ok := false
	switch s.Kind {
	case scope.KindFile:
		ok = kind == ast.Program && id == tree.Root
	case scope.KindClass:
		ok = kind == ast.ClassDecl
	case scope.KindFunction:
		ok = kind == ast.FunctionDecl
	case scope.KindBlock:
		switch kind {
		case ast.IfStmt, ast.ElseStmt, ast.ForStmt, ast.RepeatStmt, ast.WhileStmt,
			ast.TryStmt, ast.CatchStmt, ast.SwitchCase:
			ok = true
		}
	}
	if !ok {
		return fmt.Errorf("%s scope %d opened by %s", s.Kind, id, kind)
	}
	return nil
}
