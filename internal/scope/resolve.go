package scope

import (
	"syntek/internal/ast"
	"syntek/internal/walker"
)

// resolver holds the traversal state of one Resolve call.
type resolver struct {
	tree    *Tree
	nodes   *ast.Nodes
	current ID
	// saved хранит области if/try на время обхода их else/catch
	saved []ID
}

// Resolve walks the program once and returns its scope tree.
//
// else and catch arms are recorded as branches of the scope enclosing their
// if/try, next to it, while still being visited as AST children.
// A malformed AST panics with *ContractError.
func Resolve(nodes *ast.Nodes, program ast.NodeID) *Tree {
	tree := newTree(nodes, int(nodes.Len()/8))
	r := &resolver{tree: tree, nodes: nodes}
	tree.Root = tree.alloc(KindFile, program, NoID, nodes.Span(program))
	r.current = tree.Root

	w := walker.New(nodes, program)
	r.declarations(w)
	r.blocks(w)
	w.Walk()

	if r.current != tree.Root || len(r.saved) != 0 {
		panic(&ContractError{Node: program, Kind: ast.Program, Msg: "unbalanced scopes after walk"})
	}
	return tree
}

func (r *resolver) scope() *Scope { return r.tree.Get(r.current) }

func (r *resolver) leave(id ast.NodeID, _ []ast.NodeID) {
	s := r.scope()
	if s == nil || !s.Parent.IsValid() {
		panic(&ContractError{Node: id, Kind: r.nodes.Kind(id), Msg: "leaving the file scope"})
	}
	r.current = s.Parent
}

// open создаёт область как ребёнка текущей и делает её текущей.
func (r *resolver) open(kind Kind, id ast.NodeID, list func(*Scope) *[]ID) {
	sid := r.tree.alloc(kind, id, r.current, r.nodes.HeaderSpan(id))
	l := list(r.scope())
	*l = append(*l, sid)
	r.current = sid
}

func functionsOf(s *Scope) *[]ID { return &s.Functions }
func classesOf(s *Scope) *[]ID   { return &s.Classes }
func branchesOf(s *Scope) *[]ID  { return &s.Branches }

func (r *resolver) declarations(w *walker.Walker) {
	w.OnEnter(ast.ImportDecl, func(id ast.NodeID, _ []ast.NodeID) {
		s := r.scope()
		s.Imports = append(s.Imports, id)
	}).
		OnEnter(ast.ClassDecl, func(id ast.NodeID, _ []ast.NodeID) {
			r.open(KindClass, id, classesOf)
		}).
		OnLeave(ast.ClassDecl, r.leave).
		OnEnter(ast.VariableDecl, func(id ast.NodeID, _ []ast.NodeID) {
			s := r.scope()
			s.Variables = append(s.Variables, id)
		}).
		OnEnter(ast.AssignmentExpr, func(id ast.NodeID, _ []ast.NodeID) {
			// a.x = 1 и a[i] = 1 ничего не объявляют
			if a, ok := r.nodes.Assignment(id); ok && r.nodes.Kind(a.Target) == ast.Identifier {
				s := r.scope()
				s.Variables = append(s.Variables, id)
			}
		}).
		OnEnter(ast.FunctionDecl, func(id ast.NodeID, _ []ast.NodeID) {
			r.open(KindFunction, id, functionsOf)
		}).
		OnLeave(ast.FunctionDecl, r.leave)
}

func (r *resolver) blocks(w *walker.Walker) {
	enter := func(id ast.NodeID, _ []ast.NodeID) {
		r.open(KindBlock, id, branchesOf)
	}
	// switch сам области не создаёт, только его case
	for _, k := range []ast.NodeKind{
		ast.IfStmt, ast.ForStmt, ast.RepeatStmt, ast.WhileStmt, ast.TryStmt, ast.SwitchCase,
	} {
		w.OnEnter(k, enter).OnLeave(k, r.leave)
	}
	for _, k := range []ast.NodeKind{ast.ElseStmt, ast.CatchStmt} {
		w.OnEnter(k, r.enterSibling).OnLeave(k, r.leaveSibling)
	}
}

// enterSibling открывает else/catch как ветку родителя текущей области
// (текущая - область самого if/try) и запоминает текущую.
func (r *resolver) enterSibling(id ast.NodeID, _ []ast.NodeID) {
	cur := r.scope()
	if cur == nil || !cur.Parent.IsValid() {
		panic(&ContractError{Node: id, Kind: r.nodes.Kind(id), Msg: "else/catch outside of an if/try scope"})
	}
	parent := cur.Parent
	sid := r.tree.alloc(KindBlock, id, parent, r.nodes.Span(id))
	ps := r.tree.Get(parent)
	ps.Branches = append(ps.Branches, sid)

	r.saved = append(r.saved, r.current)
	r.current = sid
}

func (r *resolver) leaveSibling(id ast.NodeID, _ []ast.NodeID) {
	if len(r.saved) == 0 {
		panic(&ContractError{Node: id, Kind: r.nodes.Kind(id), Msg: "scope stack underflow"})
	}
	r.current = r.saved[len(r.saved)-1]
	r.saved = r.saved[:len(r.saved)-1]
}
