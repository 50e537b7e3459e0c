// Package walker provides a depth-first AST traversal with per-kind
// enter/leave callbacks and ancestor tracking.
package walker

import (
	"syntek/internal/ast"
)

// Callback receives the visited node and its ancestors from the root down,
// excluding the node itself. The parents slice is only valid for the
// duration of the call.
type Callback func(id ast.NodeID, parents []ast.NodeID)

// Walker dispatches callbacks by node kind. Multiple callbacks for the same
// kind and phase fire in registration order.
type Walker struct {
	nodes   *ast.Nodes
	root    ast.NodeID
	enter   [ast.KindCount][]Callback
	leave   [ast.KindCount][]Callback
	parents []ast.NodeID
}

func New(nodes *ast.Nodes, root ast.NodeID) *Walker {
	return &Walker{nodes: nodes, root: root}
}

func (w *Walker) OnEnter(kind ast.NodeKind, cb Callback) *Walker {
	if int(kind) < ast.KindCount && cb != nil {
		w.enter[kind] = append(w.enter[kind], cb)
	}
	return w
}

func (w *Walker) OnLeave(kind ast.NodeKind, cb Callback) *Walker {
	if int(kind) < ast.KindCount && cb != nil {
		w.leave[kind] = append(w.leave[kind], cb)
	}
	return w
}

// Walk traverses the tree from the root. It may be called more than once.
func (w *Walker) Walk() {
	w.parents = w.parents[:0]
	if w.root.IsValid() {
		w.visit(w.root)
	}
}

func (w *Walker) visit(id ast.NodeID) {
	kind := w.nodes.Kind(id)
	// clip: колбэк не должен дописать в наш стек
	parents := w.parents[:len(w.parents):len(w.parents)]
	for _, cb := range w.enter[kind] {
		cb(id, parents)
	}

	w.parents = append(w.parents, id)
	for _, child := range w.nodes.Children(id) {
		w.visit(child)
	}
	w.parents = w.parents[:len(w.parents)-1]

	parents = w.parents[:len(w.parents):len(w.parents)]
	for _, cb := range w.leave[kind] {
		cb(id, parents)
	}
}
