package scope

import (
	"fmt"

	"fortio.org/safecast"

	"syntek/internal/ast"
	"syntek/internal/source"
)

// Tree owns all scopes of one program. It is immutable once Resolve returns.
type Tree struct {
	Nodes  *ast.Nodes
	Root   ID
	scopes []Scope // index 0 reserved for NoID
}

func newTree(nodes *ast.Nodes, capHint int) *Tree {
	if capHint < 8 {
		capHint = 8
	}
	return &Tree{
		Nodes:  nodes,
		scopes: make([]Scope, 1, capHint+1),
	}
}

func (t *Tree) alloc(kind Kind, node ast.NodeID, parent ID, header source.Span) ID {
	value, err := safecast.Conv[uint32](len(t.scopes))
	if err != nil {
		panic(fmt.Errorf("scope arena overflow: %w", err))
	}
	t.scopes = append(t.scopes, Scope{
		Kind:   kind,
		Node:   node,
		Parent: parent,
		Header: header,
	})
	return ID(value)
}

// Get returns the scope or nil if id is unknown.
func (t *Tree) Get(id ID) *Scope {
	if !id.IsValid() || int(id) >= len(t.scopes) {
		return nil
	}
	return &t.scopes[id]
}

// Len reports the number of scopes, root included.
func (t *Tree) Len() int { return len(t.scopes) - 1 }

// Depth returns the number of parent links from id to the root.
func (t *Tree) Depth(id ID) int {
	d := 0
	for s := t.Get(id); s != nil && s.Parent.IsValid(); s = t.Get(s.Parent) {
		d++
	}
	return d
}

// Region returns the source range governed by a scope. For `if` and `try`
// it stops at the end of their own body: the else/catch arm is a sibling.
func (t *Tree) Region(id ID) source.Span {
	s := t.Get(id)
	if s == nil {
		return source.Span{}
	}
	switch t.Nodes.Kind(s.Node) {
	case ast.IfStmt, ast.TryStmt:
		sp := s.Header
		if body := t.Nodes.Body(s.Node); len(body) > 0 {
			sp = sp.Cover(t.Nodes.Span(body[len(body)-1]))
		}
		return sp
	}
	return t.Nodes.Span(s.Node)
}

// Innermost returns the deepest scope whose region contains sp, starting
// from the root. Spans outside the program yield NoID.
func (t *Tree) Innermost(sp source.Span) ID {
	if !t.Region(t.Root).Contains(sp) {
		return NoID
	}
	cur := t.Root
	for {
		next := NoID
		for _, c := range t.Get(cur).Children() {
			if t.Region(c).Contains(sp) {
				next = c
				break
			}
		}
		if !next.IsValid() {
			return cur
		}
		cur = next
	}
}
