package ast

import (
	"syntek/internal/source"
)

// Node is the uniform header of every syntax node.
type Node struct {
	Kind    NodeKind
	Span    source.Span
	Payload PayloadID
}

// Nodes owns the node arena and one payload arena per kind with data.
// Nodes are append-only: once allocated a node and its payload are not changed.
type Nodes struct {
	Arena *Arena[Node]

	Vars        *Arena[VariableDeclData]
	Funcs       *Arena[FunctionDeclData]
	Classes     *Arena[ClassDeclData]
	Imports     *Arena[ImportDeclData]
	Wrapped     *Arena[WrappedExprData]
	Unaries     *Arena[UnaryExprData]
	Binaries    *Arena[BinaryExprData]
	Calls       *Arena[CallExprData]
	Indices     *Arena[IndexExprData]
	Members     *Arena[MemberExprData]
	News        *Arena[NewExprData]
	Instanceofs *Arena[InstanceofExprData]
	Asyncs      *Arena[AsyncExprData]
	Arrays      *Arena[ArrayExprData]
	Objects     *Arena[ObjectExprData]
	Assigns     *Arena[AssignmentExprData]
	Idents      *Arena[IdentifierData]
	Literals    *Arena[LiteralData]
	Ifs         *Arena[IfStmtData]
	Elses       *Arena[ElseStmtData]
	Switches    *Arena[SwitchStmtData]
	Cases       *Arena[SwitchCaseData]
	Fors        *Arena[ForStmtData]
	Repeats     *Arena[RepeatStmtData]
	Whiles      *Arena[WhileStmtData]
	Tries       *Arena[TryStmtData]
	Catches     *Arena[CatchStmtData]
	Throws      *Arena[ThrowStmtData]
	Returns     *Arena[ReturnStmtData]
	ExprStmts   *Arena[ExpressionStmtData]
	Programs    *Arena[ProgramData]
}

// NewNodes creates node storage; capHint sizes the node arena and the hot
// expression arenas, the rest start small.
func NewNodes(capHint uint) *Nodes {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint / 8
	return &Nodes{
		Arena:       NewArena[Node](capHint),
		Vars:        NewArena[VariableDeclData](small),
		Funcs:       NewArena[FunctionDeclData](small),
		Classes:     NewArena[ClassDeclData](small),
		Imports:     NewArena[ImportDeclData](small),
		Wrapped:     NewArena[WrappedExprData](small),
		Unaries:     NewArena[UnaryExprData](small),
		Binaries:    NewArena[BinaryExprData](capHint / 2),
		Calls:       NewArena[CallExprData](small),
		Indices:     NewArena[IndexExprData](small),
		Members:     NewArena[MemberExprData](small),
		News:        NewArena[NewExprData](small),
		Instanceofs: NewArena[InstanceofExprData](small),
		Asyncs:      NewArena[AsyncExprData](small),
		Arrays:      NewArena[ArrayExprData](small),
		Objects:     NewArena[ObjectExprData](small),
		Assigns:     NewArena[AssignmentExprData](small),
		Idents:      NewArena[IdentifierData](capHint / 2),
		Literals:    NewArena[LiteralData](capHint / 2),
		Ifs:         NewArena[IfStmtData](small),
		Elses:       NewArena[ElseStmtData](small),
		Switches:    NewArena[SwitchStmtData](small),
		Cases:       NewArena[SwitchCaseData](small),
		Fors:        NewArena[ForStmtData](small),
		Repeats:     NewArena[RepeatStmtData](small),
		Whiles:      NewArena[WhileStmtData](small),
		Tries:       NewArena[TryStmtData](small),
		Catches:     NewArena[CatchStmtData](small),
		Throws:      NewArena[ThrowStmtData](small),
		Returns:     NewArena[ReturnStmtData](small),
		ExprStmts:   NewArena[ExpressionStmtData](small),
		Programs:    NewArena[ProgramData](1),
	}
}

func (n *Nodes) new(kind NodeKind, span source.Span, payload uint32) NodeID {
	return NodeID(n.Arena.Allocate(Node{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// alloc stores data in arena and creates the node that points to it.
func alloc[T any](n *Nodes, kind NodeKind, span source.Span, arena *Arena[T], data T) NodeID {
	return n.new(kind, span, arena.Allocate(data))
}

// payload fetches the typed payload of id if the node has the expected kind.
func payload[T any](n *Nodes, id NodeID, kind NodeKind, arena *Arena[T]) (*T, bool) {
	node := n.Get(id)
	if node == nil || node.Kind != kind {
		return nil, false
	}
	return arena.Get(uint32(node.Payload)), true
}

// Get returns the node with the given ID or nil.
func (n *Nodes) Get(id NodeID) *Node {
	return n.Arena.Get(uint32(id))
}

// Kind returns the kind of id, KindInvalid for unknown ids.
func (n *Nodes) Kind(id NodeID) NodeKind {
	if node := n.Get(id); node != nil {
		return node.Kind
	}
	return KindInvalid
}

// Span returns the full source span of id.
func (n *Nodes) Span(id NodeID) source.Span {
	if node := n.Get(id); node != nil {
		return node.Span
	}
	return source.Span{}
}

// Len reports how many nodes were allocated.
func (n *Nodes) Len() uint32 { return n.Arena.Len() }
