package ast

import (
	"syntek/internal/source"
)

// Children returns the direct child nodes of id in source order.
// Absent optional children (bare return, if without else) are skipped.
// The result is freshly allocated and may be modified by the caller.
func (n *Nodes) Children(id NodeID) []NodeID {
	node := n.Get(id)
	if node == nil {
		return nil
	}
	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.IsValid() {
				out = append(out, c)
			}
		}
	}
	p := uint32(node.Payload)

	switch node.Kind {
	case VariableDecl:
		add(n.Vars.Get(p).Value)
	case FunctionDecl:
		add(n.Funcs.Get(p).Body...)
	case ClassDecl:
		add(n.Classes.Get(p).Body...)
	case WrappedExpr:
		add(n.Wrapped.Get(p).Inner)
	case UnaryExpr:
		add(n.Unaries.Get(p).Operand)
	case BinaryExpr:
		d := n.Binaries.Get(p)
		add(d.Left, d.Right)
	case CallExpr:
		d := n.Calls.Get(p)
		add(d.Callee)
		add(d.Args...)
	case IndexExpr:
		d := n.Indices.Get(p)
		add(d.Object, d.Index)
	case MemberExpr:
		add(n.Members.Get(p).Object)
	case NewExpr:
		d := n.News.Get(p)
		add(d.Class)
		add(d.Args...)
	case InstanceofExpr:
		d := n.Instanceofs.Get(p)
		add(d.Left, d.Right)
	case AsyncExpr:
		add(n.Asyncs.Get(p).Operand)
	case ArrayExpr:
		add(n.Arrays.Get(p).Elements...)
	case ObjectExpr:
		for _, e := range n.Objects.Get(p).Entries {
			add(e.Value)
		}
	case AssignmentExpr:
		d := n.Assigns.Get(p)
		add(d.Target, d.Value)
	case IfStmt:
		d := n.Ifs.Get(p)
		add(d.Cond)
		add(d.Body...)
		add(d.Else)
	case ElseStmt:
		add(n.Elses.Get(p).Body...)
	case SwitchStmt:
		d := n.Switches.Get(p)
		add(d.Subject)
		add(d.Cases...)
	case SwitchCase:
		d := n.Cases.Get(p)
		add(d.Conditions...)
		add(d.Body...)
	case ForStmt:
		d := n.Fors.Get(p)
		add(d.Iterable)
		add(d.Body...)
	case RepeatStmt:
		d := n.Repeats.Get(p)
		add(d.Count)
		add(d.Body...)
	case WhileStmt:
		d := n.Whiles.Get(p)
		add(d.Cond)
		add(d.Body...)
	case TryStmt:
		d := n.Tries.Get(p)
		add(d.Body...)
		add(d.Catch)
	case CatchStmt:
		add(n.Catches.Get(p).Body...)
	case ThrowStmt:
		add(n.Throws.Get(p).Value)
	case ReturnStmt:
		add(n.Returns.Get(p).Value)
	case ExpressionStmt:
		add(n.ExprStmts.Get(p).Expr)
	case Program:
		add(n.Programs.Get(p).Body...)
	}
	return out
}

// HeaderSpan returns the introductory part of a block construct: `if cond`,
// `for Number x in xs`, `case 1, 2`, `else`, `catch e`, `function f(a, b)`.
// For other nodes it returns the full span.
func (n *Nodes) HeaderSpan(id NodeID) source.Span {
	node := n.Get(id)
	if node == nil {
		return source.Span{}
	}
	p := uint32(node.Payload)
	switch node.Kind {
	case FunctionDecl:
		return n.Funcs.Get(p).Header
	case ClassDecl:
		return n.Classes.Get(p).Header
	case IfStmt:
		return n.Ifs.Get(p).Header
	case ElseStmt:
		return n.Elses.Get(p).Header
	case SwitchStmt:
		return n.Switches.Get(p).Header
	case SwitchCase:
		return n.Cases.Get(p).Header
	case ForStmt:
		return n.Fors.Get(p).Header
	case RepeatStmt:
		return n.Repeats.Get(p).Header
	case WhileStmt:
		return n.Whiles.Get(p).Header
	case TryStmt:
		return n.Tries.Get(p).Header
	case CatchStmt:
		return n.Catches.Get(p).Header
	}
	return node.Span
}

// Body returns the statement list of block-owning nodes, nil otherwise.
func (n *Nodes) Body(id NodeID) []NodeID {
	node := n.Get(id)
	if node == nil {
		return nil
	}
	p := uint32(node.Payload)
	switch node.Kind {
	case Program:
		return n.Programs.Get(p).Body
	case FunctionDecl:
		return n.Funcs.Get(p).Body
	case ClassDecl:
		return n.Classes.Get(p).Body
	case IfStmt:
		return n.Ifs.Get(p).Body
	case ElseStmt:
		return n.Elses.Get(p).Body
	case SwitchCase:
		return n.Cases.Get(p).Body
	case ForStmt:
		return n.Fors.Get(p).Body
	case RepeatStmt:
		return n.Repeats.Get(p).Body
	case WhileStmt:
		return n.Whiles.Get(p).Body
	case TryStmt:
		return n.Tries.Get(p).Body
	case CatchStmt:
		return n.Catches.Get(p).Body
	}
	return nil
}
