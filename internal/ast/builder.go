package ast

import (
	"syntek/internal/source"
)

type Hints struct{ Nodes uint }

// Builder is the parser-facing handle on the node storage of one file.
type Builder struct {
	Nodes *Nodes
}

func NewBuilder(hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 9
	}
	return &Builder{Nodes: NewNodes(hints.Nodes)}
}

// ===== Declarations =====

func (n *Nodes) NewVariableDecl(span source.Span, d VariableDeclData) NodeID {
	return alloc(n, VariableDecl, span, n.Vars, d)
}

func (n *Nodes) VariableDecl(id NodeID) (*VariableDeclData, bool) {
	return payload(n, id, VariableDecl, n.Vars)
}

func (n *Nodes) NewFunctionDecl(span source.Span, d FunctionDeclData) NodeID {
	return alloc(n, FunctionDecl, span, n.Funcs, d)
}

func (n *Nodes) FunctionDecl(id NodeID) (*FunctionDeclData, bool) {
	return payload(n, id, FunctionDecl, n.Funcs)
}

func (n *Nodes) NewClassDecl(span source.Span, d ClassDeclData) NodeID {
	return alloc(n, ClassDecl, span, n.Classes, d)
}

func (n *Nodes) ClassDecl(id NodeID) (*ClassDeclData, bool) {
	return payload(n, id, ClassDecl, n.Classes)
}

func (n *Nodes) NewImportDecl(span source.Span, d ImportDeclData) NodeID {
	return alloc(n, ImportDecl, span, n.Imports, d)
}

func (n *Nodes) ImportDecl(id NodeID) (*ImportDeclData, bool) {
	return payload(n, id, ImportDecl, n.Imports)
}

// ===== Expressions =====

func (n *Nodes) NewWrapped(span source.Span, inner NodeID) NodeID {
	return alloc(n, WrappedExpr, span, n.Wrapped, WrappedExprData{Inner: inner})
}

func (n *Nodes) WrappedExpr(id NodeID) (*WrappedExprData, bool) {
	return payload(n, id, WrappedExpr, n.Wrapped)
}

func (n *Nodes) NewUnary(span source.Span, op UnaryOp, opSpan source.Span, operand NodeID) NodeID {
	return alloc(n, UnaryExpr, span, n.Unaries, UnaryExprData{Op: op, OpSpan: opSpan, Operand: operand})
}

func (n *Nodes) Unary(id NodeID) (*UnaryExprData, bool) {
	return payload(n, id, UnaryExpr, n.Unaries)
}

func (n *Nodes) NewBinary(span source.Span, op BinaryOp, opSpan source.Span, left, right NodeID) NodeID {
	return alloc(n, BinaryExpr, span, n.Binaries, BinaryExprData{Op: op, OpSpan: opSpan, Left: left, Right: right})
}

func (n *Nodes) Binary(id NodeID) (*BinaryExprData, bool) {
	return payload(n, id, BinaryExpr, n.Binaries)
}

func (n *Nodes) NewCall(span source.Span, callee NodeID, args []NodeID) NodeID {
	return alloc(n, CallExpr, span, n.Calls, CallExprData{Callee: callee, Args: args})
}

func (n *Nodes) Call(id NodeID) (*CallExprData, bool) {
	return payload(n, id, CallExpr, n.Calls)
}

func (n *Nodes) NewIndex(span source.Span, object, index NodeID) NodeID {
	return alloc(n, IndexExpr, span, n.Indices, IndexExprData{Object: object, Index: index})
}

func (n *Nodes) Index(id NodeID) (*IndexExprData, bool) {
	return payload(n, id, IndexExpr, n.Indices)
}

func (n *Nodes) NewMember(span source.Span, object NodeID, prop string, propSpan source.Span) NodeID {
	return alloc(n, MemberExpr, span, n.Members, MemberExprData{Object: object, Property: prop, PropertySpan: propSpan})
}

func (n *Nodes) Member(id NodeID) (*MemberExprData, bool) {
	return payload(n, id, MemberExpr, n.Members)
}

func (n *Nodes) NewNewExpr(span source.Span, class NodeID, args []NodeID) NodeID {
	return alloc(n, NewExpr, span, n.News, NewExprData{Class: class, Args: args})
}

func (n *Nodes) NewExpr(id NodeID) (*NewExprData, bool) {
	return payload(n, id, NewExpr, n.News)
}

func (n *Nodes) NewInstanceof(span source.Span, left, right NodeID) NodeID {
	return alloc(n, InstanceofExpr, span, n.Instanceofs, InstanceofExprData{Left: left, Right: right})
}

func (n *Nodes) Instanceof(id NodeID) (*InstanceofExprData, bool) {
	return payload(n, id, InstanceofExpr, n.Instanceofs)
}

func (n *Nodes) NewAsync(span source.Span, operand NodeID) NodeID {
	return alloc(n, AsyncExpr, span, n.Asyncs, AsyncExprData{Operand: operand})
}

func (n *Nodes) Async(id NodeID) (*AsyncExprData, bool) {
	return payload(n, id, AsyncExpr, n.Asyncs)
}

func (n *Nodes) NewArray(span source.Span, elems []NodeID) NodeID {
	return alloc(n, ArrayExpr, span, n.Arrays, ArrayExprData{Elements: elems})
}

func (n *Nodes) Array(id NodeID) (*ArrayExprData, bool) {
	return payload(n, id, ArrayExpr, n.Arrays)
}

func (n *Nodes) NewObject(span source.Span, entries []ObjectEntry) NodeID {
	return alloc(n, ObjectExpr, span, n.Objects, ObjectExprData{Entries: entries})
}

func (n *Nodes) Object(id NodeID) (*ObjectExprData, bool) {
	return payload(n, id, ObjectExpr, n.Objects)
}

func (n *Nodes) NewAssignment(span source.Span, target, value NodeID) NodeID {
	return alloc(n, AssignmentExpr, span, n.Assigns, AssignmentExprData{Target: target, Value: value})
}

func (n *Nodes) Assignment(id NodeID) (*AssignmentExprData, bool) {
	return payload(n, id, AssignmentExpr, n.Assigns)
}

func (n *Nodes) NewIdent(span source.Span, name string) NodeID {
	return alloc(n, Identifier, span, n.Idents, IdentifierData{Name: name})
}

func (n *Nodes) Ident(id NodeID) (*IdentifierData, bool) {
	return payload(n, id, Identifier, n.Idents)
}

func (n *Nodes) NewLiteral(span source.Span, kind LitKind, raw string) NodeID {
	return alloc(n, Literal, span, n.Literals, LiteralData{Kind: kind, Raw: raw})
}

func (n *Nodes) Literal(id NodeID) (*LiteralData, bool) {
	return payload(n, id, Literal, n.Literals)
}

// NewLeaf creates a payload-free node: Super, This, BreakStmt, ContinueStmt, FallthroughStmt.
func (n *Nodes) NewLeaf(kind NodeKind, span source.Span) NodeID {
	return n.new(kind, span, 0)
}

// ===== Statements =====

func (n *Nodes) NewIf(span source.Span, d IfStmtData) NodeID {
	return alloc(n, IfStmt, span, n.Ifs, d)
}

func (n *Nodes) If(id NodeID) (*IfStmtData, bool) {
	return payload(n, id, IfStmt, n.Ifs)
}

func (n *Nodes) NewElse(span source.Span, d ElseStmtData) NodeID {
	return alloc(n, ElseStmt, span, n.Elses, d)
}

func (n *Nodes) Else(id NodeID) (*ElseStmtData, bool) {
	return payload(n, id, ElseStmt, n.Elses)
}

func (n *Nodes) NewSwitch(span source.Span, d SwitchStmtData) NodeID {
	return alloc(n, SwitchStmt, span, n.Switches, d)
}

func (n *Nodes) Switch(id NodeID) (*SwitchStmtData, bool) {
	return payload(n, id, SwitchStmt, n.Switches)
}

func (n *Nodes) NewCase(span source.Span, d SwitchCaseData) NodeID {
	return alloc(n, SwitchCase, span, n.Cases, d)
}

func (n *Nodes) Case(id NodeID) (*SwitchCaseData, bool) {
	return payload(n, id, SwitchCase, n.Cases)
}

func (n *Nodes) NewFor(span source.Span, d ForStmtData) NodeID {
	return alloc(n, ForStmt, span, n.Fors, d)
}

func (n *Nodes) For(id NodeID) (*ForStmtData, bool) {
	return payload(n, id, ForStmt, n.Fors)
}

func (n *Nodes) NewRepeat(span source.Span, d RepeatStmtData) NodeID {
	return alloc(n, RepeatStmt, span, n.Repeats, d)
}

func (n *Nodes) Repeat(id NodeID) (*RepeatStmtData, bool) {
	return payload(n, id, RepeatStmt, n.Repeats)
}

func (n *Nodes) NewWhile(span source.Span, d WhileStmtData) NodeID {
	return alloc(n, WhileStmt, span, n.Whiles, d)
}

func (n *Nodes) While(id NodeID) (*WhileStmtData, bool) {
	return payload(n, id, WhileStmt, n.Whiles)
}

func (n *Nodes) NewTry(span source.Span, d TryStmtData) NodeID {
	return alloc(n, TryStmt, span, n.Tries, d)
}

func (n *Nodes) Try(id NodeID) (*TryStmtData, bool) {
	return payload(n, id, TryStmt, n.Tries)
}

func (n *Nodes) NewCatch(span source.Span, d CatchStmtData) NodeID {
	return alloc(n, CatchStmt, span, n.Catches, d)
}

func (n *Nodes) Catch(id NodeID) (*CatchStmtData, bool) {
	return payload(n, id, CatchStmt, n.Catches)
}

func (n *Nodes) NewThrow(span source.Span, value NodeID) NodeID {
	return alloc(n, ThrowStmt, span, n.Throws, ThrowStmtData{Value: value})
}

func (n *Nodes) Throw(id NodeID) (*ThrowStmtData, bool) {
	return payload(n, id, ThrowStmt, n.Throws)
}

func (n *Nodes) NewReturn(span source.Span, value NodeID) NodeID {
	return alloc(n, ReturnStmt, span, n.Returns, ReturnStmtData{Value: value})
}

func (n *Nodes) Return(id NodeID) (*ReturnStmtData, bool) {
	return payload(n, id, ReturnStmt, n.Returns)
}

func (n *Nodes) NewExprStmt(span source.Span, expr NodeID) NodeID {
	return alloc(n, ExpressionStmt, span, n.ExprStmts, ExpressionStmtData{Expr: expr})
}

func (n *Nodes) ExprStmt(id NodeID) (*ExpressionStmtData, bool) {
	return payload(n, id, ExpressionStmt, n.ExprStmts)
}

func (n *Nodes) NewProgram(span source.Span, body []NodeID) NodeID {
	return alloc(n, Program, span, n.Programs, ProgramData{Body: body})
}

func (n *Nodes) Program(id NodeID) (*ProgramData, bool) {
	return payload(n, id, Program, n.Programs)
}
