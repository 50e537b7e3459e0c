package ast

import (
	"syntek/internal/source"
)

// TypeRef is an explicit type annotation: `Number`, `Number[][]`.
// A zero TypeRef (empty Name) means the declaration is untyped.
type TypeRef struct {
	Name       string
	Span       source.Span // имя типа вместе со скобками
	ArrayDepth int
}

func (t TypeRef) IsZero() bool { return t.Name == "" }

func (t TypeRef) String() string {
	if t.IsZero() {
		return ""
	}
	s := t.Name
	for range t.ArrayDepth {
		s += "[]"
	}
	return s
}

// Name is an identifier that is not an expression node (class parents, import path segments).
type Name struct {
	Text string
	Span source.Span
}

// ===== Declarations =====

// VariableDeclData covers `x = v`, `Number x = v` and `Number[] x = v`.
type VariableDeclData struct {
	Name     string
	NameSpan source.Span
	Type     TypeRef
	Value    NodeID
}

type Param struct {
	Name     string
	NameSpan source.Span
	Type     TypeRef
}

type FunctionDeclData struct {
	Name     string
	NameSpan source.Span
	Params   []Param
	Static   bool
	Body     []NodeID
	Header   source.Span
}

type ClassDeclData struct {
	Name     string
	NameSpan source.Span
	Extends  []Name
	Body     []NodeID
	Header   source.Span
}

// ImportDeclData is `import a.b.c [as x]`.
type ImportDeclData struct {
	Path  []Name
	Alias Name
}

// PathString joins the import path with dots.
func (d *ImportDeclData) PathString() string {
	s := ""
	for i, seg := range d.Path {
		if i > 0 {
			s += "."
		}
		s += seg.Text
	}
	return s
}

// LocalName is the name the import binds: the alias or the last path segment.
func (d *ImportDeclData) LocalName() string {
	if d.Alias.Text != "" {
		return d.Alias.Text
	}
	if len(d.Path) == 0 {
		return ""
	}
	return d.Path[len(d.Path)-1].Text
}

// ===== Expressions =====

type WrappedExprData struct {
	Inner NodeID
}

type UnaryExprData struct {
	Op      UnaryOp
	OpSpan  source.Span
	Operand NodeID
}

type BinaryExprData struct {
	Op     BinaryOp
	OpSpan source.Span
	Left   NodeID
	Right  NodeID
}

type CallExprData struct {
	Callee NodeID
	Args   []NodeID
}

type IndexExprData struct {
	Object NodeID
	Index  NodeID
}

type MemberExprData struct {
	Object       NodeID
	Property     string
	PropertySpan source.Span
}

type NewExprData struct {
	Class NodeID
	Args  []NodeID
}

type InstanceofExprData struct {
	Left  NodeID
	Right NodeID
}

type AsyncExprData struct {
	Operand NodeID
}

type ArrayExprData struct {
	Elements []NodeID
}

type ObjectEntry struct {
	Key     string
	KeySpan source.Span
	Value   NodeID
}

type ObjectExprData struct {
	Entries []ObjectEntry
}

// AssignmentExprData is an assignment to a member or index target.
// Plain `name = value` at statement level is a VariableDecl.
type AssignmentExprData struct {
	Target NodeID
	Value  NodeID
}

type IdentifierData struct {
	Name string
}

type LiteralData struct {
	Kind LitKind
	Raw  string
}

// ===== Statements =====

// IfStmtData: Else is an ElseStmt node or NoNodeID.
type IfStmtData struct {
	Cond   NodeID
	Body   []NodeID
	Else   NodeID
	Header source.Span
}

// ElseStmtData: for `else if` / `elseif` the body is a single IfStmt.
type ElseStmtData struct {
	Body   []NodeID
	Header source.Span
}

type SwitchStmtData struct {
	Subject NodeID
	Cases   []NodeID
	Header  source.Span
}

type SwitchCaseData struct {
	Conditions []NodeID
	Body       []NodeID
	Header     source.Span
}

type ForStmtData struct {
	Var      string
	VarSpan  source.Span
	VarType  TypeRef
	Iterable NodeID
	Body     []NodeID
	Header   source.Span
}

type RepeatStmtData struct {
	Count  NodeID
	Body   []NodeID
	Header source.Span
}

type WhileStmtData struct {
	Cond   NodeID
	Body   []NodeID
	Header source.Span
}

type TryStmtData struct {
	Body   []NodeID
	Catch  NodeID
	Header source.Span
}

type CatchStmtData struct {
	Param     string
	ParamSpan source.Span
	ParamType TypeRef
	Body      []NodeID
	Header    source.Span
}

type ThrowStmtData struct {
	Value NodeID
}

// ReturnStmtData: Value is NoNodeID for a bare `return`.
type ReturnStmtData struct {
	Value NodeID
}

type ExpressionStmtData struct {
	Expr NodeID
}

type ProgramData struct {
	Body []NodeID
}
