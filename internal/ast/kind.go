package ast

// NodeKind is the closed set of syntax node variants.
type NodeKind uint8

const (
	KindInvalid NodeKind = iota

	// Declarations
	VariableDecl
	FunctionDecl
	ClassDecl
	ImportDecl

	// Expressions
	WrappedExpr
	UnaryExpr
	BinaryExpr
	CallExpr
	IndexExpr
	MemberExpr
	NewExpr
	InstanceofExpr
	AsyncExpr
	ArrayExpr
	ObjectExpr
	AssignmentExpr
	Identifier
	Literal
	Super
	This

	// Statements
	IfStmt
	ElseStmt
	SwitchStmt
	ForStmt
	RepeatStmt
	WhileStmt
	TryStmt
	CatchStmt
	ThrowStmt
	ReturnStmt
	ExpressionStmt
	BreakStmt
	ContinueStmt
	FallthroughStmt

	// Other
	Program
	SwitchCase

	kindCount
)

// KindCount is the number of node kinds including KindInvalid.
const KindCount = int(kindCount)

var kindNames = [...]string{
	KindInvalid:     "Invalid",
	VariableDecl:    "VariableDecl",
	FunctionDecl:    "FunctionDecl",
	ClassDecl:       "ClassDecl",
	ImportDecl:      "ImportDecl",
	WrappedExpr:     "WrappedExpr",
	UnaryExpr:       "UnaryExpr",
	BinaryExpr:      "BinaryExpr",
	CallExpr:        "CallExpr",
	IndexExpr:       "IndexExpr",
	MemberExpr:      "MemberExpr",
	NewExpr:         "NewExpr",
	InstanceofExpr:  "InstanceofExpr",
	AsyncExpr:       "AsyncExpr",
	ArrayExpr:       "ArrayExpr",
	ObjectExpr:      "ObjectExpr",
	AssignmentExpr:  "AssignmentExpr",
	Identifier:      "Identifier",
	Literal:         "Literal",
	Super:           "Super",
	This:            "This",
	IfStmt:          "IfStmt",
	ElseStmt:        "ElseStmt",
	SwitchStmt:      "SwitchStmt",
	ForStmt:         "ForStmt",
	RepeatStmt:      "RepeatStmt",
	WhileStmt:       "WhileStmt",
	TryStmt:         "TryStmt",
	CatchStmt:       "CatchStmt",
	ThrowStmt:       "ThrowStmt",
	ReturnStmt:      "ReturnStmt",
	ExpressionStmt:  "ExpressionStmt",
	BreakStmt:       "BreakStmt",
	ContinueStmt:    "ContinueStmt",
	FallthroughStmt: "FallthroughStmt",
	Program:         "Program",
	SwitchCase:      "SwitchCase",
}

func (k NodeKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

func (k NodeKind) IsDecl() bool { return k >= VariableDecl && k <= ImportDecl }
func (k NodeKind) IsExpr() bool { return k >= WrappedExpr && k <= This }
func (k NodeKind) IsStmt() bool { return k >= IfStmt && k <= FallthroughStmt }

// OpensBlock reports whether nodes of this kind own an indented body.
func (k NodeKind) OpensBlock() bool {
	switch k {
	case FunctionDecl, ClassDecl, IfStmt, ElseStmt, ForStmt, RepeatStmt,
		WhileStmt, TryStmt, CatchStmt, SwitchCase:
		return true
	}
	return false
}
