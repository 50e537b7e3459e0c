// Package scope builds the lexical scope tree of a parsed program.
//
// Scopes live in an arena owned by Tree and refer to each other by ID.
// Parent links are non-owning; the children of a scope are the IDs listed
// in its Functions, Classes and Branches.
package scope

import (
	"syntek/internal/ast"
	"syntek/internal/source"
)

// ID addresses a scope in a Tree. NoID means "no scope".
type ID uint32

const NoID ID = 0

func (id ID) IsValid() bool { return id != NoID }

// Kind enumerates scope categories.
type Kind uint8

const (
	KindInvalid  Kind = iota
	KindFile          // корень, один на программу
	KindClass         // тело класса
	KindFunction      // тело функции, включая параметры
	KindBlock         // ветка управления: if, else, for, case, ...
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope is a lexical region. All collections keep AST visitation order.
type Scope struct {
	Kind   Kind
	Node   ast.NodeID  // узел, открывший область
	Parent ID          // NoID только у корня
	Header source.Span // заголовок блока (`if cond`), для файла - вся программа

	Imports []ast.NodeID // ImportDecl
	// Variables holds VariableDecl nodes and AssignmentExpr nodes whose target
	// is a plain Identifier. Member (`a.x = 1`) and index (`a[i] = 1`)
	// assignments declare nothing and are not listed.
	Variables []ast.NodeID
	Functions []ID
	Classes   []ID
	Branches  []ID
}

// Children returns nested scopes: functions, then classes, then branches.
func (s *Scope) Children() []ID {
	out := make([]ID, 0, len(s.Functions)+len(s.Classes)+len(s.Branches))
	out = append(out, s.Functions...)
	out = append(out, s.Classes...)
	return append(out, s.Branches...)
}
