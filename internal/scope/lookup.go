package scope

import (
	"syntek/internal/ast"
)

// BindingKind classifies what a name resolved to.
type BindingKind uint8

const (
	BindNone BindingKind = iota
	BindVariable
	BindParam // параметр функции, переменная for, параметр catch
	BindFunction
	BindClass
	BindImport
)

func (k BindingKind) String() string {
	switch k {
	case BindVariable:
		return "variable"
	case BindParam:
		return "param"
	case BindFunction:
		return "function"
	case BindClass:
		return "class"
	case BindImport:
		return "import"
	default:
		return "none"
	}
}

// Binding is the result of a successful Lookup.
type Binding struct {
	Kind  BindingKind
	Scope ID         // область, где найдено имя
	Node  ast.NodeID // объявляющий узел
}

// Lookup resolves name starting at scope from and walking up through parent
// links. Inside one scope variables are checked first, then parameters,
// functions, classes and imports; the first match in insertion order wins.
func (t *Tree) Lookup(from ID, name string) (Binding, bool) {
	for id := from; t.Get(id) != nil; id = t.Get(id).Parent {
		if b, ok := t.lookupLocal(id, name); ok {
			return b, true
		}
	}
	return Binding{}, false
}

func (t *Tree) lookupLocal(id ID, name string) (Binding, bool) {
	s := t.Get(id)
	if s == nil {
		return Binding{}, false
	}
	for _, v := range s.Variables {
		if t.DeclName(v) == name {
			return Binding{Kind: BindVariable, Scope: id, Node: v}, true
		}
	}
	if t.hasParam(s, name) {
		return Binding{Kind: BindParam, Scope: id, Node: s.Node}, true
	}
	for _, f := range s.Functions {
		if n := t.Get(f).Node; t.DeclName(n) == name {
			return Binding{Kind: BindFunction, Scope: id, Node: n}, true
		}
	}
	for _, c := range s.Classes {
		if n := t.Get(c).Node; t.DeclName(n) == name {
			return Binding{Kind: BindClass, Scope: id, Node: n}, true
		}
	}
	for _, imp := range s.Imports {
		if t.DeclName(imp) == name {
			return Binding{Kind: BindImport, Scope: id, Node: imp}, true
		}
	}
	return Binding{}, false
}

func (t *Tree) hasParam(s *Scope, name string) bool {
	switch t.Nodes.Kind(s.Node) {
	case ast.FunctionDecl:
		fn, _ := t.Nodes.FunctionDecl(s.Node)
		for _, p := range fn.Params {
			if p.Name == name {
				return true
			}
		}
	case ast.ForStmt:
		f, _ := t.Nodes.For(s.Node)
		return f.Var == name
	case ast.CatchStmt:
		c, _ := t.Nodes.Catch(s.Node)
		return c.Param != "" && c.Param == name
	}
	return false
}

// DeclName returns the name a node introduces: a variable, an identifier
// assignment target, a function, a class or an import's local name.
// Other nodes yield "".
func (t *Tree) DeclName(id ast.NodeID) string {
	switch t.Nodes.Kind(id) {
	case ast.VariableDecl:
		v, _ := t.Nodes.VariableDecl(id)
		return v.Name
	case ast.AssignmentExpr:
		a, _ := t.Nodes.Assignment(id)
		if ident, ok := t.Nodes.Ident(a.Target); ok {
			return ident.Name
		}
	case ast.FunctionDecl:
		f, _ := t.Nodes.FunctionDecl(id)
		return f.Name
	case ast.ClassDecl:
		c, _ := t.Nodes.ClassDecl(id)
		return c.Name
	case ast.ImportDecl:
		imp, _ := t.Nodes.ImportDecl(id)
		return imp.LocalName()
	}
	return ""
}
