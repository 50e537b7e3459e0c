package ast

import (
	"testing"

	"syntek/internal/source"
)

func sp(a, b uint32) source.Span { return source.Span{Start: a, End: b} }

func TestArenaOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 || a.Len() != 1 {
		t.Fatalf("Allocate returned %d", id)
	}
}

func TestAccessorChecksKind(t *testing.T) {
	n := NewNodes(0)
	id := n.NewIdent(sp(0, 1), "x")
	if d, ok := n.Ident(id); !ok || d.Name != "x" {
		t.Fatalf("Ident(%d) = %v,%v", id, d, ok)
	}
	if _, ok := n.Binary(id); ok {
		t.Fatal("Binary accessor must reject an identifier")
	}
	if _, ok := n.Ident(NoNodeID); ok {
		t.Fatal("NoNodeID must not resolve")
	}
	if n.Kind(999) != KindInvalid {
		t.Fatal("unknown id must have KindInvalid")
	}
}

func TestChildrenOrder(t *testing.T) {
	n := NewNodes(0)
	cond := n.NewIdent(sp(3, 4), "c")
	a := n.NewVariableDecl(sp(9, 14), VariableDeclData{Name: "a", Value: n.NewLiteral(sp(13, 14), LitNumber, "1")})
	b := n.NewVariableDecl(sp(25, 30), VariableDeclData{Name: "b", Value: n.NewLiteral(sp(29, 30), LitNumber, "2")})
	els := n.NewElse(sp(15, 30), ElseStmtData{Body: []NodeID{b}, Header: sp(15, 19)})
	ifs := n.NewIf(sp(0, 30), IfStmtData{Cond: cond, Body: []NodeID{a}, Else: els, Header: sp(0, 4)})

	got := n.Children(ifs)
	want := []NodeID{cond, a, els}
	if len(got) != len(want) {
		t.Fatalf("Children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Children = %v, want %v", got, want)
		}
	}
	if n.HeaderSpan(ifs) != sp(0, 4) || n.HeaderSpan(els) != sp(15, 19) {
		t.Error("HeaderSpan mismatch")
	}
	if n.HeaderSpan(cond) != sp(3, 4) {
		t.Error("HeaderSpan of non-block must be the node span")
	}
	if len(n.Body(ifs)) != 1 || n.Body(cond) != nil {
		t.Error("Body mismatch")
	}

	ret := n.NewReturn(sp(0, 6), NoNodeID)
	if len(n.Children(ret)) != 0 {
		t.Error("bare return has no children")
	}
	call := n.NewCall(sp(0, 8), n.NewIdent(sp(0, 1), "f"), []NodeID{n.NewIdent(sp(2, 3), "x"), n.NewIdent(sp(5, 6), "y")})
	if len(n.Children(call)) != 3 {
		t.Errorf("call children = %v", n.Children(call))
	}
}

func TestLiteralValue(t *testing.T) {
	n := NewNodes(0)
	tests := []struct {
		kind LitKind
		raw  string
		want any
	}{
		{LitNumber, "42", 42.0},
		{LitNumber, "1_000", 1000.0},
		{LitNumber, "1.5", 1.5},
		{LitNumber, ".5", 0.5},
		{LitNumber, "1e3", 1000.0},
		{LitNumber, "012", 12.0},
		{LitNumber, "0x1F", 31.0},
		{LitNumber, "0b101", 5.0},
		{LitNumber, "0o17", 15.0},
		{LitString, `"hi"`, "hi"},
		{LitString, `'it\'s'`, "it's"},
		{LitString, `"a\tb\n"`, "a\tb\n"},
		{LitString, `"\x41z"`, "Az"},
		{LitString, `"\q"`, "q"},
		{LitBool, "true", true},
		{LitBool, "false", false},
		{LitNil, "null", nil},
	}
	for _, tt := range tests {
		id := n.NewLiteral(sp(0, 1), tt.kind, tt.raw)
		got, err := n.LiteralValue(id)
		if err != nil {
			t.Errorf("%s: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LiteralValue(%s) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}

	if _, err := n.LiteralValue(n.NewIdent(sp(0, 1), "x")); err == nil {
		t.Error("LiteralValue of identifier must fail")
	}
	if _, err := n.LiteralValue(n.NewLiteral(sp(0, 1), LitNumber, "0x")); err == nil {
		t.Error("malformed number must fail")
	}
}

func TestKindGroups(t *testing.T) {
	for k := NodeKind(1); int(k) < KindCount; k++ {
		groups := 0
		for _, in := range []bool{k.IsDecl(), k.IsExpr(), k.IsStmt()} {
			if in {
				groups++
			}
		}
		if k == Program || k == SwitchCase {
			if groups != 0 {
				t.Errorf("%v must not be decl/expr/stmt", k)
			}
			continue
		}
		if groups != 1 {
			t.Errorf("%v belongs to %d groups", k, groups)
		}
		if k.String() == "" || k.String() == "NodeKind(?)" {
			t.Errorf("kind %d unnamed", k)
		}
	}
	if !IfStmt.OpensBlock() || BinaryExpr.OpensBlock() || SwitchStmt.OpensBlock() {
		t.Error("OpensBlock misclassifies")
	}
}

func TestTypeRefAndImportNames(t *testing.T) {
	if (TypeRef{Name: "Number", ArrayDepth: 2}).String() != "Number[][]" {
		t.Error("TypeRef.String")
	}
	if !(TypeRef{}).IsZero() {
		t.Error("zero TypeRef")
	}
	d := ImportDeclData{Path: []Name{{Text: "std"}, {Text: "io"}}}
	if d.PathString() != "std.io" || d.LocalName() != "io" {
		t.Errorf("import names: %q %q", d.PathString(), d.LocalName())
	}
	d.Alias = Name{Text: "sio"}
	if d.LocalName() != "sio" {
		t.Error("alias must win")
	}
}

func TestWrappedExprAccessor(t *testing.T) {
	n := NewNodes(0)
	inner := n.NewIdent(sp(1, 2), "x")
	w := n.NewWrapped(sp(0, 3), inner)
	d, ok := n.WrappedExpr(w)
	if !ok || d.Inner != inner {
		t.Fatalf("WrappedExpr(%d) = %v,%v", w, d, ok)
	}
	if n.Wrapped.Len() != 1 {
		t.Errorf("wrapped arena holds %d payloads, want 1", n.Wrapped.Len())
	}
	if _, ok := n.WrappedExpr(inner); ok {
		t.Error("WrappedExpr must reject an identifier")
	}
}
