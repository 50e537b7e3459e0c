package token_test

import (
	"strings"
	"testing"

	"syntek/internal/source"
	"syntek/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		kind                             token.Kind
		literal, keyword, op, structural bool
	}{
		{token.NumberLit, true, false, false, false},
		{token.StringLit, true, false, false, false},
		{token.BoolLit, true, false, false, false},
		{token.NilLit, true, false, false, false},
		{token.Ident, false, false, false, false},
		{token.KwFunction, false, true, false, false},
		{token.KwNot, false, true, false, false},
		{token.KwIsGreaterThan, false, true, false, false},
		{token.Plus, false, false, true, false},
		{token.Colon, false, false, true, false},
		{token.Newline, false, false, false, true},
		{token.Indent, false, false, false, true},
		{token.Outdent, false, false, false, true},
		{token.EOF, false, false, false, true},
		{token.Invalid, false, false, false, false},
	}
	for _, tt := range tests {
		tk := tok(tt.kind)
		if tk.IsLiteral() != tt.literal {
			t.Errorf("%v.IsLiteral() = %v", tt.kind, !tt.literal)
		}
		if tk.IsKeyword() != tt.keyword {
			t.Errorf("%v.IsKeyword() = %v", tt.kind, !tt.keyword)
		}
		if tk.IsPunctOrOp() != tt.op {
			t.Errorf("%v.IsPunctOrOp() = %v", tt.kind, !tt.op)
		}
		if tk.IsStructural() != tt.structural {
			t.Errorf("%v.IsStructural() = %v", tt.kind, !tt.structural)
		}
	}
	if !tok(token.Ident).IsIdent() || tok(token.KwIs).IsIdent() {
		t.Error("IsIdent misclassifies")
	}
}

func TestKindStringCoversAll(t *testing.T) {
	seen := map[string]token.Kind{}
	for k := token.Invalid; k.Valid(); k++ {
		s := k.String()
		if s == "" || strings.HasPrefix(s, "Kind(") {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[s]; dup {
			t.Fatalf("kinds %d and %d share name %q", prev, k, s)
		}
		seen[s] = k
	}
	if token.Kind(250).String() != "Kind(?)" {
		t.Error("unknown kind must stringify as Kind(?)")
	}
}

func TestTokenString(t *testing.T) {
	tk := token.Token{Kind: token.Ident, Text: "foo"}
	if tk.String() != "Ident(foo)" {
		t.Errorf("String = %q", tk.String())
	}
	if tok(token.Indent).String() != "Indent" {
		t.Errorf("structural String = %q", tok(token.Indent).String())
	}
}
