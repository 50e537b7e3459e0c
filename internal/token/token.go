package token

import (
	"syntek/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a number, string, boolean or null literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a keyword or comparison phrase.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }

// IsStructural reports whether the token is a synthesized layout token.
func (t Token) IsStructural() bool { return t.Kind.IsStructural() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (k Kind) IsLiteral() bool {
	return k >= NumberLit && k <= NilLit
}

func (k Kind) IsKeyword() bool {
	return k >= KwFunction && k <= KwIsGreaterThan
}

func (k Kind) IsPunctOrOp() bool {
	return k >= Plus && k <= Colon
}

func (k Kind) IsStructural() bool {
	switch k {
	case Newline, Indent, Outdent, EOF:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Text + ")"
}
