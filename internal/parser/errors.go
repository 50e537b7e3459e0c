package parser

import (
	"fmt"

	"syntek/internal/diag"
	"syntek/internal/token"
)

// SyntaxError is raised when the expected token is absent.
type SyntaxError struct {
	Token   token.Token // offending token, EOF at end of input
	Message string
	Code    diag.Code
}

func (e *SyntaxError) Error() string {
	got := e.Token.Kind.String()
	if e.Token.Text != "" {
		got = fmt.Sprintf("%q", e.Token.Text)
	}
	return fmt.Sprintf("%s: %s, got %s", e.Token.Span, e.Message, got)
}

// bailout unwinds the recursive descent after an error was recorded.
type bailout struct{}
