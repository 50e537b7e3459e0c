// Package token defines lexical token kinds for the Syntek front end.
// Invariants:
//   - Token.Text is the raw lexeme exactly as it appears in the source.
//   - Token.Span covers Text exactly (Start..End, half-open).
//   - Structural tokens (Newline, Indent, Outdent, EOF) have empty Text;
//     Indent/Outdent/EOF carry zero-width spans.
//   - Multi-word comparison phrases ("is less than") are single tokens whose
//     span runs from the first word to the last.
package token
