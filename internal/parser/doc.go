// Package parser builds the Syntek AST from a token stream.
//
// Statements are parsed by recursive descent; blocks are delimited by the
// lexer's Newline/Indent/Outdent tokens. Expressions use precedence climbing
// (see op_table.go). Declarations are recognized by bounded lookahead before
// any token is consumed: `x = v`, `Type x = v`, `Type[][] x = v`.
//
// A failed consume raises a *SyntaxError. In ModeAbort the first error stops
// the parse; in ModeCollect the parser skips to the next statement boundary
// and continues until Options.MaxErrors is reached.
package parser
