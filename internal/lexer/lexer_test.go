package lexer_test

import (
	"testing"

	"syntek/internal/diag"
	"syntek/internal/lexer"
	"syntek/internal/source"
	"syntek/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func makeTestLexer(input string, tabWidth int) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.stk", []byte(input)))
	reporter := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: reporter, TabWidth: tabWidth}), reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	lx, _ := makeTestLexer(input, 0)
	toks := collectAllTokens(lx)
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("input %q:\n got  %v\n want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("input %q: token %d is %v, want %v\n got  %v", input, i, got[i], want[i], got)
		}
	}
	return toks
}

func TestSimpleLine(t *testing.T) {
	toks := expectKinds(t, "ab = 12",
		token.Ident, token.Assign, token.NumberLit, token.Newline, token.EOF)

	spans := []source.Span{{Start: 0, End: 2}, {Start: 3, End: 4}, {Start: 5, End: 7}, {Start: 7, End: 7}}
	for i, sp := range spans {
		if toks[i].Span.Start != sp.Start || toks[i].Span.End != sp.End {
			t.Errorf("token %d span = %v, want %d-%d", i, toks[i].Span, sp.Start, sp.End)
		}
	}
	if toks[0].Text != "ab" || toks[2].Text != "12" {
		t.Errorf("lexemes: %q %q", toks[0].Text, toks[2].Text)
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, in := range []string{"", "   \n\n", "# only comment", "# c\n   # d\n"} {
		expectKinds(t, in, token.EOF)
	}
}

func TestIndentOutdent(t *testing.T) {
	expectKinds(t, "if a\n    b = 1\nc\n",
		token.KwIf, token.Ident, token.Newline,
		token.Indent, token.Ident, token.Assign, token.NumberLit, token.Newline,
		token.Outdent, token.Ident, token.Newline,
		token.EOF)
}

func TestUnwindAtEOF(t *testing.T) {
	expectKinds(t, "class A\n  function f()\n    x = 1\n",
		token.KwClass, token.Ident, token.Newline,
		token.Indent, token.KwFunction, token.Ident, token.LParen, token.RParen, token.Newline,
		token.Indent, token.Ident, token.Assign, token.NumberLit, token.Newline,
		token.Outdent, token.Outdent, token.EOF)
}

func TestBlankAndCommentLinesIgnored(t *testing.T) {
	expectKinds(t, "a\n\n   # comment\n  \nb # trailing\n",
		token.Ident, token.Newline, token.Ident, token.Newline, token.EOF)
}

func TestBracketsSuppressIndentation(t *testing.T) {
	expectKinds(t, "f(a,\n    b)\nc",
		token.Ident, token.LParen, token.Ident, token.Comma, token.Newline,
		token.Ident, token.RParen, token.Newline,
		token.Ident, token.Newline, token.EOF)
}

func TestTabWidth(t *testing.T) {
	lx, _ := makeTestLexer("if a\n\tb\n    c\n", 4)
	got := kindsOf(collectAllTokens(lx))
	want := []token.Kind{
		token.KwIf, token.Ident, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Ident, token.Newline,
		token.Outdent, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// при ширине 8 таб глубже четырёх пробелов: "c" закрывает уровень и не совпадает с 0
	lx, rep := makeTestLexer("if a\n\tb\n    c\n", 8)
	toks := collectAllTokens(lx)
	if toks[6].Kind != token.Outdent || toks[7].Kind != token.Invalid {
		t.Fatalf("tab width 8: %v", kindsOf(toks))
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexBadDedent {
		t.Fatalf("diagnostics: %v", rep.codes())
	}
}

func TestBadDedent(t *testing.T) {
	lx, rep := makeTestLexer("if a\n    b\n  c\n", 0)
	toks := collectAllTokens(lx)
	want := []token.Kind{
		token.KwIf, token.Ident, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Outdent, token.Invalid, token.Ident, token.Newline,
		token.EOF,
	}
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != diag.LexBadDedent {
		t.Fatalf("diagnostics: %v", rep.codes())
	}
	if rep.diagnostics[0].Message != "unindent does not match any outer indentation level" {
		t.Errorf("message = %q", rep.diagnostics[0].Message)
	}
}

func TestMultiWordKeywords(t *testing.T) {
	toks := expectKinds(t, "a is less than b", token.Ident, token.KwIsLessThan, token.Ident, token.Newline, token.EOF)
	if toks[1].Text != "is less than" || toks[1].Span.Start != 2 || toks[1].Span.End != 14 {
		t.Errorf("phrase token = %+v", toks[1])
	}
	toks = expectKinds(t, "a is  greater\tthan b", token.Ident, token.KwIsGreaterThan, token.Ident, token.Newline, token.EOF)
	if toks[1].Text != "is  greater\tthan" {
		t.Errorf("raw phrase text = %q", toks[1].Text)
	}
	expectKinds(t, "a is not b", token.Ident, token.KwIsNot, token.Ident, token.Newline, token.EOF)
	expectKinds(t, "a is b", token.Ident, token.KwIs, token.Ident, token.Newline, token.EOF)
	expectKinds(t, "a is lesser b", token.Ident, token.KwIs, token.Ident, token.Ident, token.Newline, token.EOF)
	expectKinds(t, "a is less b", token.Ident, token.KwIs, token.Ident, token.Ident, token.Newline, token.EOF)
	expectKinds(t, "a is nothing", token.Ident, token.KwIs, token.Ident, token.Newline, token.EOF)
	expectKinds(t, "isnot", token.Ident, token.Newline, token.EOF)
}

func TestKeywordsAndIdents(t *testing.T) {
	expectKinds(t, "function static elseif else times fallthrough instanceof async this super new extends",
		token.KwFunction, token.KwStatic, token.KwElseIf, token.KwElse, token.KwTimes,
		token.KwFallthrough, token.KwInstanceof, token.KwAsync, token.KwThis, token.KwSuper,
		token.KwNew, token.KwExtends, token.Newline, token.EOF)
	expectKinds(t, "Function _x названиe x1",
		token.Ident, token.Ident, token.Ident, token.Ident, token.Newline, token.EOF)
}

func TestLiterals(t *testing.T) {
	toks := expectKinds(t, `12 1.5 1e3 0x1F 0b101 0o17 1_000 .5 "s\"q" 'x' true false null`,
		token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit,
		token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit,
		token.StringLit, token.StringLit, token.BoolLit, token.BoolLit, token.NilLit,
		token.Newline, token.EOF)
	if toks[8].Text != `"s\"q"` {
		t.Errorf("string lexeme = %q", toks[8].Text)
	}
	if toks[3].Text != "0x1F" {
		t.Errorf("hex lexeme = %q", toks[3].Text)
	}
}

func TestMemberAccessOnNumberIsNotFraction(t *testing.T) {
	expectKinds(t, "1.size", token.NumberLit, token.Dot, token.Ident, token.Newline, token.EOF)
}

func TestOperators(t *testing.T) {
	expectKinds(t, "== != <= >= < > = + - * / % ^ ( ) [ ] { } . , :",
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.Lt, token.Gt, token.Assign,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret,
		token.LParen, token.RParen, token.LBracket, token.RBracket, token.LBrace, token.RBrace,
		token.Dot, token.Comma, token.Colon, token.Newline, token.EOF)
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"a $ b", diag.LexUnknownChar},
		{"a ! b", diag.LexUnknownChar},
		{"x → y", diag.LexUnknownChar},
		{"'abc", diag.LexUnterminatedString},
		{"\"abc\nd\"", diag.LexUnterminatedString},
		{"0x", diag.LexBadNumber},
		{"12abc", diag.LexBadNumber},
		{"1e+", diag.LexBadNumber},
	}
	for _, tt := range tests {
		lx, rep := makeTestLexer(tt.input, 0)
		toks := collectAllTokens(lx)
		if toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("%q: stream must end with EOF", tt.input)
		}
		found := false
		for _, tok := range toks {
			if tok.Kind == token.Invalid {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: no Invalid token in %v", tt.input, kindsOf(toks))
		}
		if len(rep.diagnostics) == 0 || rep.diagnostics[0].Code != tt.code {
			t.Errorf("%q: diagnostics %v, want %v", tt.input, rep.codes(), tt.code)
		}
	}
}

func TestBadEscapeIsWarning(t *testing.T) {
	lx, rep := makeTestLexer(`"a\qb"`, 0)
	toks := collectAllTokens(lx)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("kind = %v", toks[0].Kind)
	}
	if len(rep.diagnostics) != 1 || rep.diagnostics[0].Severity != diag.SevWarning {
		t.Fatalf("diagnostics: %+v", rep.diagnostics)
	}
}

func TestPeekAndStickyEOF(t *testing.T) {
	lx, _ := makeTestLexer("a", 0)
	if p := lx.Peek(); p.Kind != token.Ident {
		t.Fatalf("Peek = %v", p)
	}
	if n := lx.Next(); n.Kind != token.Ident {
		t.Fatalf("Next after Peek = %v", n)
	}
	lx.Next() // Newline
	for range 3 {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("after EOF got %v", k)
		}
	}
}

func TestIndentationBalance(t *testing.T) {
	inputs := []string{
		"a\n",
		"if a\n  b\n",
		"class C\n  function f(x)\n    if x\n      return 1\n    else\n      return 2\n  y = 3\nz",
		"try\n    a()\ncatch e\n    b()\n",
		"switch x\n  case 1, 2\n    y = 1\n\n  case 3\n    # nothing\n    y = 2\n",
	}
	for _, in := range inputs {
		lx, rep := makeTestLexer(in, 0)
		toks := collectAllTokens(lx)
		indents, outdents := 0, 0
		for _, tok := range toks {
			switch tok.Kind {
			case token.Indent:
				indents++
			case token.Outdent:
				outdents++
			}
		}
		if indents != outdents {
			t.Errorf("%q: %d indents vs %d outdents", in, indents, outdents)
		}
		if len(rep.diagnostics) != 0 {
			t.Errorf("%q: unexpected diagnostics %v", in, rep.codes())
		}
		if lx.Depth() != 1 {
			t.Errorf("%q: indentation stack not unwound (depth %d)", in, lx.Depth())
		}
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.stk", []byte("x = [1,\n2]")))
	toks := lexer.Tokenize(file, lexer.Options{})
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatal("Tokenize must end with EOF")
	}
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind == token.EOF {
			t.Fatal("EOF must appear exactly once")
		}
		if tok.Span.Start > tok.Span.End {
			t.Fatalf("bad span %v", tok.Span)
		}
	}
}
