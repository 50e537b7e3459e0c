package fuzztests

import (
	"testing"

	"syntek/internal/diag"
	"syntek/internal/lexer"
	"syntek/internal/source"
	"syntek/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.stk", clampInput(input)))

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Fatalf("token stream does not end with EOF")
		}

		depth := 0
		var prevEnd uint32
		for _, tok := range toks {
			if tok.Span.Start < prevEnd && !tok.IsStructural() {
				t.Fatalf("token %s at %v overlaps previous end %d", tok, tok.Span, prevEnd)
			}
			if !tok.IsStructural() {
				prevEnd = tok.Span.End
			}
			switch tok.Kind {
			case token.Indent:
				depth++
			case token.Outdent:
				depth--
				if depth < 0 {
					t.Fatalf("outdent without matching indent at %v", tok.Span)
				}
			}
		}
		if depth != 0 {
			t.Fatalf("unbalanced indentation: %d open blocks at EOF", depth)
		}
	})
}
