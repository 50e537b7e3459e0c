package token_test

import (
	"testing"

	"syntek/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := map[string]token.Kind{
		"function":    token.KwFunction,
		"elseif":      token.KwElseIf,
		"fallthrough": token.KwFallthrough,
		"instanceof":  token.KwInstanceof,
		"is":          token.KwIs,
		"true":        token.BoolLit,
		"false":       token.BoolLit,
		"null":        token.NilLit,
	}
	for word, want := range tests {
		got, ok := token.LookupKeyword(word)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v,%v; want %v,true", word, got, ok, want)
		}
	}
	for _, word := range []string{"Function", "IF", "foo", "less", "than", "nil"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("%q must not be a keyword", word)
		}
	}
}

func TestMultiWordKeywordsLongestFirst(t *testing.T) {
	phrases := token.MultiWordKeywords()
	if len(phrases) != 3 {
		t.Fatalf("want 3 phrases, got %d", len(phrases))
	}
	for i := 1; i < len(phrases); i++ {
		if len(phrases[i].Words) > len(phrases[i-1].Words) {
			t.Fatalf("phrase %d is longer than phrase %d", i, i-1)
		}
	}
	if !token.StartsPhrase("is") || token.StartsPhrase("less") {
		t.Error("StartsPhrase misclassifies")
	}
}
