package lexer

import (
	"testing"

	"syntek/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.stk", []byte(content)))
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))
	for i, want := range []byte("a\nb") {
		if c.EOF() {
			t.Fatalf("unexpected EOF at %d", i)
		}
		if got := c.Bump(); got != want {
			t.Fatalf("Bump %d = %q, want %q", i, got, want)
		}
	}
	if !c.EOF() || c.Peek() != 0 || c.Bump() != 0 {
		t.Fatal("cursor must be exhausted")
	}
}

func TestCursorMarkResetEat(t *testing.T) {
	c := NewCursor(createFile("abc"))
	m := c.Mark()
	if c.PeekAt(2) != 'c' || c.PeekAt(3) != 0 {
		t.Fatal("PeekAt out of range handling")
	}
	if !c.Eat('a') || c.Eat('z') {
		t.Fatal("Eat mismatch")
	}
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if c.Peek() != 'a' || !c.Here().Empty() {
		t.Fatal("Reset did not rewind")
	}
}

func TestOptionsTabWidth(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, DefaultTabWidth},
		{-3, DefaultTabWidth},
		{2, 2},
		{8, 8},
		{maxTabWidth, maxTabWidth},
		{1 << 30, maxTabWidth},
	}
	for _, tt := range tests {
		if got := (Options{TabWidth: tt.in}).tabWidth(); got != tt.want {
			t.Errorf("tabWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
