package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cross-file Cover must keep receiver, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	tests := []struct {
		in   Span
		want bool
	}{
		{Span{0, 0, 10}, true},
		{Span{0, 3, 5}, true},
		{Span{0, 10, 10}, true},
		{Span{0, 5, 11}, false},
		{Span{1, 3, 5}, false},
	}
	for _, tt := range tests {
		if got := outer.Contains(tt.in); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSpanHelpers(t *testing.T) {
	s := Span{File: 3, Start: 5, End: 9}
	if s.Len() != 4 || s.Empty() {
		t.Errorf("Len/Empty wrong for %v", s)
	}
	if !s.ZeroAtEnd().Empty() || s.ZeroAtEnd().Start != 9 {
		t.Errorf("ZeroAtEnd = %v", s.ZeroAtEnd())
	}
	if s.ZeroAtStart().End != 5 {
		t.Errorf("ZeroAtStart = %v", s.ZeroAtStart())
	}
	if s.String() != "3:5-9" {
		t.Errorf("String = %q", s.String())
	}
}
