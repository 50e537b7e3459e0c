package diag

import (
	"testing"

	"syntek/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	b := NewBag(2)
	if !b.Add(New(SevWarning, LexBadEscape, source.Span{}, "w")) {
		t.Fatal("first Add rejected")
	}
	if b.HasErrors() || !b.HasWarnings() {
		t.Fatal("warning-only bag misreports severities")
	}
	b.Add(NewError(SynUnexpectedToken, source.Span{Start: 1, End: 2}, "e"))
	if b.Add(NewError(SynUnexpectedToken, source.Span{}, "over")) {
		t.Fatal("Add beyond limit must return false")
	}
	if b.Len() != 2 || b.Dropped() != 1 || !b.HasErrors() {
		t.Fatalf("len=%d dropped=%d", b.Len(), b.Dropped())
	}
	if b.Cap() != 2 {
		t.Errorf("Cap = %d", b.Cap())
	}

	unlimited := NewBag(0)
	for range 100 {
		unlimited.Add(NewError(LexUnknownChar, source.Span{}, "x"))
	}
	if unlimited.Len() != 100 {
		t.Errorf("unlimited bag len = %d", unlimited.Len())
	}
}

func TestBagAddDropped(t *testing.T) {
	b := NewBag(1)
	b.Add(NewError(LexUnknownChar, source.Span{}, "x"))
	b.Add(NewError(LexUnknownChar, source.Span{}, "y"))
	b.AddDropped(3)
	b.AddDropped(-5)
	if b.Dropped() != 4 {
		t.Errorf("Dropped = %d, want 4", b.Dropped())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(0)
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 1, Start: 5, End: 6}, "a"))
	b.Add(New(SevWarning, LexBadEscape, source.Span{File: 0, Start: 9, End: 10}, "b"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "c"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "c again"))
	b.Sort()

	items := b.Items()
	if items[0].Code != LexUnknownChar || items[2].Code != LexBadEscape || items[3].Primary.File != 1 {
		t.Fatalf("unexpected order: %+v", items)
	}
	b.Dedup()
	if b.Len() != 3 {
		t.Fatalf("Dedup left %d items, want 3", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexBadDedent:        "LEX1004",
		SynUnexpectedToken:  "SYN2001",
		ScopeContract:       "SCP3001",
		IOLoadFileError:     "IO4001",
		ProjManifestInvalid: "PRJ5002",
		ObsTimings:          "OBS6001",
		UnknownCode:         "E0000",
	}
	for c, want := range tests {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if Code(1999).Title() != "Unknown error" {
		t.Error("unknown code title")
	}
}

func TestReportersChain(t *testing.T) {
	bag := NewBag(0)
	dedup := NewDedupReporter(BagReporter{Bag: bag})
	multi := MultiReporter{dedup, NopReporter{}, nil}

	sp := source.Span{Start: 3, End: 4}
	ReportError(multi, SynUnexpectedToken, sp, "boom").WithNote(sp, "here").Emit()
	ReportError(multi, SynUnexpectedToken, sp, "boom").Emit()

	b := ReportWarning(multi, LexBadEscape, sp, "esc")
	b.Emit()
	b.Emit()

	if bag.Len() != 2 {
		t.Fatalf("bag has %d items, want 2", bag.Len())
	}
	if len(bag.Items()[0].Notes) != 1 {
		t.Error("note lost")
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.stk", []byte("x = 1\ny = $\n"))
	diags := []Diagnostic{
		NewError(LexUnknownChar, source.Span{File: id, Start: 10, End: 11}, "unknown character '$'"),
		NewError(SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "first"),
	}
	got := FormatShortDiagnostics(diags, fs, false)
	want := "a.stk:1:1: ERROR SYN2001 first\na.stk:2:5: ERROR LEX1001 unknown character '$'"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestTally(t *testing.T) {
	items := []Diagnostic{
		NewError(LexUnknownChar, source.Span{}, "a"),
		New(SevWarning, LexBadEscape, source.Span{}, "b"),
		New(SevInfo, SynTooManyErrors, source.Span{}, "c"),
		NewError(SynUnexpectedToken, source.Span{}, "d"),
	}
	if errs, warns := Tally(items); errs != 2 || warns != 1 {
		t.Errorf("Tally = %d errors, %d warnings; want 2, 1", errs, warns)
	}
	if got := Severity(9).String(); got != "UNKNOWN" {
		t.Errorf("Severity(9) = %q", got)
	}
}
