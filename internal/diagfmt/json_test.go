package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"syntek/internal/diag"
	"syntek/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("j.stk", []byte("a = 1\nb = )\n"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: id, Start: 10, End: 11}, "expected expression").
		WithNote(source.Span{File: id, Start: 6, End: 7}, "in this declaration"))
	bag.Add(diag.New(diag.SevWarning, diag.LexBadDedent, source.Span{File: id, Start: 0, End: 1}, "dedent"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, len = %d", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Code != "SYN2003" || first.Severity != "ERROR" {
		t.Errorf("first = %+v", first)
	}
	loc := first.Location
	if loc.File != "j.stk" || loc.StartLine != 2 || loc.StartCol != 5 || loc.EndCol != 6 {
		t.Errorf("location = %+v", loc)
	}
	if len(first.Notes) != 1 || first.Notes[0].Location.StartLine != 2 {
		t.Errorf("notes = %+v", first.Notes)
	}
	if out.Diagnostics[1].Severity != "WARNING" {
		t.Errorf("second severity = %s", out.Diagnostics[1].Severity)
	}
}

func TestJSONMaxAndPositionsOff(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.stk", []byte("$$$\n"))
	bag := diag.NewBag(0)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: i, End: i + 1}, "unknown"))
	}
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 || out.Count != 3 {
		t.Fatalf("len = %d count = %d", len(out.Diagnostics), out.Count)
	}
	if out.Diagnostics[1].Location.StartLine != 0 || out.Diagnostics[1].Location.StartByte != 1 {
		t.Errorf("location = %+v", out.Diagnostics[1].Location)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Errorf("notes present without IncludeNotes")
	}
}
