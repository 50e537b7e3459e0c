package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "ERROR", "phase", "Detail", "debug"} {
		lvl, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if !strings.EqualFold(lvl.String(), s) {
			t.Errorf("ParseLevel(%q) = %s", s, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestStreamTracerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	pass := Begin(tr, ScopePass, "parse", 0)
	file := Begin(tr, ScopeFile, "file:a.stk", pass.ID())
	file.End("")
	pass.WithExtra("nodes", "12").End("ok")

	out := buf.String()
	if strings.Contains(out, "file:a.stk") {
		t.Errorf("file scope must be filtered at phase level:\n%s", out)
	}
	if strings.Count(out, "parse") != 2 {
		t.Errorf("expected begin and end for parse:\n%s", out)
	}
	if !strings.Contains(out, "(ok)") || !strings.Contains(out, "{nodes=12}") {
		t.Errorf("missing detail or extra:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Begin(tr, ScopeDriver, "diag", 0).End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["name"] != "diag" {
		t.Errorf("event = %v", ev)
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(tr, ScopeNode, name, "")
	}
	snap := tr.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot = %d, want 3", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %s, want %s", i, snap[i].Name, want)
		}
	}
	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	ring := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	sp := Begin(FromContext(ctx), ScopeDriver, "root", 0)
	ctx = WithSpan(ctx, sp)
	if ParentFrom(ctx) != sp.ID() {
		t.Fatalf("parent not propagated")
	}
	child := Begin(FromContext(ctx), ScopePass, "lex", ParentFrom(ctx))
	child.End("")
	sp.End("")
	snap := ring.Snapshot()
	if len(snap) != 4 || snap[1].ParentID != sp.ID() {
		t.Fatalf("unexpected events %+v", snap)
	}
}

func TestNewDisabled(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("LevelOff must yield a disabled tracer")
	}
	if Begin(tr, ScopeDriver, "x", 0).End("") != 0 {
		t.Errorf("disabled span must report zero duration")
	}
}
