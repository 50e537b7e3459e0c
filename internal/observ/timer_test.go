package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerMergesPhases(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()
	end := tm.Begin("resolve")
	end("3 scopes")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "parse" || r.Phases[0].Count != 4 || r.Phases[0].DurationMS < 4 {
		t.Errorf("parse phase = %+v", r.Phases[0])
	}
	if r.Phases[1].Note != "3 scopes" {
		t.Errorf("note = %q", r.Phases[1].Note)
	}
	if s := tm.Summary(); !strings.Contains(s, "total") || !strings.Contains(s, "// 3 scopes") {
		t.Errorf("summary:\n%s", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("empty report = %+v", r)
	}
}
