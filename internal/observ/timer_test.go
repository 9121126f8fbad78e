package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAccumulatesByName(t *testing.T) {
	tm := NewTimer()
	tm.Add(PhaseLex, 2*time.Millisecond)
	tm.Add(PhaseParse, time.Millisecond)
	tm.Add(PhaseLex, 3*time.Millisecond)

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %+v", r.Phases)
	}
	if r.Phases[0].Name != PhaseLex || r.Phases[0].Count != 2 || r.Phases[0].DurationMS != 5 {
		t.Errorf("lex = %+v", r.Phases[0])
	}
	if r.TotalMS != 6 {
		t.Errorf("total = %v", r.TotalMS)
	}
}

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin(PhaseMinify)
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Note != "3 files" || r.Phases[0].Count != 1 {
		t.Fatalf("report = %+v", r)
	}
	if !strings.Contains(tm.Summary(), "minify") || !strings.Contains(tm.Summary(), "total") {
		t.Errorf("summary:\n%s", tm.Summary())
	}
}

func TestTimerConcurrentAdd(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Measure(PhaseLex, func() {})
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases[0].Count; got != 16 {
		t.Errorf("count = %d, want 16", got)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Add(PhaseLex, time.Second)
	tm.End(tm.Begin(PhaseLex), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Errorf("nil timer report = %+v", r)
	}
}
