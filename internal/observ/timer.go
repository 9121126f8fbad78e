// Package observ measures the pipeline phases reported by --timings.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase names used by the driver.
const (
	PhaseRead   = "read"
	PhaseLex    = "lex"
	PhaseParse  = "parse"
	PhaseStrip  = "strip"
	PhaseMinify = "minify"
	PhaseWrite  = "write"
)

// Phase records the accumulated duration of one named phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Count int
	Note  string
}

// Timer tracks phase durations. It is safe for concurrent use, so one timer
// can aggregate the phases of files processed in parallel.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	index  map[string]int
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), index: make(map[string]int, 8)}
}

// Begin starts a phase and returns its index. Repeated names accumulate into
// the same entry.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := t.slot(name)
	t.phases[idx].Start = time.Now()
	return idx
}

// End adds the time since the matching Begin. With overlapping Begins of the
// same name (parallel files) use Add instead.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur += time.Since(p.Start)
	p.Count++
	if note != "" {
		p.Note = note
	}
}

// Measure runs fn and adds its duration under name.
func (t *Timer) Measure(name string, fn func()) {
	start := time.Now()
	fn()
	t.Add(name, time.Since(start))
}

// Add records an externally measured duration.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	p := &t.phases[t.slot(name)]
	p.Dur += d
	p.Count++
}

// slot returns the index of name, creating the entry. Caller holds mu.
func (t *Timer) slot(name string) int {
	if idx, ok := t.index[name]; ok {
		return idx
	}
	t.phases = append(t.phases, Phase{Name: name})
	t.index[name] = len(t.phases) - 1
	return len(t.phases) - 1
}

// Summary returns a human-readable table of all phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&sb, "  %-12s %9.2f ms  x%d", p.Name, p.DurationMS, p.Count)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %9.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Count      int     `json:"count"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report возвращает фазы в порядке первого появления и общую длительность.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.Dur
		report.Phases[i] = PhaseReport{
			Name:       p.Name,
			DurationMS: durationToMillis(p.Dur),
			Count:      p.Count,
			Note:       p.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
