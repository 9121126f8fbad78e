package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeNode, true},
		{LevelPhase, ScopeDriver, true},
		{LevelPhase, ScopeFile, true},
		{LevelPhase, ScopePass, false},
		{LevelDetail, ScopePass, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		lvl, err := ParseLevel(strings.ToUpper(s))
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if lvl.String() != s {
			t.Errorf("ParseLevel(%q) = %s", s, lvl)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestStartNestsSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	ctx, file := Start(ctx, ScopeFile, "file:a.rs")
	passCtx, pass := Start(ctx, ScopePass, "lex")
	Point(passCtx, ScopePass, "fallback", "relex failed")
	pass.End("")
	file.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d events, want 5:\n%s", len(lines), buf.String())
	}
	var evs []jsonEvent
	for _, l := range lines {
		var ev jsonEvent
		if err := json.Unmarshal([]byte(l), &ev); err != nil {
			t.Fatalf("bad json %q: %v", l, err)
		}
		evs = append(evs, ev)
	}
	if evs[1].ParentID != evs[0].SpanID {
		t.Errorf("pass parent = %d, want %d", evs[1].ParentID, evs[0].SpanID)
	}
	if evs[2].Kind != "point" || evs[2].ParentID != evs[1].SpanID {
		t.Errorf("point event = %+v", evs[2])
	}
	if evs[4].Detail != "ok" || evs[4].Extra["dur"] == "" {
		t.Errorf("file end = %+v", evs[4])
	}
}

func TestFilteredScopeDoesNotBreakParents(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	ctx, file := Start(ctx, ScopeFile, "file:a.rs")
	_, pass := Start(ctx, ScopePass, "lex")
	if pass.ID() != 0 {
		t.Errorf("pass span should be disabled at phase level")
	}
	pass.End("")
	file.End("")

	out := buf.String()
	if strings.Contains(out, "lex") {
		t.Errorf("pass events leaked at phase level:\n%s", out)
	}
	if strings.Count(out, "file:a.rs") != 2 {
		t.Errorf("want begin and end for file span:\n%s", out)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: name})
	}
	var names []string
	for _, ev := range r.Snapshot() {
		names = append(names, ev.Name)
	}
	if got := strings.Join(names, ","); got != "c,d,e" {
		t.Errorf("snapshot = %s, want c,d,e", got)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestNewModes(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDebug, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Point(WithTracer(context.Background(), tr), ScopeDriver, "hello", "")
	if !strings.Contains(buf.String(), "• hello") {
		t.Errorf("stream output = %q", buf.String())
	}
	ring := RingOf(tr)
	if ring == nil || len(ring.Snapshot()) != 1 {
		t.Fatalf("ring missing or empty")
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Errorf("off tracer = %v, %v", off, err)
	}
	if _, err := New(Config{Level: LevelPhase}); err == nil {
		t.Errorf("expected error for missing mode")
	}
}

func TestTextFormatSortsExtra(t *testing.T) {
	ev := &Event{Kind: KindSpanEnd, Scope: ScopePass, Name: "minify", Extra: map[string]string{"z": "1", "a": "2"}}
	got := string(FormatEvent(ev, FormatText))
	if !strings.Contains(got, "    ← minify {a=2, z=1}") {
		t.Errorf("text = %q", got)
	}
}

func TestHeartbeatNilSafe(t *testing.T) {
	h := StartHeartbeat(Nop, 0)
	if h != nil {
		t.Fatalf("expected nil heartbeat for nop tracer")
	}
	h.Stop()
}
