// Package trace is the logging layer of rsmin.
//
// Events are emitted as spans (begin/end pairs) and points. The driver opens
// one driver span per invocation, one file span per source file and one pass
// span per pipeline step (lex, parse, strip, minify). A verification fallback
// shows up as a point event on the file.
//
// # Usage
//
//	rsmin minify --trace=- --trace-level=phase src/
//
// # Tracers
//
//   - Nop: tracing disabled
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a failure
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: ring only, dumped on failure
//   - LevelPhase: driver and file events
//   - LevelDetail: plus pass spans
//   - LevelDebug: everything, including per-node events
//
// # Context
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "lex")
//	defer span.End("")
package trace
