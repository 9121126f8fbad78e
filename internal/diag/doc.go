// Package diag defines the diagnostic model shared by the lexer and the driver.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while turning program text into a token tree.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context, e.g.
//     “delimiter opened here”.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter. The lexer builds reports via ReportError /
// ReportWarning and chains WithNote before calling Emit. BagReporter
// aggregates diagnostics into a Bag, which supports sorting, deduplication
// and a hard cap on the number of stored entries.
//
// The minifier core never emits diagnostics: its only quasi-failure
// (verification mismatch) is absorbed by the canonical fallback.
package diag
