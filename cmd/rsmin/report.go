package main

import (
	"encoding/json"
	"io"

	"rsmin/internal/diagfmt"
	"rsmin/internal/driver"
	"rsmin/internal/observ"
	"rsmin/internal/source"
)

type fileReport struct {
	Path        string                    `json:"path"`
	Changed     bool                      `json:"changed"`
	Cached      bool                      `json:"cached"`
	Fallback    bool                      `json:"fallback"`
	Failed      bool                      `json:"failed"`
	Dest        string                    `json:"dest,omitempty"`
	Output      *string                   `json:"output,omitempty"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

type summaryReport struct {
	Total    int `json:"total"`
	Changed  int `json:"changed"`
	Cached   int `json:"cached"`
	Fallback int `json:"fallback"`
	Failed   int `json:"failed"`
}

type runReport struct {
	Files   []fileReport   `json:"files"`
	Summary summaryReport  `json:"summary"`
	Timings *observ.Report `json:"timings,omitempty"`
}

// buildRunReport collects results for --format json. Outputs are embedded
// only when they are not written anywhere else.
func buildRunReport(results []driver.FileResult, fileSet *source.FileSet, withOutput bool, timer *observ.Timer) runReport {
	report := runReport{Files: make([]fileReport, 0, len(results))}
	for i := range results {
		r := &results[i]
		fr := fileReport{
			Path:     r.Path,
			Changed:  r.Changed,
			Cached:   r.Cached,
			Fallback: r.Fallback,
			Failed:   r.Failed(),
			Dest:     r.Dest,
		}
		if r.Bag != nil {
			fr.Diagnostics = diagfmt.BuildDiagnosticsOutput(r.Bag, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			})
		} else {
			fr.Diagnostics.Diagnostics = []diagfmt.DiagnosticJSON{}
		}
		if withOutput && !fr.Failed {
			output := r.Output
			fr.Output = &output
		}
		report.Files = append(report.Files, fr)
	}

	stats := summarize(results)
	report.Summary = summaryReport{
		Total:    stats.total,
		Changed:  stats.changed,
		Cached:   stats.cached,
		Fallback: stats.fallback,
		Failed:   stats.failed,
	}
	if timer != nil {
		timings := timer.Report()
		report.Timings = &timings
	}
	return report
}

func writeRunReport(w io.Writer, report *runReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
