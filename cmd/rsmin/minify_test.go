package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rsmin/internal/diag"
	"rsmin/internal/driver"
	"rsmin/internal/source"
)

// The cases below share rootCmd, so every flag a case relies on is passed
// explicitly.

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMinifyStdinWithConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, cfgPath, "[minify]\nremove_docs = true\n")

	out, errOut, err := execute(t, "/// doc\nfn main() { let x = 1 + 2; }\n",
		"minify", "--ui=off", "--config", cfgPath)
	if err != nil {
		t.Fatalf("minify: %v\n%s", err, errOut)
	}
	if out != "fn main(){let x=1+2;}" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestMinifyCheckThenWrite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, configFileName)
	writeFile(t, cfgPath, "")
	src := filepath.Join(dir, "src", "lib.rs")
	writeFile(t, src, "fn  f ( ) { }\n")

	base := []string{"minify", "--ui=off", "--remove-docs=false", "--config", cfgPath}

	out, _, err := execute(t, "", append(base, "--write=false", "--check", dir)...)
	if err == nil {
		t.Fatalf("check on an unminified tree must fail")
	}
	if !strings.Contains(out, "lib.rs") {
		t.Fatalf("check output %q does not list lib.rs", out)
	}

	if _, errOut, err := execute(t, "", append(base, "--check=false", "--write", dir)...); err != nil {
		t.Fatalf("write: %v\n%s", err, errOut)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "fn f(){}" {
		t.Fatalf("written = %q", data)
	}

	if _, errOut, err := execute(t, "", append(base, "--write=false", "--check", dir)...); err != nil {
		t.Fatalf("second check: %v\n%s", err, errOut)
	}
}

func TestSummarize(t *testing.T) {
	failedBag := diag.NewBag(4)
	failedBag.Add(diag.NewError(diag.LexUnknownChar, source.Span{}, "unknown character"))

	results := []driver.FileResult{
		{Path: "a.rs", Changed: true, Result: driver.Result{Bag: diag.NewBag(4)}},
		{Path: "b.rs", Cached: true, Result: driver.Result{Bag: diag.NewBag(4)}},
		{Path: "c.rs", Changed: true, Result: driver.Result{Fallback: true, Bag: diag.NewBag(4)}},
		{Path: "d.rs", Result: driver.Result{Bag: failedBag}},
	}
	stats := summarize(results)
	want := runStats{total: 4, changed: 2, cached: 1, fallback: 1, failed: 1}
	if stats != want {
		t.Fatalf("summarize = %+v, want %+v", stats, want)
	}
	if got := stats.describe(true); got != "4 files: 2 not minified, 1 cached, 1 canonical fallback, 1 failed" {
		t.Fatalf("describe(true) = %q", got)
	}

	var buf bytes.Buffer
	writeOutputs(&buf, []driver.FileResult{
		{Result: driver.Result{Output: "fn a(){}", Bag: diag.NewBag(1)}},
		{Result: driver.Result{Bag: failedBag}},
		{Result: driver.Result{Output: "fn b(){}", Bag: diag.NewBag(1)}},
	})
	if buf.String() != "fn a(){}\nfn b(){}" {
		t.Fatalf("writeOutputs = %q", buf.String())
	}
}

func TestRunReportJSON(t *testing.T) {
	results := []driver.FileResult{
		{Path: "a.rs", Changed: true, Result: driver.Result{Output: "fn a(){}", Bag: diag.NewBag(1)}},
		{Path: "b.rs"},
	}
	report := buildRunReport(results, nil, true, nil)
	var buf bytes.Buffer
	if err := writeRunReport(&buf, &report); err != nil {
		t.Fatalf("writeRunReport: %v", err)
	}

	var decoded struct {
		Files []struct {
			Path        string  `json:"path"`
			Changed     bool    `json:"changed"`
			Output      *string `json:"output"`
			Diagnostics struct {
				Count int `json:"count"`
			} `json:"diagnostics"`
		} `json:"files"`
		Summary struct {
			Total   int `json:"total"`
			Changed int `json:"changed"`
		} `json:"summary"`
		Timings json.RawMessage `json:"timings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if len(decoded.Files) != 2 || decoded.Summary.Total != 2 || decoded.Summary.Changed != 1 {
		t.Fatalf("unexpected report: %s", buf.String())
	}
	if decoded.Files[0].Output == nil || *decoded.Files[0].Output != "fn a(){}" {
		t.Fatalf("output of a.rs missing: %s", buf.String())
	}
	if decoded.Timings != nil {
		t.Fatalf("timings present without a timer: %s", decoded.Timings)
	}
}

func TestDiagnosticsCapped(t *testing.T) {
	bag := diag.NewBag(2)
	if diagnosticsCapped(bag) || diagnosticsCapped(nil) {
		t.Fatalf("empty bag reported as capped")
	}
	for i := range 3 {
		bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: uint32(i), End: uint32(i + 1)}, "unknown character"))
	}
	if !diagnosticsCapped(bag) {
		t.Fatalf("full bag (len %d, cap %d) not reported as capped", bag.Len(), bag.Cap())
	}
}
