package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"rsmin/internal/diag"
	"rsmin/internal/diagfmt"
	"rsmin/internal/driver"
	"rsmin/internal/observ"
	"rsmin/internal/source"
	"rsmin/internal/trace"
)

const stdinName = "<stdin>"

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] [path...]",
	Short: "Minify Rust source files",
	Long: `Minify rewrites Rust source into the shortest text that lexes to the same
tokens. Without paths it reads stdin and writes the result to stdout.
Directories are walked for *.rs files.`,
	RunE: runMinify,
}

func init() {
	f := minifyCmd.Flags()
	f.Bool("remove-docs", false, "remove documentation and #[{warn, deny, forbid}(missing_docs)]")
	f.BoolP("write", "w", false, "rewrite files in place")
	f.String("out-dir", "", "write minified files into this directory, mirroring the inputs")
	f.Bool("check", false, "list files that are not minified and exit with status 1 if any")
	f.Uint("jobs", 0, "files minified in parallel (0 = GOMAXPROCS)")
	f.StringSlice("exclude", nil, "glob of paths to skip during directory walks (repeatable)")
	f.Bool("cache", false, "reuse minified outputs from the user cache directory")
	f.String("ui", "auto", "progress view (auto|on|off)")
	f.String("format", "text", "report format (text|json)")
	f.String("config", "", "path to rsmin.toml (default: nearest one above the working directory)")
}

func runMinify(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	settings, err := readMinifySettings(cmd)
	if err != nil {
		return err
	}
	cfg, cfgPath, err := resolveConfig(settings.config)
	if err != nil {
		return err
	}
	settings.applyConfig(cfg, cmd.Flags().Changed)
	if cfgPath != "" {
		trace.Point(cmd.Context(), trace.ScopeDriver, "config", cfgPath)
	}

	var timer *observ.Timer
	if settings.timings {
		timer = observ.NewTimer()
	}
	opts := driver.Options{
		RemoveDocs:     settings.removeDocs,
		Write:          settings.write,
		OutDir:         settings.outDir,
		Check:          settings.check,
		Jobs:           settings.jobs,
		Exclude:        settings.exclude,
		MaxDiagnostics: settings.maxDiagnostics,
		Timer:          timer,
	}
	if settings.cache {
		cache, cacheErr := driver.OpenDiskCache(afero.NewOsFs(), "rsmin")
		if cacheErr != nil {
			if !settings.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", cacheErr)
			}
		} else {
			opts.Cache = cache
		}
	}

	if len(args) == 0 {
		return runMinifyStdin(cmd, &settings, opts)
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	useUI := settings.format == "text" && !settings.quiet && !settings.emitsToStdout() && shouldUseTUI(settings.ui)
	if useUI {
		fileSet, results, err = runMinifyWithUI(cmd.Context(), args, opts)
	} else {
		fileSet, results, err = driver.MinifyPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	stats := summarize(results)
	out := cmd.OutOrStdout()

	if settings.format == "json" {
		report := buildRunReport(results, fileSet, settings.emitsToStdout(), timer)
		if err := writeRunReport(out, &report); err != nil {
			return err
		}
	} else {
		for i := range results {
			printDiagnostics(cmd, results[i].Bag, fileSet)
		}
		switch {
		case settings.emitsToStdout():
			writeOutputs(out, results)
		case settings.check:
			for i := range results {
				if results[i].Changed && !results[i].Failed() {
					fmt.Fprintln(out, results[i].Path)
				}
			}
		}
		if !settings.quiet && !settings.emitsToStdout() {
			fmt.Fprintln(cmd.ErrOrStderr(), stats.describe(settings.check))
		}
		if settings.timings {
			printTimings(cmd.ErrOrStderr(), timer)
		}
	}

	if stats.failed > 0 {
		dumpTraceRing(cmd)
		return fmt.Errorf("%d of %d files failed", stats.failed, stats.total)
	}
	if settings.check && stats.changed > 0 {
		return fmt.Errorf("%d files are not minified", stats.changed)
	}
	return nil
}

func runMinifyStdin(cmd *cobra.Command, settings *minifySettings, opts driver.Options) error {
	if settings.write || settings.outDir != "" {
		return errors.New("--write and --out-dir need file or directory arguments")
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	fileSet, res := driver.MinifyBytes(cmd.Context(), stdinName, data, opts)
	out := cmd.OutOrStdout()

	if settings.format == "json" {
		fr := driver.FileResult{Result: res, Path: stdinName, Changed: res.Output != string(data)}
		report := buildRunReport([]driver.FileResult{fr}, fileSet, !settings.check, opts.Timer)
		if err := writeRunReport(out, &report); err != nil {
			return err
		}
	} else {
		printDiagnostics(cmd, res.Bag, fileSet)
		if !res.Failed() {
			if settings.check {
				if res.Output != string(data) {
					fmt.Fprintln(out, stdinName)
				}
			} else if _, err := io.WriteString(out, res.Output); err != nil {
				return err
			}
		}
		if settings.timings {
			printTimings(cmd.ErrOrStderr(), opts.Timer)
		}
	}

	if res.Failed() {
		dumpTraceRing(cmd)
		return errors.New("could not minify the input")
	}
	if settings.check && res.Output != string(data) {
		return errors.New("the input is not minified")
	}
	return nil
}

// printDiagnostics renders bag to stderr, sorted and deduplicated.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fileSet *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	capped := diagnosticsCapped(bag)
	bag.Sort()
	bag.Dedup()
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	})
	if capped {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: stopped after %d diagnostics (see --max-diagnostics)\n", bag.Cap())
	}
}

// diagnosticsCapped reports a bag that reached its limit and may have
// dropped diagnostics.
func diagnosticsCapped(bag *diag.Bag) bool {
	return bag != nil && bag.Len() >= bag.Cap()
}

// writeOutputs prints minified files one per line, in path order.
func writeOutputs(w io.Writer, results []driver.FileResult) {
	first := true
	for i := range results {
		if results[i].Failed() {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprint(w, results[i].Output)
	}
}

type runStats struct {
	total    int
	changed  int
	cached   int
	fallback int
	failed   int
}

func summarize(results []driver.FileResult) runStats {
	stats := runStats{total: len(results)}
	for i := range results {
		r := &results[i]
		switch {
		case r.Failed():
			stats.failed++
			continue
		case r.Changed:
			stats.changed++
		}
		if r.Cached {
			stats.cached++
		}
		if r.Fallback {
			stats.fallback++
		}
	}
	return stats
}

func (s runStats) describe(check bool) string {
	verb := "changed"
	if check {
		verb = "not minified"
	}
	msg := fmt.Sprintf("%d files: %d %s", s.total, s.changed, verb)
	if s.cached > 0 {
		msg += fmt.Sprintf(", %d cached", s.cached)
	}
	if s.fallback > 0 {
		msg += fmt.Sprintf(", %d canonical fallback", s.fallback)
	}
	if s.failed > 0 {
		msg += fmt.Sprintf(", %d failed", s.failed)
	}
	return msg
}
