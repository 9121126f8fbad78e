package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type minifySettings struct {
	removeDocs bool
	write      bool
	outDir     string
	check      bool
	jobs       uint
	exclude    []string
	cache      bool
	ui         uiMode
	format     string
	config     string

	quiet          bool
	timings        bool
	maxDiagnostics int
}

func readMinifySettings(cmd *cobra.Command) (minifySettings, error) {
	var s minifySettings
	var err error
	flags := cmd.Flags()

	if s.removeDocs, err = flags.GetBool("remove-docs"); err != nil {
		return s, err
	}
	if s.write, err = flags.GetBool("write"); err != nil {
		return s, err
	}
	if s.outDir, err = flags.GetString("out-dir"); err != nil {
		return s, err
	}
	if s.check, err = flags.GetBool("check"); err != nil {
		return s, err
	}
	if s.jobs, err = flags.GetUint("jobs"); err != nil {
		return s, err
	}
	if s.exclude, err = flags.GetStringSlice("exclude"); err != nil {
		return s, err
	}
	if s.cache, err = flags.GetBool("cache"); err != nil {
		return s, err
	}
	if s.config, err = flags.GetString("config"); err != nil {
		return s, err
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return s, err
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return s, err
	}

	format, err := flags.GetString("format")
	if err != nil {
		return s, err
	}
	s.format = strings.ToLower(format)
	switch s.format {
	case "text", "json":
	default:
		return s, fmt.Errorf("unsupported format %q (must be text or json)", format)
	}

	pf := cmd.Root().PersistentFlags()
	if s.quiet, err = pf.GetBool("quiet"); err != nil {
		return s, err
	}
	if s.timings, err = pf.GetBool("timings"); err != nil {
		return s, err
	}
	if s.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return s, err
	}

	if s.write && s.outDir != "" {
		return s, fmt.Errorf("--write and --out-dir are mutually exclusive")
	}
	if s.check && (s.write || s.outDir != "") {
		return s, fmt.Errorf("--check cannot be combined with --write or --out-dir")
	}
	return s, nil
}

// applyConfig fills in values from rsmin.toml for every flag the user did
// not set explicitly.
func (s *minifySettings) applyConfig(cfg *fileConfig, changed func(name string) bool) {
	if cfg == nil {
		return
	}
	if cfg.Minify.RemoveDocs != nil && !changed("remove-docs") {
		s.removeDocs = *cfg.Minify.RemoveDocs
	}
	if len(cfg.Walk.Exclude) > 0 && !changed("exclude") {
		s.exclude = append([]string(nil), cfg.Walk.Exclude...)
	}
	if cfg.Cache.Enabled != nil && !changed("cache") {
		s.cache = *cfg.Cache.Enabled
	}
}

// emitsToStdout reports whether minified text goes to stdout.
func (s *minifySettings) emitsToStdout() bool {
	return !s.write && s.outDir == "" && !s.check
}
