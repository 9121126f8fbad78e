package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rsmin/internal/trace"
	"rsmin/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rsmin",
	Short: "Rust source minifier",
	Long: `rsmin rewrites Rust source into the shortest text that still lexes to the
same tokens, optionally stripping documentation first.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = version.Number
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	rootCmd.AddCommand(minifyCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")

	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", trace.DefaultRingSize, "events kept by the ring buffer")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
}

// Any command error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output going to f and applies it to
// fatih/color globally.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	var on bool
	switch mode {
	case "on", "always":
		on = true
	case "off", "never":
		on = false
	default:
		on = isTerminal(f)
	}
	color.NoColor = !on
	return on
}
