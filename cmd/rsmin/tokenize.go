package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"rsmin/internal/diagfmt"
	"rsmin/internal/driver"
	"rsmin/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.rs]",
	Short: "Print the token tree of a Rust source file",
	Long: `Tokenize lexes a Rust source file (stdin when no file is given) and prints
the token tree the minifier works on. Doc comments show up as #[doc] attributes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	defer cleanup()
	if err != nil {
		return err
	}

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	_, span := trace.Start(cmd.Context(), trace.ScopeFile, "tokenize")
	var result *driver.TokenizeResult
	if len(args) == 0 {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			span.End("read error")
			return fmt.Errorf("could not read input: %w", readErr)
		}
		result = driver.TokenizeBytes(stdinName, data, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(afero.NewOsFs(), args[0], maxDiagnostics)
		if err != nil {
			span.End("read error")
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}
	span.End(fmt.Sprintf("%d top-level tokens", len(result.Tokens)))

	// Выводим диагностику в stderr, если есть
	printDiagnostics(cmd, result.Bag, result.FileSet)

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		if result.Shebang != "" {
			fmt.Fprintf(out, "Shebang %q\n", result.Shebang)
		}
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: lexing failed", result.File.Path)
	}
	return nil
}
