package driver

import (
	"context"
	"strconv"
	"time"

	"rsmin/internal/diag"
	"rsmin/internal/docstrip"
	"rsmin/internal/lexer"
	"rsmin/internal/minify"
	"rsmin/internal/observ"
	"rsmin/internal/source"
	"rsmin/internal/syntax"
	"rsmin/internal/token"
	"rsmin/internal/trace"
)

// Result of minifying one source file.
type Result struct {
	// Output is the minified file, shebang line included. Empty when lexing failed.
	Output string
	// Fallback is set when the minimal text failed verification and Output
	// holds the canonical rendering.
	Fallback bool
	Shebang  string
	Bag      *diag.Bag
}

// Failed reports whether the file had errors and produced no output.
func (r *Result) Failed() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// MinifySource runs lex, optional parse and strip, and minify over one file
// of fileSet. Files with lexer errors are not minified.
func MinifySource(ctx context.Context, fileSet *source.FileSet, id source.FileID, opts Options) Result {
	file := fileSet.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())

	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)
	detail := "ok"
	defer func() { span.End(detail) }()

	var (
		stream  token.Stream
		shebang string
	)
	runPass(ctx, opts.Timer, observ.PhaseLex, func() {
		lx := lexer.New(file, lexer.Options{Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter()})
		stream = lx.Tree()
		shebang = lx.Shebang()
	})
	if bag.HasErrors() {
		detail = "lex errors"
		span.WithExtra("diagnostics", strconv.Itoa(bag.Len()))
		return Result{Shebang: shebang, Bag: bag}
	}

	if opts.RemoveDocs {
		var tree *syntax.File
		runPass(ctx, opts.Timer, observ.PhaseParse, func() {
			tree = syntax.Parse(stream)
			tree.Shebang = shebang
		})
		runPass(ctx, opts.Timer, observ.PhaseStrip, func() {
			stream = docstrip.Strip(tree).Flatten()
		})
	}

	var res minify.Result
	runPass(ctx, opts.Timer, observ.PhaseMinify, func() {
		res = minify.Run(stream)
	})
	if res.Fallback {
		detail = "fallback"
		trace.Point(ctx, trace.ScopeFile, "fallback", "minimal output did not re-lex to the same tokens; using canonical form")
	}

	return Result{
		Output:   withShebang(shebang, res.Text),
		Fallback: res.Fallback,
		Shebang:  shebang,
		Bag:      bag,
	}
}

func runPass(ctx context.Context, timer *observ.Timer, name string, fn func()) {
	_, span := trace.Start(ctx, trace.ScopePass, name)
	start := time.Now()
	fn()
	timer.Add(name, time.Since(start))
	span.End("")
}

// withShebang puts the shebang back on its own line.
func withShebang(shebang, text string) string {
	if shebang == "" {
		return text
	}
	return shebang + "\n" + text
}
