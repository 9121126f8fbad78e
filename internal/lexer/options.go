package lexer

import (
	"rsmin/internal/diag"
	"rsmin/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
	// Fragment lexes text that is not a whole file: no shebang detection.
	Fragment bool
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) reportWithNote(code diag.Code, sp source.Span, msg string, noteSpan source.Span, note string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).WithNote(noteSpan, note).Emit()
	}
}
