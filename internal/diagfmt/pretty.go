package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rsmin/internal/diag"
	"rsmin/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, path, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span и, при ShowNotes, заметки.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, &d, fs, opts, p)
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	header := p.severity(d.Severity).Sprint(d.Severity.String()) + " " +
		p.code.Sprint(d.Code.ID()) + ": " + d.Message

	if loc, ok := location(fs, d.Primary, opts.PathMode); ok {
		fmt.Fprintf(w, "%s: %s\n", p.path.Sprint(loc), header)
		writeSnippet(w, fs, d.Primary, opts.Context, p)
	} else {
		fmt.Fprintln(w, header)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		if loc, ok := location(fs, n.Span, opts.PathMode); ok {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), loc, n.Msg)
			writeSnippet(w, fs, n.Span, 0, p)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
	}
}

// writeSnippet prints the first line of sp with up to context lines above it
// and a caret underline sized by display width.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, p palette) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	above := uint32(0)
	if context > 0 {
		above = min(uint32(context), start.Line-1)
	}
	gutterWidth := len(strconv.FormatUint(uint64(start.Line), 10))
	gutter := func(label string) string {
		return p.gutter.Sprint(fmt.Sprintf("%*s |", gutterWidth, label))
	}

	for ln := start.Line - above; ln < start.Line; ln++ {
		fmt.Fprintf(w, "%s %s\n", gutter(strconv.FormatUint(uint64(ln), 10)), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, "%s %s\n", gutter(strconv.FormatUint(uint64(start.Line), 10)), expandTabs(line))

	from := min(int(start.Col-1), len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col-1), len(line))
	}
	width := 1
	if to > from {
		width = max(1, displayWidth(line[from:to]))
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n", gutter(""), strings.Repeat(" ", displayWidth(line[:from])), p.caret.Sprint(marker))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}
