package fuzztests

import (
	"testing"

	"rsmin/internal/diag"
	"rsmin/internal/docstrip"
	"rsmin/internal/lexer"
	"rsmin/internal/minify"
	"rsmin/internal/source"
	"rsmin/internal/syntax"
	"rsmin/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func lex(input []byte, fragment bool) (token.Stream, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.rs", input))
	bag := diag.NewBag(64)
	ts := lexer.Lex(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, Fragment: fragment})
	return ts, bag
}

func FuzzLexerTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		ts, _ := lex(clampInput(input), false)
		if !minify.Equivalent(syntax.Parse(ts).Flatten(), ts) {
			t.Fatalf("Flatten(Parse(s)) lost tokens for %q", input)
		}
	})
}

func FuzzMinifyRoundTrip(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		ts, bag := lex(clampInput(input), false)
		if bag.HasErrors() {
			return
		}
		out := minify.Minify(ts)
		again, relexBag := lex([]byte(out), true)
		if relexBag.HasErrors() {
			t.Fatalf("minified output does not lex: %q -> %q", input, out)
		}
		if !minify.Equivalent(again, ts) {
			t.Fatalf("minified output changed tokens: %q -> %q", input, out)
		}
	})
}

func FuzzDocStripIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		ts, bag := lex(clampInput(input), false)
		if bag.HasErrors() {
			return
		}
		once := docstrip.Strip(syntax.Parse(ts)).Flatten()
		twice := docstrip.Strip(syntax.Parse(once)).Flatten()
		if !minify.Equivalent(once, twice) {
			t.Fatalf("stripping twice differs from once for %q", input)
		}
	})
}
