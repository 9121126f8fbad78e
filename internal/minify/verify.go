package minify

import (
	"rsmin/internal/lexer"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

// Verify re-lexes candidate and reports whether it is equivalent to want.
// Any lexer error fails verification.
func Verify(candidate string, want token.Stream) bool {
	got, ok := relex(candidate)
	return ok && Equivalent(got, want)
}

func relex(text string) (token.Stream, bool) {
	f := &source.File{Path: "<candidate>", Content: []byte(text), Flags: source.FileVirtual}
	lx := lexer.New(f, lexer.Options{Fragment: true})
	ts := lx.Tree()
	return ts, lx.ErrorCount() == 0
}

// Equivalent compares two token trees by group delimiters and nesting,
// identifier and literal text and punctuation chars. Spans and spacing are
// ignored.
func Equivalent(a, b token.Stream) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := &a[i], &b[i]
		if x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case token.Group:
			if x.Delim != y.Delim || !Equivalent(x.Stream, y.Stream) {
				return false
			}
		case token.Punct:
			if x.Char() != y.Char() {
				return false
			}
		default:
			if x.Text != y.Text {
				return false
			}
		}
	}
	return true
}
