package minify

import (
	"rsmin/internal/token"
)

// Result of minifying a token tree.
type Result struct {
	Text string
	// Fallback is set when the minimal candidate failed verification and
	// Text is the canonical rendering instead.
	Fallback bool
}

// Run serializes s, verifies the candidate and falls back to Canonical when
// verification fails.
func Run(s token.Stream) Result {
	candidate := Serialize(s)
	if Verify(candidate, s) {
		return Result{Text: candidate}
	}
	return Result{Text: Canonical(s), Fallback: true}
}

// Minify returns the minified text of s. It never fails.
func Minify(s token.Stream) string {
	return Run(s).Text
}
