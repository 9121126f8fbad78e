// Package minify renders a token tree as the shortest text that lexes back to
// the same tree.
//
// Serialize makes one left-to-right pass. Identifiers and literals need a
// single space between them; punctuation needs a space only where two runs
// would fuse into a different operator (see Ambiguous). Verify re-lexes the
// candidate and compares it with the input ignoring spans and spacing. When
// verification fails Minify returns Canonical, which spaces every token.
package minify
