package minify

import (
	"strings"

	"rsmin/internal/token"
)

// Canonical renders s with one space between tokens. A Joint punctuation char
// stays glued to the token after it, so multi-char operators and lifetimes
// keep their shape. Invisible groups render as their contents. Non-empty
// brace groups are padded inside, `{ x }`, parens and brackets are not.
func Canonical(s token.Stream) string {
	var sb strings.Builder
	canonical(&sb, s)
	return sb.String()
}

func canonical(sb *strings.Builder, s token.Stream) {
	for i := range s {
		t := &s[i]
		if i > 0 && !(s[i-1].Kind == token.Punct && s[i-1].Spacing == token.Joint) {
			sb.WriteByte(' ')
		}
		switch t.Kind {
		case token.Group:
			switch {
			case t.Delim == token.DelimNone:
				canonical(sb, t.Stream)
			case t.Delim == token.DelimBrace && len(t.Stream) > 0:
				sb.WriteString("{ ")
				canonical(sb, t.Stream)
				sb.WriteString(" }")
			default:
				sb.WriteString(t.Delim.Open())
				canonical(sb, t.Stream)
				sb.WriteString(t.Delim.Close())
			}
		default:
			sb.WriteString(t.Text)
		}
	}
}
