package lexer

import (
	"rsmin/internal/token"
)

// scanPunct выдаёт один символ пунктуации. Joint, если следом сразу идёт
// другой символ пунктуации (но не начало комментария).
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	spacing := token.Alone
	if lx.isPunctStartAt(lx.cursor.Off) {
		spacing = token.Joint
	}
	return token.NewPunct(ch, spacing, lx.cursor.SpanFrom(start))
}
