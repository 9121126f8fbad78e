package lexer

import (
	"rsmin/internal/token"
)

// Поддержка: 0, 1_000, 0b..., 0o..., 0x..., 1.0, 1e-3, 2.5E+10, с суффиксами (u8, f32, ...).
// "1." - float с завершающей точкой, если дальше не '.', не '_' и не начало идентификатора:
// "1..2" это 1 .. 2, "1.foo()" это 1 . foo().
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor

	if c.Peek() == '0' {
		switch c.PeekAt(1) {
		case 'x':
			if b := c.PeekAt(2); isHex(b) || b == '_' {
				c.Bump()
				c.Bump()
				for isHex(c.Peek()) || c.Peek() == '_' {
					c.Bump()
				}
				return lx.finishNumber(start)
			}
		case 'o', 'b':
			if b := c.PeekAt(2); isDec(b) || b == '_' {
				c.Bump()
				c.Bump()
				lx.scanDigits()
				return lx.finishNumber(start)
			}
		}
	}

	lx.scanDigits()

	if c.Peek() == '.' {
		next := c.PeekAt(1)
		if next != '.' && next != '_' && !lx.isIdentStartAt(c.Off+1) {
			c.Bump() // '.'
			if !isDec(c.Peek()) {
				// завершающая точка, суффикса нет
				sp := c.SpanFrom(start)
				return token.NewLiteral(lx.text(sp), sp)
			}
			lx.scanDigits()
		}
	}

	lx.scanExponent()
	return lx.finishNumber(start)
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// scanExponent consumes [eE][+-]?[0-9_]*[0-9]... only when a digit follows,
// so "1em" keeps "em" as a suffix.
func (lx *Lexer) scanExponent() {
	c := &lx.cursor
	if b := c.Peek(); b != 'e' && b != 'E' {
		return
	}
	i := uint32(1)
	if b := c.PeekAt(i); b == '+' || b == '-' {
		i++
	}
	for c.PeekAt(i) == '_' {
		i++
	}
	if !isDec(c.PeekAt(i)) {
		return
	}
	c.Off += i
	lx.scanDigits()
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	lx.scanSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.NewLiteral(lx.text(sp), sp)
}
