package lexer

import (
	"rsmin/internal/token"
)

// scanIdentOrPrefixed handles identifiers together with the literals that
// start like one: b'x', b"..", br".." , r"..", r#".."#, c"..", cr"..", and raw
// identifiers r#name.
func (lx *Lexer) scanIdentOrPrefixed() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor

	switch c.Peek() {
	case 'b':
		switch c.PeekAt(1) {
		case '\'':
			c.Bump()
			return lx.scanByteChar(start)
		case '"':
			c.Bump()
			return lx.scanString(start)
		case 'r':
			if b := c.PeekAt(2); b == '"' || b == '#' {
				c.Bump()
				c.Bump()
				return lx.scanRawString(start)
			}
		}
	case 'c':
		switch c.PeekAt(1) {
		case '"':
			c.Bump()
			return lx.scanString(start)
		case 'r':
			if b := c.PeekAt(2); b == '"' || b == '#' {
				c.Bump()
				c.Bump()
				return lx.scanRawString(start)
			}
		}
	case 'r':
		switch c.PeekAt(1) {
		case '"':
			c.Bump()
			return lx.scanRawString(start)
		case '#':
			if b := c.PeekAt(2); b == '"' || b == '#' {
				c.Bump()
				return lx.scanRawString(start)
			}
			if lx.isIdentStartAt(c.Off + 2) {
				c.Bump()
				c.Bump()
				lx.scanIdentBody()
				sp := c.SpanFrom(start)
				return token.NewIdent(nfc(lx.text(sp)), sp)
			}
		}
	}

	lx.scanIdentBody()
	sp := c.SpanFrom(start)
	return token.NewIdent(nfc(lx.text(sp)), sp)
}

// scanIdentBody съедает XID_Start XID_Continue*; курсор стоит на старте.
func (lx *Lexer) scanIdentBody() {
	lx.bumpRune()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < 0x80 {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// scanSuffix consumes an optional literal suffix such as u8 or f64.
func (lx *Lexer) scanSuffix() {
	if lx.isIdentStartAt(lx.cursor.Off) {
		lx.scanIdentBody()
	}
}
