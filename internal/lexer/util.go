package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"rsmin/internal/token"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущий байт как руну
func (lx *Lexer) peekRune() (r rune, size int) {
	return lx.runeAt(lx.cursor.Off)
}

func (lx *Lexer) runeAt(off uint32) (r rune, size int) {
	if off >= lx.cursor.Limit {
		return utf8.RuneError, 0
	}
	b := lx.file.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[off:lx.cursor.Limit])
}

// bumpRune читает текущий байт как руну и перемещает курсор на размер руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

// ASCII fast-path для идентификаторов; Unicode - через isIdentStartRune/Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

// XID_Start / XID_Continue approximated with the Unicode categories they are
// derived from.
func isIdentStartRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}
func isIdentContinueRune(r rune) bool {
	if r < utf8.RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	return isIdentStartRune(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func (lx *Lexer) isIdentStartAt(off uint32) bool {
	r, sz := lx.runeAt(off)
	return sz > 0 && isIdentStartRune(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// Pattern_White_Space
func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		'\u0085', '\u200e', '\u200f', '\u2028', '\u2029':
		return true
	}
	return false
}

// nfc normalizes non-ASCII identifiers; ASCII text is returned unchanged.
func nfc(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return norm.NFC.String(s)
		}
	}
	return s
}

// isPunctStartAt reports whether a punctuation token starts at off. Comment
// openers do not count.
func (lx *Lexer) isPunctStartAt(off uint32) bool {
	if off >= lx.cursor.Limit {
		return false
	}
	b := lx.file.Content[off]
	if b == '/' && off+1 < lx.cursor.Limit {
		if n := lx.file.Content[off+1]; n == '/' || n == '*' {
			return false
		}
	}
	return token.IsPunctChar(b)
}
