package lexer

import (
	"rsmin/internal/diag"
	"rsmin/internal/token"
)

// scanString: курсор на открывающей '"', start может включать префикс (b, c).
// Строки многострочные, экранирование через '\'.
func (lx *Lexer) scanString(start Mark) token.Token {
	lx.cursor.Bump() // '"'
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated double quote string")
			return token.NewLiteral(lx.text(sp), sp)
		}
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.bumpRune()
			continue
		}
		if b == '"' {
			break
		}
	}
	lx.scanSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.NewLiteral(lx.text(sp), sp)
}

// scanRawString: курсор после 'r' (на '#' или '"').
func (lx *Lexer) scanRawString(start Mark) token.Token {
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadRawString, sp, "found invalid character; only `#` is allowed in raw string delimitation")
		return token.NewLiteral(lx.text(sp), sp)
	}
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated raw string")
			return token.NewLiteral(lx.text(sp), sp)
		}
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			break
		}
	}
	lx.scanSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.NewLiteral(lx.text(sp), sp)
}

// scanQuote разбирает ' : символьный литерал 'x' / '\n', иначе это метка
// лайфтайма, которая становится Punct('\'', Joint) перед идентификатором.
func (lx *Lexer) scanQuote() token.Token {
	start := lx.cursor.Mark()
	if tok, ok := lx.tryChar(start); ok {
		return tok
	}
	lx.cursor.Reset(start)
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	if !lx.isIdentStartAt(lx.cursor.Off) {
		lx.report(diag.LexUnterminatedChar, sp, "unterminated character literal")
	}
	return token.NewPunct('\'', token.Joint, sp)
}

// scanByteChar: курсор на '\'' после префикса b.
func (lx *Lexer) scanByteChar(start Mark) token.Token {
	if tok, ok := lx.tryChar(start); ok {
		return tok
	}
	lx.cursor.Reset(start)
	lx.cursor.Bump() // b
	lx.cursor.Bump() // '
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\'' {
		lx.bumpRune()
	}
	lx.cursor.Eat('\'')
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedChar, sp, "unterminated byte constant")
	return token.NewLiteral(lx.text(sp), sp)
}

// tryChar пробует разобрать символьный литерал; курсор на '\''.
func (lx *Lexer) tryChar(start Mark) (token.Token, bool) {
	lx.cursor.Bump()
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF(), b == '\'', b == '\n':
		return token.Token{}, false
	case b == '\\':
		lx.cursor.Bump()
		lx.bumpRune()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' && lx.cursor.Peek() != '\n' {
			lx.bumpRune()
		}
		if !lx.cursor.Eat('\'') {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedChar, sp, "unterminated character literal")
			return token.NewLiteral(lx.text(sp), sp), true
		}
	default:
		lx.bumpRune()
		if !lx.cursor.Eat('\'') {
			return token.Token{}, false
		}
	}
	lx.scanSuffix()
	sp := lx.cursor.SpanFrom(start)
	return token.NewLiteral(lx.text(sp), sp), true
}
