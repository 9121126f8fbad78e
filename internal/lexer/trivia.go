package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"rsmin/internal/diag"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
//   - //... до \n и /* ... */ (с вложенностью) просто пропускаются
//   - ///x (но не ////) и /**x*/ (но не /*** и /**/) -> #[doc = "x"]
//   - //!x и /*!x*/ -> #![doc = "x"]
//
// Возвращает true, если doc-комментарий положил токены в очередь.
func (lx *Lexer) skipTrivia() bool {
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if sz > 0 && isWhitespaceRune(r) {
			lx.bumpRune()
			continue
		}
		switch {
		case lx.cursor.HasPrefix("//"):
			if lx.scanLineComment() {
				return true
			}
		case lx.cursor.HasPrefix("/*"):
			if lx.scanBlockComment() {
				return true
			}
		default:
			return false
		}
	}
	return false
}

func (lx *Lexer) skipPlainTrivia() {
	for lx.skipTrivia() {
	}
}

func (lx *Lexer) scanLineComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	inner := lx.cursor.Peek() == '!'
	outer := lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) != '/'
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if !inner && !outer {
		return false
	}
	sp := lx.cursor.SpanFrom(start)
	body := source.Span{File: sp.File, Start: sp.Start + 3, End: sp.End}
	lx.enqueueDoc(inner, sp, lx.text(body))
	return true
}

func (lx *Lexer) scanBlockComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)
	inner := b0 == '!'
	outer := b0 == '*' && b1 != '*' && b1 != '/'

	depth := 1
	for depth > 0 && !lx.cursor.EOF() {
		switch {
		case lx.cursor.HasPrefix("/*"):
			depth++
			lx.cursor.Bump()
			lx.cursor.Bump()
		case lx.cursor.HasPrefix("*/"):
			depth--
			lx.cursor.Bump()
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	bodyEnd := sp.End
	if depth > 0 {
		lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	} else {
		bodyEnd -= 2
	}
	if !inner && !outer {
		return false
	}
	if bodyEnd < sp.Start+3 {
		bodyEnd = sp.Start + 3
	}
	lx.enqueueDoc(inner, sp, lx.text(source.Span{File: sp.File, Start: sp.Start + 3, End: bodyEnd}))
	return true
}

// enqueueDoc desugars a doc comment into `#[doc = "..."]` or `#![doc = "..."]`.
// Every produced token carries the span of the whole comment.
func (lx *Lexer) enqueueDoc(inner bool, sp source.Span, body string) {
	if strings.IndexByte(body, '\r') >= 0 {
		lx.report(diag.LexBareCarriageReturn, sp, "bare CR not allowed in doc-comment")
	}
	lx.queue = append(lx.queue, leaf(token.NewPunct('#', token.Alone, sp)))
	if inner {
		lx.queue = append(lx.queue, leaf(token.NewPunct('!', token.Alone, sp)))
	}
	lx.queue = append(lx.queue,
		lexeme{role: roleOpen, delim: token.DelimBracket, span: sp},
		leaf(token.NewIdent("doc", sp)),
		leaf(token.NewPunct('=', token.Alone, sp)),
		leaf(token.NewLiteral(QuoteString(body), sp)),
		lexeme{role: roleClose, delim: token.DelimBracket, span: sp},
	)
}

// QuoteString renders s as a Rust string literal.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&sb, `\u{%x}`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
