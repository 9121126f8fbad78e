package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"rsmin/internal/diag"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

type role uint8

const (
	roleLeaf role = iota
	roleOpen
	roleClose
)

// lexeme is one flat lexer output: a leaf token or a delimiter.
type lexeme struct {
	role  role
	tok   token.Token
	delim token.Delimiter
	span  source.Span
}

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	queue   []lexeme // токены, порождённые doc-комментариями
	shebang string
	errors  int
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	if sb := Shebang(file.Content); sb != "" && !opts.Fragment {
		off, err := safecast.Conv[uint32](len(sb))
		if err != nil {
			panic(fmt.Errorf("shebang length overflow: %w", err))
		}
		lx.shebang = sb
		lx.cursor.Off = off
	}
	return lx
}

// Lex tokenizes the whole file into a token tree. Problems are reported
// through opts.Reporter; lexing never aborts.
func Lex(file *source.File, opts Options) token.Stream {
	return New(file, opts).Tree()
}

// Shebang returns the leading `#!` line of content without its newline, or "".
// `#![` starts an inner attribute, not a shebang, even across whitespace and
// comments.
func Shebang(content []byte) string {
	if len(content) < 2 || content[0] != '#' || content[1] != '!' {
		return ""
	}
	probe := &Lexer{file: &source.File{Content: content}}
	probe.cursor = NewCursor(probe.file)
	probe.cursor.Off = 2
	probe.skipPlainTrivia()
	if probe.cursor.Peek() == '[' {
		return ""
	}
	end := len(content)
	for i := 2; i < len(content); i++ {
		if content[i] == '\n' {
			end = i
			break
		}
	}
	return string(content[:end])
}

// Shebang returns the shebang line skipped by the lexer.
func (lx *Lexer) Shebang() string { return lx.shebang }

// ErrorCount returns the number of errors reported so far.
func (lx *Lexer) ErrorCount() int { return lx.errors }

// next возвращает следующую лексему; false после EOF.
func (lx *Lexer) next() (lexeme, bool) {
	for {
		if len(lx.queue) > 0 {
			l := lx.queue[0]
			lx.queue = lx.queue[1:]
			return l, true
		}
		if lx.skipTrivia() {
			continue
		}
		break
	}
	if lx.cursor.EOF() {
		return lexeme{}, false
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '(' || ch == '[' || ch == '{':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		d, _ := token.DelimiterFor(ch)
		return lexeme{role: roleOpen, delim: d, span: lx.cursor.SpanFrom(start)}, true

	case ch == ')' || ch == ']' || ch == '}':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		d, _ := token.DelimiterFor(ch)
		return lexeme{role: roleClose, delim: d, span: lx.cursor.SpanFrom(start)}, true

	case isDec(ch):
		return leaf(lx.scanNumber()), true

	case ch == '"':
		return leaf(lx.scanString(lx.cursor.Mark())), true

	case ch == '\'':
		return leaf(lx.scanQuote()), true

	case isIdentStartByte(ch) || (ch >= 0x80 && lx.isIdentStartAt(lx.cursor.Off)):
		return leaf(lx.scanIdentOrPrefixed()), true

	case token.IsPunctChar(ch):
		return leaf(lx.scanPunct()), true
	}

	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unknown character "+quoteText(lx.text(sp)))
	return lx.next()
}

func leaf(t token.Token) lexeme {
	return lexeme{role: roleLeaf, tok: t}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func quoteText(s string) string {
	return "'" + s + "'"
}
