package token

import (
	"rsmin/internal/source"
)

// Token is one node of a token tree.
type Token struct {
	Kind Kind
	// Text holds identifier or literal text, or the single punctuation char.
	Text    string
	Delim   Delimiter
	Stream  Stream
	Spacing Spacing
	Span    source.Span
	// Close is the span of the closing delimiter of a group.
	Close source.Span
}

// Stream is a sequence of sibling tokens.
type Stream []Token

func NewIdent(text string, sp source.Span) Token {
	return Token{Kind: Ident, Text: text, Span: sp}
}

func NewLiteral(text string, sp source.Span) Token {
	return Token{Kind: Literal, Text: text, Span: sp}
}

func NewPunct(ch byte, spacing Spacing, sp source.Span) Token {
	return Token{Kind: Punct, Text: string(ch), Spacing: spacing, Span: sp}
}

func NewGroup(delim Delimiter, stream Stream, open, closing source.Span) Token {
	return Token{Kind: Group, Delim: delim, Stream: stream, Span: open, Close: closing}
}

// Char returns the punctuation character, or 0 for non-punct tokens.
func (t Token) Char() byte {
	if t.Kind != Punct || t.Text == "" {
		return 0
	}
	return t.Text[0]
}

// IsIdent reports whether the token is the identifier text.
func (t Token) IsIdent(text string) bool {
	return t.Kind == Ident && t.Text == text
}

// IsPunct reports whether the token is the punctuation char ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && t.Char() == ch
}

// IsGroup reports whether the token is a group with the given delimiter.
func (t Token) IsGroup(d Delimiter) bool {
	return t.Kind == Group && t.Delim == d
}

// IsWordLike reports whether the token is an identifier or a literal.
func (t Token) IsWordLike() bool {
	return t.Kind == Ident || t.Kind == Literal
}

// FullSpan covers the whole token including the closing delimiter of groups.
func (t Token) FullSpan() source.Span {
	if t.Kind == Group && t.Close.Valid() {
		return t.Span.Cover(t.Close)
	}
	return t.Span
}

// Len returns the number of tokens in the stream, counting group contents.
func (s Stream) Len() int {
	n := 0
	for i := range s {
		n++
		if s[i].Kind == Group {
			n += s[i].Stream.Len()
		}
	}
	return n
}

// Clone returns a deep copy of the stream.
func (s Stream) Clone() Stream {
	if s == nil {
		return nil
	}
	out := make(Stream, len(s))
	for i := range s {
		out[i] = s[i]
		if s[i].Kind == Group {
			out[i].Stream = s[i].Stream.Clone()
		}
	}
	return out
}
