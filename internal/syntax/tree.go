package syntax

import (
	"rsmin/internal/source"
	"rsmin/internal/token"
)

// File is a parsed source file.
type File struct {
	// Shebang is the `#!` line skipped by the lexer; it is not part of Flatten.
	Shebang string
	// Attrs are the crate-level inner attributes (`#![...]`).
	Attrs []Attr
	Items []*Item
}

// Item is one item, statement, field or variant with its outer attributes.
type Item struct {
	Kind  Kind
	Attrs []Attr
	Body  []Elem
}

// Elem is either a plain token or a group that was parsed into a Block.
type Elem struct {
	Tok   token.Token
	Block *Block
}

// Block is a delimited group holding a nested list.
type Block struct {
	Delim token.Delimiter
	Open  source.Span
	Close source.Span
	// Attrs are the inner attributes at the start of an item or statement list.
	Attrs []Attr
	Items []*Item
}

// Flatten turns the item tree back into a token tree.
func (f *File) Flatten() token.Stream {
	var out token.Stream
	out = appendAttrs(out, f.Attrs)
	for _, it := range f.Items {
		out = it.appendTokens(out)
	}
	return out
}

// Flatten returns the tokens of a single item.
func (it *Item) Flatten() token.Stream {
	return it.appendTokens(nil)
}

func (it *Item) appendTokens(out token.Stream) token.Stream {
	out = appendAttrs(out, it.Attrs)
	for _, e := range it.Body {
		if e.Block != nil {
			out = append(out, e.Block.Token())
			continue
		}
		out = append(out, e.Tok)
	}
	return out
}

// Token rebuilds the group token of the block.
func (b *Block) Token() token.Token {
	var inner token.Stream
	inner = appendAttrs(inner, b.Attrs)
	for _, it := range b.Items {
		inner = it.appendTokens(inner)
	}
	return token.NewGroup(b.Delim, inner, b.Open, b.Close)
}

func appendAttrs(out token.Stream, attrs []Attr) token.Stream {
	for _, a := range attrs {
		out = append(out, a.Tokens...)
	}
	return out
}

// Blocks returns the nested blocks of the item in order.
func (it *Item) Blocks() []*Block {
	var out []*Block
	for _, e := range it.Body {
		if e.Block != nil {
			out = append(out, e.Block)
		}
	}
	return out
}
