package syntax

import (
	"strings"

	"rsmin/internal/token"
)

// Attr is one `#[...]` or `#![...]` attribute.
type Attr struct {
	Inner bool
	// Tokens holds '#', the optional '!' and the bracket group, as lexed.
	Tokens token.Stream
}

// Bracket returns the bracket group of the attribute.
func (a Attr) Bracket() token.Token {
	return a.Tokens[len(a.Tokens)-1]
}

// Path returns the attribute path, e.g. "doc", "deny" or "rustdoc::foo".
func (a Attr) Path() string {
	return PathText(a.Bracket().Stream)
}

// PathText renders the path at the start of ts: `ident (:: ident)*`, with an
// optional leading `::`.
func PathText(ts token.Stream) string {
	var sb strings.Builder
	for _, t := range ts[:pathLen(ts)] {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// pathLen returns the number of tokens in the path at the start of ts.
func pathLen(ts token.Stream) int {
	i := 0
	if isPathSep(ts, 0) {
		i = 2
	}
	for i < len(ts) && ts[i].Kind == token.Ident {
		if !isPathSep(ts, i+1) || i+3 >= len(ts) || ts[i+3].Kind != token.Ident {
			return i + 1
		}
		i += 3
	}
	return i
}

// ArgsIndex returns the index of the `(...)` group directly after the path
// inside the bracket, or -1.
func (a Attr) ArgsIndex() int {
	ts := a.Bracket().Stream
	n := pathLen(ts)
	if n < len(ts) && ts[n].IsGroup(token.DelimParen) {
		return n
	}
	return -1
}

// WithArgs returns a copy of the attribute whose argument group holds args.
func (a Attr) WithArgs(args token.Stream) Attr {
	idx := a.ArgsIndex()
	if idx < 0 {
		return a
	}
	br := a.Bracket()
	inner := make(token.Stream, len(br.Stream))
	copy(inner, br.Stream)
	inner[idx].Stream = args
	br.Stream = inner

	toks := make(token.Stream, len(a.Tokens))
	copy(toks, a.Tokens)
	toks[len(toks)-1] = br
	return Attr{Inner: a.Inner, Tokens: toks}
}

func isPathSep(ts token.Stream, i int) bool {
	return i+1 < len(ts) && ts[i].IsPunct(':') && ts[i].Spacing == token.Joint && ts[i+1].IsPunct(':')
}

// outerAttrs collects `#[...]` starting at i.
func outerAttrs(ts token.Stream, i int) ([]Attr, int) {
	var attrs []Attr
	for i+1 < len(ts) && ts[i].IsPunct('#') && ts[i+1].IsGroup(token.DelimBracket) {
		attrs = append(attrs, Attr{Tokens: ts[i : i+2 : i+2]})
		i += 2
	}
	return attrs, i
}

// innerAttrs collects `#![...]` starting at i.
func innerAttrs(ts token.Stream, i int) ([]Attr, int) {
	var attrs []Attr
	for i+2 < len(ts) && ts[i].IsPunct('#') && ts[i+1].IsPunct('!') && ts[i+2].IsGroup(token.DelimBracket) {
		attrs = append(attrs, Attr{Inner: true, Tokens: ts[i : i+3 : i+3]})
		i += 3
	}
	return attrs, i
}
