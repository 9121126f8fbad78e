package syntax

import (
	"rsmin/internal/token"
)

// Parse builds the item tree of a file from its token tree.
func Parse(ts token.Stream) *File {
	attrs, i := innerAttrs(ts, 0)
	return &File{Attrs: attrs, Items: parseItems(ts[i:])}
}

type listMode uint8

const (
	modeItems listMode = iota
	modeStmts
)

// parseItems parses a module-level item list.
func parseItems(ts token.Stream) []*Item {
	return parseList(ts, modeItems)
}

// parseStmts parses a function body: nested items plus statements.
func parseStmts(ts token.Stream) []*Item {
	return parseList(ts, modeStmts)
}

func parseList(ts token.Stream, mode listMode) []*Item {
	var items []*Item
	i := 0
	for i < len(ts) {
		attrs, j := outerAttrs(ts, i)
		if j >= len(ts) {
			items = append(items, &Item{Kind: danglingKind(mode), Attrs: attrs})
			break
		}
		it, end := parseItem(ts, j, mode)
		it.Attrs = attrs
		items = append(items, it)
		i = end
	}
	return items
}

func danglingKind(mode listMode) Kind {
	if mode == modeStmts {
		return Stmt
	}
	return Verbatim
}

// parseItem parses the item or statement starting at i and returns the index
// just past it.
func parseItem(ts token.Stream, i int, mode listMode) (*Item, int) {
	kind, kw, ok := classify(ts, i, mode == modeStmts)
	if !ok {
		var end int
		if mode == modeStmts {
			kind, end = Stmt, stmtEnd(ts, i)
		} else {
			kind, end = Verbatim, scanEnd(ts, i, true)
		}
		it := &Item{Kind: kind, Body: plain(ts[i:end])}
		if kind == Stmt {
			exprBlocks(it.Body)
		}
		return it, end
	}

	var end int
	switch kind {
	case Const, Static, TypeAlias, Use, ExternCrate:
		end = scanEnd(ts, kw, false)
	case MacroRules, MacroCall:
		end = macroEnd(ts, kw)
	case Trait:
		end = scanEnd(ts, kw, true)
		if hasTopLevelEq(ts[kw:end]) {
			kind, end = TraitAlias, scanEnd(ts, kw, false)
		}
	default:
		end = scanEnd(ts, kw, true)
	}

	it := &Item{Kind: kind, Body: plain(ts[i:end])}
	last := len(it.Body) - 1
	switch kind {
	case Mod, Impl, Trait, ForeignMod:
		if last >= 0 && it.Body[last].Tok.IsGroup(token.DelimBrace) {
			it.Body[last] = itemBlock(it.Body[last].Tok, parseItems)
		}
	case Fn:
		if last >= 0 && it.Body[last].Tok.IsGroup(token.DelimBrace) {
			it.Body[last] = itemBlock(it.Body[last].Tok, parseStmts)
		}
	case Struct, Union:
		if last >= 0 && it.Body[last].Tok.IsGroup(token.DelimBrace) {
			it.Body[last] = fieldBlock(it.Body[last].Tok, Field)
		} else if k := tupleFields(it.Body[kw-i:]); k >= 0 {
			k += kw - i
			it.Body[k] = fieldBlock(it.Body[k].Tok, Field)
		}
	case Enum:
		if last >= 0 && it.Body[last].Tok.IsGroup(token.DelimBrace) {
			it.Body[last] = fieldBlock(it.Body[last].Tok, Variant)
		}
	case Const, Static:
		exprBlocks(it.Body[kw-i:])
	}
	return it, end
}

// exprBlocks parses the brace groups of an expression as statement lists, so
// `const _: () = { .. };` or `if c { .. }` expose their nested items. Paren,
// bracket and invisible groups holding a brace group become a Block with a
// single Stmt. Macro arguments and attribute contents stay raw.
func exprBlocks(body []Elem) {
	for k := range body {
		t := body[k].Tok
		if body[k].Block != nil || t.Kind != token.Group || rawGroup(body, k) {
			continue
		}
		if t.Delim == token.DelimBrace {
			body[k] = itemBlock(t, parseStmts)
			continue
		}
		if !hasBrace(t.Stream) {
			continue
		}
		inner := plain(t.Stream)
		exprBlocks(inner)
		body[k] = Elem{Block: &Block{
			Delim: t.Delim,
			Open:  t.Span,
			Close: t.Close,
			Items: []*Item{{Kind: Stmt, Body: inner}},
		}}
	}
}

// rawGroup reports a macro argument (`m!(..)`) or an attribute body (`#[..]`).
func rawGroup(body []Elem, k int) bool {
	if k == 0 || body[k-1].Block != nil {
		return false
	}
	prev := body[k-1].Tok
	return prev.IsPunct('!') || (prev.IsPunct('#') && body[k].Tok.Delim == token.DelimBracket)
}

func hasBrace(ts token.Stream) bool {
	for _, t := range ts {
		if t.Kind != token.Group {
			continue
		}
		if t.Delim == token.DelimBrace || hasBrace(t.Stream) {
			return true
		}
	}
	return false
}

func plain(ts token.Stream) []Elem {
	out := make([]Elem, len(ts))
	for i := range ts {
		out[i] = Elem{Tok: ts[i]}
	}
	return out
}

func itemBlock(g token.Token, parse func(token.Stream) []*Item) Elem {
	attrs, i := innerAttrs(g.Stream, 0)
	return Elem{Block: &Block{
		Delim: g.Delim,
		Open:  g.Span,
		Close: g.Close,
		Attrs: attrs,
		Items: parse(g.Stream[i:]),
	}}
}

func fieldBlock(g token.Token, kind Kind) Elem {
	return Elem{Block: &Block{
		Delim: g.Delim,
		Open:  g.Span,
		Close: g.Close,
		Items: parseFields(g.Stream, kind),
	}}
}

// parseFields splits a comma separated field or variant list. The separating
// comma stays in the body of the entry before it.
func parseFields(ts token.Stream, kind Kind) []*Item {
	var items []*Item
	i := 0
	for i < len(ts) {
		attrs, j := outerAttrs(ts, i)
		end := commaEnd(ts, j)
		it := &Item{Kind: kind, Attrs: attrs, Body: plain(ts[j:end])}
		if kind == Variant {
			variantFields(it)
		}
		items = append(items, it)
		i = end
	}
	return items
}

// variantFields parses `Name { .. }` and `Name(..)` payloads.
func variantFields(it *Item) {
	for k, e := range it.Body {
		if e.Tok.Kind == token.Ident {
			continue
		}
		if e.Tok.IsGroup(token.DelimBrace) || e.Tok.IsGroup(token.DelimParen) {
			it.Body[k] = fieldBlock(e.Tok, Field)
		}
		return
	}
}

// tupleFields finds the `(..)` field group of a tuple struct outside of any
// generic argument list.
func tupleFields(body []Elem) int {
	depth := 0
	for k, e := range body {
		t := e.Tok
		switch {
		case t.IsPunct('<'):
			depth++
		case t.IsPunct('>') && !isArrowHead(body, k):
			if depth > 0 {
				depth--
			}
		case t.IsIdent("where"):
			return -1
		case depth == 0 && t.IsGroup(token.DelimParen):
			return k
		}
	}
	return -1
}

func isArrowHead(body []Elem, k int) bool {
	return k > 0 && body[k-1].Tok.IsPunct('-') && body[k-1].Tok.Spacing == token.Joint
}

// commaEnd returns the index past the next comma at nesting depth zero.
// Generic arguments count as nesting until a top-level '=' starts an
// expression (enum discriminants, field defaults).
func commaEnd(ts token.Stream, i int) int {
	depth := 0
	angles := true
	for k := i; k < len(ts); k++ {
		t := ts[k]
		if t.Kind != token.Punct {
			continue
		}
		switch t.Char() {
		case '<':
			if angles {
				depth++
			}
		case '>':
			if angles && depth > 0 && !(k > 0 && ts[k-1].IsPunct('-') && ts[k-1].Spacing == token.Joint) {
				depth--
			}
		case '=':
			if depth == 0 {
				angles = false
			}
		case ',':
			if depth == 0 {
				return k + 1
			}
		}
	}
	return len(ts)
}

// scanEnd returns the index past the first top-level ';', or past the first
// brace group when braceEnds is set.
func scanEnd(ts token.Stream, i int, braceEnds bool) int {
	for k := i; k < len(ts); k++ {
		if ts[k].IsPunct(';') {
			return k + 1
		}
		if braceEnds && ts[k].IsGroup(token.DelimBrace) {
			return k + 1
		}
	}
	return len(ts)
}

// macroEnd handles `path!(..);`, `path![..];`, `path!{..}` and
// `macro_rules! name {..}`.
func macroEnd(ts token.Stream, i int) int {
	g := i + pathLen(ts[i:]) + 1 // past '!'
	if g < len(ts) && ts[g].Kind == token.Ident {
		g++
	}
	if g >= len(ts) {
		return len(ts)
	}
	end := g + 1
	if end < len(ts) && ts[end].IsPunct(';') {
		end++
	}
	return end
}

func hasTopLevelEq(ts token.Stream) bool {
	for k := range ts {
		if ts[k].IsGroup(token.DelimBrace) {
			return false
		}
		if ts[k].IsPunct('=') {
			return true
		}
	}
	return false
}

// stmtEnd finds the end of a non-item statement: a ';', or a brace group that
// is not continued by `else`, `as`, '.', '?' or a binary operator.
// `let` statements always run to their ';'.
func stmtEnd(ts token.Stream, i int) int {
	if ts[i].IsIdent("let") {
		return scanEnd(ts, i, false)
	}
	for k := i; k < len(ts); k++ {
		t := ts[k]
		if t.IsPunct(';') {
			return k + 1
		}
		if !t.IsGroup(token.DelimBrace) {
			continue
		}
		if k+1 >= len(ts) {
			return len(ts)
		}
		next := ts[k+1]
		switch {
		case next.IsPunct(';'):
			return k + 2
		case continuesExpr(next):
			continue
		default:
			return k + 1
		}
	}
	return len(ts)
}

func continuesExpr(t token.Token) bool {
	switch t.Kind {
	case token.Ident:
		return t.Text == "else" || t.Text == "as"
	case token.Punct:
		switch t.Char() {
		case '.', '?', '+', '-', '*', '/', '%', '^', '&', '|', '=', '<', '>', '!':
			return true
		}
	}
	return false
}
