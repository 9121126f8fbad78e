// Package docstrip removes documentation from an item tree.
//
// Doc comments reach the tree as `#[doc = "..."]` / `#![doc = "..."]`
// attributes, so dropping attributes whose path is `doc` removes both forms.
// Lint directives (`warn`, `deny`, `forbid`) lose their documentation lint
// entries but stay in place, possibly empty.
package docstrip

import (
	"rsmin/internal/source"
	"rsmin/internal/syntax"
	"rsmin/internal/token"
)

// docLints are the lint names removed from lint directives.
var docLints = map[string]struct{}{
	"missing_docs":                      {},
	"missing_crate_level_docs":          {},
	"rustdoc::missing_crate_level_docs": {},
}

// Strip rewrites f in place and returns it. Nodes are visited depth first,
// parents before children.
func Strip(f *syntax.File) *syntax.File {
	if f == nil {
		return nil
	}
	f.Attrs = stripAttrs(f.Attrs)
	stripItems(f.Items)
	return f
}

func stripItems(items []*syntax.Item) {
	for _, it := range items {
		stripItem(it)
	}
}

// stripItem rewrites the attributes of doc-carrying kinds. Blocks are
// walked for every kind, so items nested in statement or initializer blocks
// are reached too.
func stripItem(it *syntax.Item) {
	if carriesDocs(it.Kind) {
		it.Attrs = stripAttrs(it.Attrs)
	}
	for _, b := range it.Blocks() {
		b.Attrs = stripAttrs(b.Attrs)
		stripItems(b.Items)
	}
}

// carriesDocs reports whether attributes of the node kind are rewritten.
func carriesDocs(k syntax.Kind) bool {
	switch k {
	case syntax.Mod, syntax.Fn, syntax.Struct, syntax.Enum, syntax.Union,
		syntax.Trait, syntax.TraitAlias, syntax.Impl, syntax.TypeAlias,
		syntax.Const, syntax.Static, syntax.Use, syntax.ExternCrate,
		syntax.ForeignMod, syntax.MacroRules, syntax.MacroCall,
		syntax.Field, syntax.Variant:
		return true
	case syntax.Stmt, syntax.Verbatim:
		return false
	}
	return false
}

func stripAttrs(attrs []syntax.Attr) []syntax.Attr {
	if len(attrs) == 0 {
		return attrs
	}
	out := make([]syntax.Attr, 0, len(attrs))
	for _, a := range attrs {
		switch a.Path() {
		case "doc":
			continue
		case "warn", "deny", "forbid":
			a = stripLints(a)
		}
		out = append(out, a)
	}
	return out
}

// stripLints drops documentation lints from `level(a, b, ...)`. Remaining
// entries keep their tokens and order; a trailing comma survives only when
// entries remain.
func stripLints(a syntax.Attr) syntax.Attr {
	idx := a.ArgsIndex()
	if idx < 0 {
		return a
	}
	args := a.Bracket().Stream[idx].Stream
	entries, trailing := splitEntries(args)

	kept := make([]token.Stream, 0, len(entries))
	for _, e := range entries {
		if name, ok := entryName(e); ok {
			if _, doc := docLints[name]; doc {
				continue
			}
		}
		kept = append(kept, e)
	}
	if len(kept) == len(entries) {
		return a
	}

	var out token.Stream
	for i, e := range kept {
		if i > 0 {
			out = append(out, comma)
		}
		out = append(out, e...)
	}
	if trailing && len(kept) > 0 {
		out = append(out, comma)
	}
	return a.WithArgs(out)
}

var comma = token.NewPunct(',', token.Alone, source.Span{})

// splitEntries splits a comma separated list; trailing reports a comma after
// the last entry.
func splitEntries(ts token.Stream) (entries []token.Stream, trailing bool) {
	start := 0
	for i := range ts {
		if ts[i].IsPunct(',') {
			entries = append(entries, ts[start:i])
			start = i + 1
		}
	}
	if start < len(ts) {
		entries = append(entries, ts[start:])
		return entries, false
	}
	return entries, len(entries) > 0
}

// entryName returns the lint path of an entry made only of a path.
func entryName(e token.Stream) (string, bool) {
	if len(e) == 0 {
		return "", false
	}
	name := syntax.PathText(e)
	n := 0
	for _, t := range e {
		n += len(t.Text)
		if t.Kind == token.Group || t.Kind == token.Literal {
			return "", false
		}
	}
	return name, n == len(name)
}
