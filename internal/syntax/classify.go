package syntax

import (
	"rsmin/internal/token"
)

// classify reports the kind of item starting at ts[i] and the index of its
// introducing keyword (or macro path) after visibility and qualifiers.
// In statement position expression forms such as `unsafe {}`, `const {}`,
// `async move {}` and macro calls used as expressions are not items.
func classify(ts token.Stream, i int, stmt bool) (Kind, int, bool) {
	at := func(k int) token.Token {
		if k < len(ts) {
			return ts[k]
		}
		return token.Token{}
	}

	j := i
	if at(j).IsIdent("pub") {
		j++
		if at(j).IsGroup(token.DelimParen) {
			j++
		}
	}
qualifiers:
	for {
		t, n := at(j), at(j+1)
		switch {
		case isQualifier(t) && n.Kind == token.Ident && !n.IsIdent("move"):
			j++
		case t.IsIdent("const") && (n.IsIdent("fn") || n.IsIdent("unsafe") || n.IsIdent("async") || n.IsIdent("extern")):
			j++
		case t.IsIdent("extern") && n.Kind == token.Literal && (at(j+2).IsIdent("fn") || at(j+2).IsIdent("unsafe")):
			j += 2
		case t.IsIdent("extern") && n.IsIdent("fn"):
			j++
		default:
			break qualifiers
		}
	}

	t, n := at(j), at(j+1)
	if t.Kind != token.Ident {
		return Verbatim, j, false
	}
	switch t.Text {
	case "fn":
		return Fn, j, true
	case "mod":
		return Mod, j, true
	case "struct":
		return Struct, j, true
	case "enum":
		return Enum, j, true
	case "trait":
		return Trait, j, true
	case "impl":
		return Impl, j, true
	case "type":
		return TypeAlias, j, true
	case "use":
		return Use, j, true
	case "union":
		if n.Kind == token.Ident {
			return Union, j, true
		}
	case "const":
		if n.Kind == token.Ident {
			return Const, j, true
		}
	case "static":
		if n.Kind == token.Ident && !n.IsIdent("move") {
			return Static, j, true
		}
	case "extern":
		if n.IsIdent("crate") {
			return ExternCrate, j, true
		}
		if n.IsGroup(token.DelimBrace) || (n.Kind == token.Literal && at(j+2).IsGroup(token.DelimBrace)) {
			return ForeignMod, j, true
		}
	case "macro_rules":
		if n.IsPunct('!') {
			return MacroRules, j, true
		}
	}
	if j == i && isMacroCall(ts, j, stmt) {
		return MacroCall, j, true
	}
	return Verbatim, j, false
}

func isQualifier(t token.Token) bool {
	if t.Kind != token.Ident {
		return false
	}
	switch t.Text {
	case "unsafe", "async", "default", "safe", "auto":
		return true
	}
	return false
}

// isMacroCall matches `path ! group`. In statement position only calls that
// stand alone (brace body, or followed by ';') count.
func isMacroCall(ts token.Stream, i int, stmt bool) bool {
	p := i + pathLen(ts[i:])
	if p == i || p+1 >= len(ts) || !ts[p].IsPunct('!') || ts[p].Spacing == token.Joint {
		return false
	}
	g := ts[p+1]
	if g.Kind != token.Group {
		return false
	}
	if !stmt || g.Delim == token.DelimBrace {
		return true
	}
	return p+2 < len(ts) && ts[p+2].IsPunct(';')
}
