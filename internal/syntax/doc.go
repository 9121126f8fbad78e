// Package syntax groups a token tree into items.
//
// The item tree is deliberately shallow: it only knows where items begin and
// end, which attributes belong to them, and which brace, paren or bracket
// groups hold nested item, statement, field or variant lists. Everything else
// stays as raw tokens in Item.Body, so Flatten(Parse(s)) reproduces s exactly.
//
// Parse never fails. Token sequences that do not start a recognised item
// become Verbatim items; non-item statements in function bodies become Stmt.
// Brace groups inside a Stmt or a const/static initializer are parsed as
// statement lists too, except macro arguments.
package syntax
