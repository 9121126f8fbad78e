// Package token defines the token tree produced by the lexer.
// Invariants:
//   - A Token is exactly one of Group, Ident, Literal or Punct.
//   - Punct carries a single ASCII character from PunctChars; multi-char
//     operators are sequences of Punct tokens glued with Joint spacing.
//   - Group.Span covers the opening delimiter, Group.Close the closing one.
//     Invisible groups (DelimNone) have no delimiter text.
//   - Tokens built by hand (tests, rewrites) carry the zero span and are
//     never adjacent to anything.
package token
