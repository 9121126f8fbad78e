package minify

import (
	"strings"

	"rsmin/internal/source"
	"rsmin/internal/token"
)

type stateKind uint8

const (
	stateEmpty stateKind = iota
	stateWord
	statePunct
)

// state of the serializer between two tokens of one sequence.
type state struct {
	kind stateKind
	// run is the pending punctuation, not yet written.
	run []byte
	// pos is the span of the first char of run.
	pos     source.Span
	spacing token.Spacing
}

type serializer struct {
	sb strings.Builder
}

// Serialize renders s with the least whitespace the lexer needs to tell the
// tokens apart. The result is a candidate: Minify checks it with Verify.
func Serialize(s token.Stream) string {
	var z serializer
	z.stream(s)
	return z.sb.String()
}

func (z *serializer) stream(s token.Stream) {
	var st state
	for i := range s {
		st = z.token(st, &s[i])
	}
	z.flush(st)
}

func (z *serializer) flush(st state) {
	if st.kind == statePunct {
		z.sb.Write(st.run)
	}
}

func (z *serializer) token(st state, t *token.Token) state {
	switch t.Kind {
	case token.Group:
		z.flush(st)
		if t.Delim == token.DelimNone {
			z.sb.WriteByte(' ')
		} else {
			z.sb.WriteString(t.Delim.Open())
		}
		z.stream(t.Stream)
		if t.Delim == token.DelimNone {
			z.sb.WriteByte(' ')
		} else {
			z.sb.WriteString(t.Delim.Close())
		}
		return state{}

	case token.Ident, token.Literal:
		text := t.Text
		next := state{kind: stateWord}
		if t.Kind == token.Literal && isTrailingDotNumber(text) {
			text = text[:len(text)-1]
			next = state{kind: statePunct, run: []byte{'.'}, pos: t.Span.Last(), spacing: token.Alone}
		}
		switch st.kind {
		case stateWord:
			z.sb.WriteByte(' ')
		case statePunct:
			z.flush(st)
		}
		z.sb.WriteString(text)
		return next

	case token.Punct:
		c := t.Char()
		if st.kind != statePunct {
			return state{kind: statePunct, run: []byte{c}, pos: t.Span, spacing: t.Spacing}
		}
		if st.spacing == token.Joint {
			st.run = append(st.run, c)
			st.spacing = t.Spacing
			return st
		}
		z.flush(st)
		if !st.pos.Adjacent(t.Span) && Ambiguous(string(st.run), c) {
			z.sb.WriteByte(' ')
		}
		return state{kind: statePunct, run: []byte{c}, pos: t.Span, spacing: t.Spacing}
	}
	return st
}

// isTrailingDotNumber matches numeric literals like `1.`.
func isTrailingDotNumber(text string) bool {
	return len(text) > 1 && text[0] >= '0' && text[0] <= '9' && text[len(text)-1] == '.'
}
