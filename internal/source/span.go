package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Valid reports whether the span points at real source text.
// Synthetic tokens carry the zero span and are never valid.
func (s Span) Valid() bool {
	return s.File != 0 || s.End > s.Start
}

// Adjacent reports whether next starts exactly where s ends, with no byte in
// between. Invalid spans are never adjacent to anything.
func (s Span) Adjacent(next Span) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return s.File == next.File && s.End == next.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Last returns the one-byte span of the final byte of s.
func (s Span) Last() Span {
	if s.Empty() {
		return s
	}
	return Span{File: s.File, Start: s.End - 1, End: s.End}
}
