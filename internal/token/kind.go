package token

// Kind represents the category of a token tree node.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	Group
	Ident
	Literal
	Punct
)

func (k Kind) String() string {
	switch k {
	case Group:
		return "Group"
	case Ident:
		return "Ident"
	case Literal:
		return "Literal"
	case Punct:
		return "Punct"
	}
	return "Invalid"
}

// Delimiter of a group.
type Delimiter uint8

const (
	// DelimNone is an invisible group.
	DelimNone Delimiter = iota
	DelimParen
	DelimBrace
	DelimBracket
)

// Open returns the opening delimiter text.
func (d Delimiter) Open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	}
	return ""
}

// Close returns the closing delimiter text.
func (d Delimiter) Close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBrace:
		return "}"
	case DelimBracket:
		return "]"
	}
	return ""
}

func (d Delimiter) String() string {
	switch d {
	case DelimParen:
		return "Parenthesis"
	case DelimBrace:
		return "Brace"
	case DelimBracket:
		return "Bracket"
	}
	return "None"
}

// DelimiterFor maps an opening or closing byte to its delimiter.
func DelimiterFor(b byte) (Delimiter, bool) {
	switch b {
	case '(', ')':
		return DelimParen, true
	case '{', '}':
		return DelimBrace, true
	case '[', ']':
		return DelimBracket, true
	}
	return DelimNone, false
}

// Spacing tells whether a punctuation char is glued to the following one.
type Spacing uint8

const (
	Alone Spacing = iota
	Joint
)

func (s Spacing) String() string {
	if s == Joint {
		return "Joint"
	}
	return "Alone"
}

// PunctChars lists every character that lexes as a Punct token.
const PunctChars = "~!@#$%^&*-=+|;:,<.>/?'"

// IsPunctChar reports whether b is one of PunctChars.
func IsPunctChar(b byte) bool {
	switch b {
	case '~', '!', '@', '#', '$', '%', '^', '&', '*', '-', '=', '+', '|',
		';', ':', ',', '<', '.', '>', '/', '?', '\'':
		return true
	}
	return false
}
