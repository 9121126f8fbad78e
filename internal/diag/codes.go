package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadRawString             Code = 1006
	LexUnclosedDelimiter        Code = 1007
	LexUnexpectedCloser         Code = 1008
	LexMismatchedDelimiter      Code = 1009
	LexBareCarriageReturn       Code = 1010

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadRawString:             "Malformed raw string literal",
	LexUnclosedDelimiter:        "Unclosed delimiter",
	LexUnexpectedCloser:         "Unexpected closing delimiter",
	LexMismatchedDelimiter:      "Mismatched closing delimiter",
	LexBareCarriageReturn:       "Bare carriage return",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
