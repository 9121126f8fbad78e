package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rsmin/internal/source"
	"rsmin/internal/token"
)

type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

type TokenOutput struct {
	Kind     string        `json:"kind"`
	Text     string        `json:"text,omitempty"`
	Delim    string        `json:"delim,omitempty"`
	Spacing  string        `json:"spacing,omitempty"`
	Span     SpanJSON      `json:"span"`
	Children []TokenOutput `json:"children,omitempty"`
}

// FormatTokensPretty печатает дерево токенов, по строке на токен, с отступом по вложенности.
func FormatTokensPretty(w io.Writer, tokens token.Stream, fs *source.FileSet) error {
	return writeTokens(w, tokens, fs, 0)
}

func writeTokens(w io.Writer, tokens token.Stream, fs *source.FileSet, depth int) error {
	indent := strings.Repeat("  ", depth)
	for i := range tokens {
		tok := &tokens[i]
		var desc string
		switch tok.Kind {
		case token.Group:
			desc = fmt.Sprintf("Group %s%s", tok.Delim, tok.Delim.Open())
		case token.Punct:
			desc = fmt.Sprintf("Punct %q %s", tok.Text, tok.Spacing)
		default:
			desc = fmt.Sprintf("%-7s %q", tok.Kind, tok.Text)
		}
		if _, err := fmt.Fprintf(w, "%s%s at %s\n", indent, desc, position(fs, tok.Span)); err != nil {
			return err
		}
		if tok.Kind == token.Group {
			if err := writeTokens(w, tok.Stream, fs, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func position(fs *source.FileSet, sp source.Span) string {
	if !resolvable(fs, sp) {
		return "-"
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

// FormatTokensJSON выводит дерево токенов в JSON формате
func FormatTokensJSON(w io.Writer, tokens token.Stream) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tokensJSON(tokens))
}

func tokensJSON(tokens token.Stream) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for i := range tokens {
		tok := &tokens[i]
		o := TokenOutput{
			Kind: tok.Kind.String(),
		}
		full := tok.FullSpan()
		o.Span = SpanJSON{Start: full.Start, End: full.End}
		switch tok.Kind {
		case token.Group:
			o.Delim = tok.Delim.String()
			o.Children = tokensJSON(tok.Stream)
		case token.Punct:
			o.Text = tok.Text
			o.Spacing = tok.Spacing.String()
		default:
			o.Text = tok.Text
		}
		out = append(out, o)
	}
	return out
}
