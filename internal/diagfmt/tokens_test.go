package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rsmin/internal/diag"
	"rsmin/internal/lexer"
	"rsmin/internal/source"
)

func lexFile(t *testing.T, src string) (*source.FileSet, *lexer.Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(8)
	lx := lexer.New(fs.Get(fs.AddVirtual("t.rs", []byte(src))), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return fs, lx
}

func TestFormatTokensPretty(t *testing.T) {
	fs, lx := lexFile(t, "f(a+=1)")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, lx.Tree(), fs); err != nil {
		t.Fatal(err)
	}
	want := `Ident   "f" at 1:1-1:2
Group Parenthesis( at 1:2-1:3
  Ident   "a" at 1:3-1:4
  Punct "+" Joint at 1:4-1:5
  Punct "=" Alone at 1:5-1:6
  Literal "1" at 1:6-1:7
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, lx := lexFile(t, "{x}")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, lx.Tree()); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Delim != "Brace" || out[0].Span != (SpanJSON{Start: 0, End: 3}) {
		t.Fatalf("group = %+v", out)
	}
	if len(out[0].Children) != 1 || out[0].Children[0].Text != "x" {
		t.Errorf("children = %+v", out[0].Children)
	}
}
