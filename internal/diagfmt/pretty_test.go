package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"rsmin/internal/diag"
	"rsmin/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.rs", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.rs:1:9"},
		{"relative", PathModeRelative, "src/test.rs:1:9"},
		{"basename", PathModeBasename, "test.rs:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			out := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPrettyCaretAndContext(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("fn f() {\n\tlet s = 日@;\n}\n")
	id := fs.AddVirtual("a.rs", content)
	start := uint32(strings.Index(string(content), "@"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: id, Start: start, End: start + 1}, "unknown character"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	want := "a.rs:2:13: ERROR LEX1001: unknown character\n" +
		"1 | fn f() {\n" +
		"2 |     let s = 日@;\n" +
		"  | " + strings.Repeat(" ", 14) + "^\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyMultiByteUnderline(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("b.rs", []byte("x = \"日本\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: 4, End: 11}, "unterminated"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 || lines[2] != "  |     ^~~~~" {
		t.Errorf("underline = %q", lines)
	}
}

func TestPrettyNotesAndUnlocated(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.rs", []byte("(]\n"))

	bag := diag.NewBag(4)
	d := diag.NewError(diag.LexMismatchedDelimiter, source.Span{File: id, Start: 1, End: 2}, "mismatched closing delimiter `]`").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "unclosed delimiter")
	bag.Add(d)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: missing.rs"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()
	for _, want := range []string{
		"c.rs:1:2: ERROR LEX1009",
		"  note: c.rs:1:1: unclosed delimiter",
		"ERROR IO4001: failed to load file: missing.rs\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", buf.String())
	}
}
