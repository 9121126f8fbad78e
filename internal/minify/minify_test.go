package minify_test

import (
	"testing"

	"rsmin/internal/diag"
	"rsmin/internal/lexer"
	"rsmin/internal/minify"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

func lexString(t *testing.T, input string) token.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(input))
	bag := diag.NewBag(16)
	s := lexer.Lex(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("lex errors in %q: %v", input, bag.Items())
	}
	return s
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"joint_add_deref", "a + *b", "a+*b"},
		{"joint_add_not", "a + !b", "a+!b"},
		{"joint_add_neg", "a + -b", "a+-b"},
		{"joint_add_reference", "a + &b", "a+&b"},
		{"joint_andand_reference", "a && &b", "a&&&b"},
		{"space_and_reference", "a & &b", "a& &b"},
		{"space_le_neg", "a < -b", "a< -b"},
		{"space_dec_point_range", "0. ..1.", "0. ..1."},
		{"zero_arg_closure", "x | || ()", "x| ||()"},
		{"println", `println!("{}", 2 * 2 + 1)`, `println!("{}",2*2+1)`},
		{"macro_rules", "macro_rules! m { ($($_:tt)*) => {}; }", "macro_rules!m{($($_:tt)*)=>{};}"},
		{"match_arms", "'a' => 1,\n'b' => 2,", "'a'=>1,'b'=>2,"},
		{"module", `mod a { fn hello() -> &'static str { "Hello" } }`, `mod a{fn hello()->&'static str{"Hello"}}`},
		{"words", "pub   fn\n\tf", "pub fn f"},
		{"comments", "a /* x */ + // y\n b", "a+b"},
		{"split_by_comment", "a -/**/> b", "a- >b"},
		{"range_inclusive", "0 ..= 1", "0..=1"},
		{"path", "std :: io :: stdin ()", "std::io::stdin()"},
		{"shift_assign", "x <<= 1 ; y >>= 2", "x<<=1;y>>=2"},
		{"generic_close", "Vec<Vec<u8>> = x", "Vec<Vec<u8>> =x"},
		{"doc_attr", "/// hi\nfn f() {}", `#[doc=" hi"]fn f(){}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := minify.Run(lexString(t, tt.input))
			if got.Text != tt.want {
				t.Errorf("Minify(%q) = %q, want %q", tt.input, got.Text, tt.want)
			}
			if got.Fallback {
				t.Errorf("unexpected fallback for %q", tt.input)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"raw_ident_merge", "r # x", "r # x"},
		{"float_then_ident", "1. e3", "1. e3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := lexString(t, tt.input)
			got := minify.Run(s)
			if !got.Fallback {
				t.Fatalf("expected fallback, got %q", got.Text)
			}
			if got.Text != tt.want {
				t.Errorf("fallback = %q, want %q", got.Text, tt.want)
			}
			if !minify.Verify(got.Text, s) {
				t.Errorf("fallback %q does not re-lex to the input", got.Text)
			}
		})
	}
}

func TestAdjacencyFromSpans(t *testing.T) {
	lt := func(sp source.Span) token.Token { return token.NewPunct('<', token.Alone, sp) }
	eq := func(sp source.Span) token.Token { return token.NewPunct('=', token.Alone, sp) }

	synthetic := token.Stream{lt(source.Span{}), eq(source.Span{})}
	if got := minify.Serialize(synthetic); got != "< =" {
		t.Errorf("synthetic tokens: got %q", got)
	}

	adjacent := token.Stream{
		lt(source.Span{File: 1, Start: 0, End: 1}),
		eq(source.Span{File: 1, Start: 1, End: 2}),
	}
	if got := minify.Serialize(adjacent); got != "<=" {
		t.Errorf("adjacent tokens: got %q", got)
	}
}

func TestSerializeInvisibleGroup(t *testing.T) {
	s := token.Stream{
		token.NewIdent("a", source.Span{}),
		token.NewGroup(token.DelimNone, token.Stream{token.NewIdent("b", source.Span{})}, source.Span{}, source.Span{}),
	}
	if got := minify.Serialize(s); got != "a b " {
		t.Errorf("got %q", got)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a && &b", "a && & b"},
		{"f(x, {y})", "f (x , { y })"},
		{"&'a T", "&'a T"},
		{"{}", "{}"},
		{"[a] (b) {c}", "[a] (b) { c }"},
	}
	for _, tt := range tests {
		s := lexString(t, tt.input)
		got := minify.Canonical(s)
		if got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if !minify.Verify(got, s) {
			t.Errorf("Canonical(%q) does not re-lex to the input", tt.input)
		}
	}
}

func TestEquivalentIgnoresSpansAndSpacing(t *testing.T) {
	a := token.Stream{token.NewPunct('=', token.Joint, source.Span{File: 1, Start: 3, End: 4})}
	b := token.Stream{token.NewPunct('=', token.Alone, source.Span{})}
	if !minify.Equivalent(a, b) {
		t.Error("spacing and spans must not matter")
	}
	c := token.Stream{token.NewGroup(token.DelimParen, nil, source.Span{}, source.Span{})}
	d := token.Stream{token.NewGroup(token.DelimBracket, nil, source.Span{}, source.Span{})}
	if minify.Equivalent(c, d) {
		t.Error("delimiters must matter")
	}
	if minify.Equivalent(a, c) {
		t.Error("kinds must matter")
	}
}

func TestVerifyRejectsLexErrors(t *testing.T) {
	if minify.Verify(`"unterminated`, token.Stream{token.NewLiteral(`"unterminated`, source.Span{})}) {
		t.Error("candidate with lexer errors must fail")
	}
}

func TestAmbiguous(t *testing.T) {
	if !minify.Ambiguous("&", '&') || !minify.Ambiguous("..", '=') || !minify.Ambiguous(">>", '=') {
		t.Error("missing table entries")
	}
	if minify.Ambiguous("&&", '&') || minify.Ambiguous("+", '-') || minify.Ambiguous("->", '&') {
		t.Error("unexpected table entries")
	}
}

// Свойства: round-trip, идемпотентность, ровно один пробел между словами.
var propertyInputs = []string{
	`mod a { fn hello() -> &'static str { "Hello" } }`,
	"fn f<'a, T: Iterator<Item = &'a u8>>(x: T) -> Option<Vec<u8>> { x.map(|b| *b).collect() }",
	"let x = a..=b; let y = ..; let z = a..b; let w = 1.0e-3f64 as f32;",
	"if a != b && c <= d || !e { x <<= 2; y >>= 3; z ^= 1; w %= 4; }",
	"match v { 0..=9 => 'd', b'x' => '\\n', _ => '\\'' }",
	"#[derive(Debug)] pub(crate) struct S { a: u8, b: [u8; 4] }",
	"r#\"raw \" string\"# r#type 'label: loop { break 'label; }",
	"x.0.1; 1.; 2. + 3.; a - -b; a- -b; &&x; & &x; *&*x;",
	"r # x",
}

func TestMinifyProperties(t *testing.T) {
	for _, in := range propertyInputs {
		orig := lexString(t, in)
		out := minify.Minify(orig)

		if !minify.Verify(out, orig) {
			t.Errorf("round-trip failed for %q: %q", in, out)
			continue
		}
		if again := minify.Minify(lexString(t, out)); again != out {
			t.Errorf("not idempotent for %q: %q then %q", in, out, again)
		}
	}
}

func TestWordBoundary(t *testing.T) {
	tests := map[string]string{
		"a b":           "a b",
		"a  \n\t b":     "a b",
		"1 2":           "1 2",
		`"s" x`:         `"s" x`,
		"unsafe impl X": "unsafe impl X",
	}
	for in, want := range tests {
		if got := minify.Minify(lexString(t, in)); got != want {
			t.Errorf("Minify(%q) = %q, want %q", in, got, want)
		}
	}
}
