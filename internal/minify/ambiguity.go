package minify

type runPair struct {
	run  string
	next byte
}

// ambiguous lists (run, next) pairs that fuse into a different operator when
// written without a separator: "&" + '&' reads as "&&", "<" + '-' as "<-".
var ambiguous = map[runPair]struct{}{
	{"!", '='}:  {},
	{"%", '='}:  {},
	{"&", '&'}:  {},
	{"&", '='}:  {},
	{"*", '='}:  {},
	{"+", '='}:  {},
	{"-", '='}:  {},
	{"-", '>'}:  {},
	{".", '.'}:  {},
	{"..", '.'}: {},
	{"..", '='}: {},
	{"/", '='}:  {},
	{":", ':'}:  {},
	{"<", '-'}:  {},
	{"<", '<'}:  {},
	{"<", '='}:  {},
	{"<<", '='}: {},
	{"=", '='}:  {},
	{"=", '>'}:  {},
	{">", '='}:  {},
	{">", '>'}:  {},
	{">>", '='}: {},
	{"^", '='}:  {},
	{"|", '='}:  {},
	{"|", '|'}:  {},
}

// Ambiguous reports whether writing next right after run would change how the
// text lexes.
func Ambiguous(run string, next byte) bool {
	_, ok := ambiguous[runPair{run: run, next: next}]
	return ok
}
