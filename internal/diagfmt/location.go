package diagfmt

import (
	"fmt"

	"rsmin/internal/source"
)

// resolvable reports whether sp can be mapped to a line in fs.
// I/O diagnostics carry the zero span and have no location.
func resolvable(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && sp.Valid() && int(sp.File) < fs.Len()
}

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// location renders path:line:col for the start of sp.
func location(fs *source.FileSet, sp source.Span, mode PathMode) (string, bool) {
	if !resolvable(fs, sp) {
		return "", false
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs, fs.Get(sp.File), mode), start.Line, start.Col), true
}
