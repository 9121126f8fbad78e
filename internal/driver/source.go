package driver

import (
	"context"

	"rsmin/internal/source"
)

// MinifyBytes minifies in-memory content such as stdin. name is only used
// in diagnostics.
func MinifyBytes(ctx context.Context, name string, data []byte, opts Options) (*source.FileSet, Result) {
	fileSet := source.NewFileSet()
	id := fileSet.AddSource(name, data, source.FileVirtual)
	return fileSet, MinifySource(ctx, fileSet, id, opts)
}
