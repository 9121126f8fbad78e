package driver

import (
	"github.com/spf13/afero"

	"rsmin/internal/diag"
	"rsmin/internal/lexer"
	"rsmin/internal/source"
	"rsmin/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  token.Stream
	Shebang string
	Bag     *diag.Bag
}

// Tokenize lexes one file into its token tree.
func Tokenize(fsys afero.Fs, path string, maxDiagnostics int) (*TokenizeResult, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return TokenizeBytes(path, data, maxDiagnostics), nil
}

// TokenizeBytes lexes in-memory content, e.g. stdin.
func TokenizeBytes(name string, data []byte, maxDiagnostics int) *TokenizeResult {
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddSource(name, data, 0))

	if maxDiagnostics <= 0 {
		maxDiagnostics = defaultMaxDiagnostics
	}
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: (&lexer.ReporterAdapter{Bag: bag}).Reporter()})
	tokens := lx.Tree()

	return &TokenizeResult{
		FileSet: fileSet,
		File:    file,
		Tokens:  tokens,
		Shebang: lx.Shebang(),
		Bag:     bag,
	}
}
