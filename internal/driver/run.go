package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"rsmin/internal/diag"
	"rsmin/internal/observ"
	"rsmin/internal/source"
	"rsmin/internal/trace"
)

// FileResult is the outcome for one file of MinifyPaths.
type FileResult struct {
	Result
	Path   string
	FileID source.FileID

	// Changed reports whether Output differs from the file on disk.
	Changed bool
	Cached  bool
	// Dest is the path written to, empty when nothing was written.
	Dest string
	// Err is an I/O failure; it is also reported in Bag.
	Err error
}

// MinifyPaths minifies every .rs file under paths. Files run in parallel;
// results come back sorted by path. The returned FileSet resolves the spans
// of the diagnostics. The error is set only when the run as a whole failed
// (bad arguments, cancellation); per-file problems stay in the results.
func MinifyPaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "minify")
	detail := ""
	defer func() { span.End(detail) }()

	fsys := opts.fs()
	entries, err := collectSourceFiles(ctx, fsys, paths, opts.Exclude)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, errors.New("minify: no source files found")
	}
	span.WithExtra("files", strconv.Itoa(len(entries)))

	// FileSet is not safe for concurrent Add, so files are loaded up front.
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(entries))
	readStart := time.Now()
	for i, e := range entries {
		results[i].Path = e.path
		data, err := afero.ReadFile(fsys, e.path)
		if err != nil {
			results[i].fail(opts.maxDiagnostics(), diag.IOLoadFileError, fmt.Errorf("failed to load file: %w", err))
			continue
		}
		results[i].FileID = fileSet.AddSource(e.path, data, 0)
	}
	opts.Timer.Add(observ.PhaseRead, time.Since(readStart))

	total := len(entries)
	opts.emit(Event{Kind: EventQueued, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobLimit(total))

	for i, e := range entries {
		if results[i].Err != nil {
			opts.emit(Event{Kind: EventFinished, Path: e.path, Index: i, Total: total, Result: &results[i]})
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts.emit(Event{Kind: EventStarted, Path: e.path, Index: i, Total: total})
			// индекс i уникален для горутины, мьютекс не нужен
			minifyEntry(gctx, fsys, fileSet, e, &results[i], &opts)
			done := results[i]
			opts.emit(Event{Kind: EventFinished, Path: e.path, Index: i, Total: total, Result: &done})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		detail = err.Error()
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func minifyEntry(ctx context.Context, fsys afero.Fs, fileSet *source.FileSet, e sourceEntry, fr *FileResult, opts *Options) {
	file := fileSet.Get(fr.FileID)
	key := KeyFor(file.Hash, opts.RemoveDocs)

	var payload CachePayload
	hit, err := opts.Cache.Get(key, &payload)
	switch {
	case err != nil:
		trace.Point(ctx, trace.ScopeFile, "cache-error", err.Error())
	case hit:
		fr.Result = Result{
			Output:   payload.Output,
			Fallback: payload.Fallback,
			Bag:      diag.NewBag(opts.maxDiagnostics()),
		}
		fr.Cached = true
		trace.Point(ctx, trace.ScopeFile, "cache-hit", file.Path)
	}
	if !fr.Cached {
		fr.Result = MinifySource(ctx, fileSet, fr.FileID, *opts)
		if fr.Failed() {
			return
		}
		if err := opts.Cache.Put(key, &CachePayload{Output: fr.Output, Fallback: fr.Fallback}); err != nil {
			trace.Point(ctx, trace.ScopeFile, "cache-error", err.Error())
		}
	}

	// BOM или CRLF в исходнике тоже считаются изменением
	fr.Changed = fr.Output != string(file.Content) ||
		file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0

	if opts.Check {
		return
	}
	switch {
	case opts.OutDir != "":
		writeOutput(fsys, filepath.Join(opts.OutDir, e.rel), e.path, fr, opts)
	case opts.Write && fr.Changed:
		writeOutput(fsys, e.path, e.path, fr, opts)
	}
}

// writeOutput writes fr.Output to dest, keeping the permissions of src.
func writeOutput(fsys afero.Fs, dest, src string, fr *FileResult, opts *Options) {
	start := time.Now()
	defer func() { opts.Timer.Add(observ.PhaseWrite, time.Since(start)) }()

	mode := os.FileMode(0o644)
	if info, err := fsys.Stat(src); err == nil {
		mode = info.Mode().Perm()
	}
	if err := fsys.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		fr.fail(opts.maxDiagnostics(), diag.IOWriteFileError, fmt.Errorf("failed to write %s: %w", dest, err))
		return
	}
	if err := afero.WriteFile(fsys, dest, []byte(fr.Output), mode); err != nil {
		fr.fail(opts.maxDiagnostics(), diag.IOWriteFileError, fmt.Errorf("failed to write %s: %w", dest, err))
		return
	}
	fr.Dest = dest
}

func (fr *FileResult) fail(maxDiagnostics int, code diag.Code, err error) {
	fr.Err = err
	if fr.Bag == nil {
		fr.Bag = diag.NewBag(maxDiagnostics)
	}
	fr.Bag.Add(diag.NewError(code, source.Span{}, err.Error()))
}
