package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

const sourceExt = ".rs"

// sourceEntry is one file to minify. rel is its path below the argument it
// was found under, used to mirror the tree into an output directory.
type sourceEntry struct {
	path string
	rel  string
}

// collectSourceFiles expands paths into .rs files. Directories are walked
// recursively; files named explicitly are taken whatever their extension.
// Paths matching an exclude glob are skipped, excluded directories are not
// entered.
func collectSourceFiles(ctx context.Context, fsys afero.Fs, paths, exclude []string) ([]sourceEntry, error) {
	for _, pat := range exclude {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pat)
		}
	}

	var entries []sourceEntry
	seen := make(map[string]struct{})
	add := func(path, rel string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		entries = append(entries, sourceEntry{path: path, rel: rel})
	}

	for _, root := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		root = filepath.Clean(root)
		info, err := fsys.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !excluded(exclude, root, filepath.Base(root)) {
				add(root, filepath.Base(root))
			}
			continue
		}

		err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			if path == root {
				return nil
			}
			if info.IsDir() {
				if excluded(exclude, path, rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == sourceExt && !excluded(exclude, path, rel) {
				add(path, rel)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })
	return entries, nil
}

// excluded matches the patterns against both the full path and the path
// relative to the walk root, with forward slashes.
func excluded(patterns []string, path, rel string) bool {
	full := filepath.ToSlash(path)
	rel = filepath.ToSlash(rel)
	for _, pat := range patterns {
		pat = strings.TrimPrefix(filepath.ToSlash(pat), "./")
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pat, full); ok {
			return true
		}
	}
	return false
}
