package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = "rsmin.toml"

// fileConfig mirrors rsmin.toml. Pointer fields distinguish "unset" from false.
type fileConfig struct {
	Minify struct {
		RemoveDocs *bool `toml:"remove_docs"`
	} `toml:"minify"`
	Walk struct {
		Exclude []string `toml:"exclude"`
	} `toml:"walk"`
	Cache struct {
		Enabled *bool `toml:"enabled"`
	} `toml:"cache"`
}

// findConfig ищет rsmin.toml от startDir вверх до корня.
func findConfig(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// resolveConfig loads the explicit path when given, otherwise the nearest
// rsmin.toml above the working directory. A missing file is not an error.
func resolveConfig(explicit string) (*fileConfig, string, error) {
	path := explicit
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		found, ok, err := findConfig(cwd)
		if err != nil {
			return nil, "", err
		}
		if !ok {
			return nil, "", nil
		}
		path = found
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
