package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, configFileName)
	writeFile(t, cfgPath, "[minify]\nremove_docs = true\n")
	nested := filepath.Join(root, "crates", "core", "src")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := findConfig(nested)
	if err != nil {
		t.Fatalf("findConfig: %v", err)
	}
	if !ok {
		t.Fatalf("expected %s to be found", configFileName)
	}
	if got != cfgPath {
		t.Fatalf("findConfig = %q, want %q", got, cfgPath)
	}
}

func TestFindConfigIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, configFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, ok, err := findConfig(root)
	if err != nil {
		t.Fatalf("findConfig: %v", err)
	}
	if ok && got == filepath.Join(root, configFileName) {
		t.Fatalf("directory named %s must not be taken as config", configFileName)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, `# rsmin settings
[minify]
remove_docs = true

[walk]
exclude = ["**/target/**", "vendor/**"]

[cache]
enabled = false
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Minify.RemoveDocs == nil || !*cfg.Minify.RemoveDocs {
		t.Fatalf("remove_docs = %v, want true", cfg.Minify.RemoveDocs)
	}
	if want := []string{"**/target/**", "vendor/**"}; !reflect.DeepEqual(cfg.Walk.Exclude, want) {
		t.Fatalf("exclude = %v, want %v", cfg.Walk.Exclude, want)
	}
	if cfg.Cache.Enabled == nil || *cfg.Cache.Enabled {
		t.Fatalf("cache.enabled = %v, want false", cfg.Cache.Enabled)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[minify]\nremove_doc = true\n")
	_, err := loadConfig(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "minify.remove_doc") {
		t.Fatalf("error %q does not name the key", err)
	}
}

func TestApplyConfig(t *testing.T) {
	yes, no := true, false
	cfg := &fileConfig{}
	cfg.Minify.RemoveDocs = &yes
	cfg.Walk.Exclude = []string{"gen/**"}
	cfg.Cache.Enabled = &no

	tests := []struct {
		name    string
		start   minifySettings
		changed []string
		want    minifySettings
	}{
		{
			name:  "file fills unset flags",
			start: minifySettings{cache: true},
			want:  minifySettings{removeDocs: true, exclude: []string{"gen/**"}, cache: false},
		},
		{
			name:    "explicit flags win",
			start:   minifySettings{removeDocs: false, exclude: []string{"x/**"}, cache: true},
			changed: []string{"remove-docs", "exclude", "cache"},
			want:    minifySettings{removeDocs: false, exclude: []string{"x/**"}, cache: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			s.applyConfig(cfg, func(name string) bool {
				for _, c := range tt.changed {
					if c == name {
						return true
					}
				}
				return false
			})
			if !reflect.DeepEqual(s, tt.want) {
				t.Fatalf("settings = %+v, want %+v", s, tt.want)
			}
		})
	}

	var s minifySettings
	s.applyConfig(nil, func(string) bool { return false })
	if !reflect.DeepEqual(s, minifySettings{}) {
		t.Fatalf("nil config changed settings: %+v", s)
	}
}
