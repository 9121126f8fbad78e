package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	tests := []struct {
		number string
		want   string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"weird", "weird"},
	}
	orig := Number
	defer func() { Number = orig }()
	for _, tt := range tests {
		Number = tt.number
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestInfo(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	origNumber, origCommit, origDate := Number, GitCommit, BuildDate
	defer func() { Number, GitCommit, BuildDate = origNumber, origCommit, origDate }()

	Number, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Info(); got != "rsmin 1.2.3" {
		t.Errorf("Info() = %q", got)
	}
	GitCommit, BuildDate = "abc123", "2026-01-15"
	if got := Info(); got != "rsmin 1.2.3 (abc123) built 2026-01-15" {
		t.Errorf("Info() = %q", got)
	}
}
