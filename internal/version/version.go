package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the rsmin CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Number is the plain semantic version. It is part of cache keys.
	Number = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Number with major, minor and patch in different colors.
// fatih/color drops the escapes when color output is disabled.
func Colored() string {
	core, suffix, _ := strings.Cut(Number, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Number
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Info is the full build description printed by `rsmin version`.
func Info() string {
	var sb strings.Builder
	sb.WriteString("rsmin ")
	sb.WriteString(Colored())
	if GitCommit != "" {
		sb.WriteString(" (" + GitCommit + ")")
	}
	if BuildDate != "" {
		sb.WriteString(" built " + BuildDate)
	}
	return sb.String()
}
