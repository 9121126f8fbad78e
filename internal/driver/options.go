package driver

import (
	"runtime"

	"fortio.org/safecast"
	"github.com/spf13/afero"

	"rsmin/internal/observ"
)

const defaultMaxDiagnostics = 256

// Options configures MinifySource and MinifyPaths.
type Options struct {
	// RemoveDocs strips documentation before minifying.
	RemoveDocs bool

	Write  bool   // rewrite changed files in place
	OutDir string // mirror outputs into this directory instead
	Check  bool   // only report whether files would change

	Jobs    uint     // parallel files, 0 = GOMAXPROCS
	Exclude []string // doublestar globs matched against walked paths

	Cache          *DiskCache // nil disables caching
	MaxDiagnostics int

	FS       afero.Fs      // nil = OS filesystem
	Timer    *observ.Timer // nil disables timings
	Progress ProgressSink  // nil disables progress events
}

func (o *Options) fs() afero.Fs {
	if o.FS == nil {
		return afero.NewOsFs()
	}
	return o.FS
}

func (o *Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// jobLimit bounds the worker count by the number of files.
func (o *Options) jobLimit(files int) int {
	jobs, err := safecast.Conv[int](o.Jobs)
	if err != nil || jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

func (o *Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}
