package fontblast

import "os"
import "io/fs"

import "github.com/labstack/gommon/log"

// A Blaster walks a resource bundle tree, loads every font it finds
// and registers it. Each Blaster carries its own [Registrar], its own
// diagnostics logger and its own recursion bound, so independent
// invocations never contaminate each other.
//
// A Blaster is not safe for concurrent use; run concurrent blasts on
// separate Blasters.
type Blaster struct {
	registrar Registrar
	logger    *log.Logger
	maxDepth  int
}

// Creates a [Blaster] with a fresh [LibraryRegistrar] and a silent
// logger (diagnostics off).
func NewBlaster() *Blaster {
	logger := log.New("fontblast")
	logger.SetOutput(os.Stderr)
	logger.SetLevel(log.OFF)
	return &Blaster{
		registrar: NewLibraryRegistrar(nil),
		logger:    logger,
	}
}

// Replaces the blaster's [Registrar]. Passing nil restores the default
// library-backed one.
func (self *Blaster) SetRegistrar(registrar Registrar) {
	if registrar == nil { registrar = NewLibraryRegistrar(nil) }
	self.registrar = registrar
}

// Returns the blaster's [Registrar].
func (self *Blaster) Registrar() Registrar { return self.registrar }

// Replaces the blaster's diagnostics logger. Passing nil is not
// allowed and will panic; to silence diagnostics use [Blaster.SetDebug].
func (self *Blaster) SetLogger(logger *log.Logger) {
	if logger == nil { panic("nil logger") }
	self.logger = logger
}

// Returns the blaster's diagnostics logger, e.g. to redirect its
// output writer.
func (self *Blaster) Logger() *log.Logger { return self.logger }

// Toggles diagnostics. While off (the default), blasts emit nothing
// at all; while on, every scanned container, loaded font and skipped
// entry produces a trace line.
func (self *Blaster) SetDebug(enabled bool) {
	if enabled {
		self.logger.SetLevel(log.DEBUG)
	} else {
		self.logger.SetLevel(log.OFF)
	}
}

// Whether diagnostics are enabled.
func (self *Blaster) Debug() bool {
	return self.logger.Level() != log.OFF
}

// Bounds how deep nested sub-bundles are followed. Zero (the default)
// means unbounded; cycles are detected independently of this value.
func (self *Blaster) SetMaxDepth(depth int) {
	if depth < 0 { depth = 0 }
	self.maxDepth = depth
}

// Discovers and registers every font under the given root directory,
// descending into nested *.bundle directories, and returns the
// [Report] of what loaded and what was skipped. Failures never abort
// the blast; they are recorded in the report and traced through the
// logger.
func (self *Blaster) Blast(root string) Report {
	return self.run(osFS{}, root)
}

// The equivalent of [Blaster.Blast] for filesystems. This is mainly
// provided to support [embed.FS] resource bundles.
func (self *Blaster) BlastFS(filesys fs.FS, root string) Report {
	return self.run(fsysFS{fsys: filesys}, root)
}

func (self *Blaster) run(fsys bundleFS, root string) Report {
	report := newReport(root)
	self.logger.Debugf("blast %s: scanning %s", report.ID, root)
	visited := make(map[string]struct{})
	self.blastBundle(fsys, root, 0, visited, &report)
	self.logger.Debugf(
		"blast %s: %d fonts loaded, %d entries skipped",
		report.ID, len(report.Loaded), len(report.Skipped),
	)
	return report
}
