package fontblast

import "io/fs"
import "sync"

import "github.com/fontblast/fontblast/font"

// Process-wide state backing the package-level functions: a shared
// default blaster plus the accumulated list of every name it has
// registered since process start. Guarded by a mutex so concurrent
// callers stay consistent; programs needing isolated runs should use
// their own [Blaster] instead.
var (
	globalMu      sync.Mutex
	globalBlaster *Blaster
	globalLoaded  []string
)

func defaultBlaster() *Blaster {
	if globalBlaster == nil { globalBlaster = NewBlaster() }
	return globalBlaster
}

// Discovers and registers every font under the given root directory
// using the process-wide blaster. The loaded names are appended to
// the process-wide list (see [Loaded]) and the per-invocation
// [Report] is returned. No dedup is performed: blasting the same root
// twice accumulates its names twice.
func Blast(root string) Report {
	globalMu.Lock()
	defer globalMu.Unlock()
	report := defaultBlaster().Blast(root)
	globalLoaded = append(globalLoaded, report.Loaded...)
	return report
}

// The equivalent of [Blast] for filesystems, e.g. [embed.FS] bundles.
func BlastFS(filesys fs.FS, root string) Report {
	globalMu.Lock()
	defer globalMu.Unlock()
	report := defaultBlaster().BlastFS(filesys, root)
	globalLoaded = append(globalLoaded, report.Loaded...)
	return report
}

// Returns a snapshot of every canonical font name registered through
// [Blast] and [BlastFS] since process start (or the last [Reset]), in
// registration order, duplicates included.
func Loaded() []string {
	globalMu.Lock()
	defer globalMu.Unlock()
	return append([]string(nil), globalLoaded...)
}

// Clears the process-wide loaded list. Fonts already registered stay
// available through [Registry].
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLoaded = nil
}

// Toggles diagnostics for the process-wide blaster. Off by default.
func SetDebug(enabled bool) {
	globalMu.Lock()
	defer globalMu.Unlock()
	defaultBlaster().SetDebug(enabled)
}

// Whether process-wide diagnostics are enabled.
func Debug() bool {
	globalMu.Lock()
	defer globalMu.Unlock()
	return defaultBlaster().Debug()
}

// Returns the [font.Library] the process-wide blaster registers into,
// or nil if its registrar was replaced with a custom one.
func Registry() *font.Library {
	globalMu.Lock()
	defer globalMu.Unlock()
	registrar, ok := defaultBlaster().Registrar().(*LibraryRegistrar)
	if !ok { return nil }
	return registrar.Library()
}
