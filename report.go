package fontblast

import "github.com/google/uuid"

// SkipReason classifies why a font or container was skipped during a
// blast. Skips are terminal only for the entry that triggered them;
// the rest of the bundle tree keeps loading.
type SkipReason int

const (
	// The container directory could not be listed.
	SkipContainer SkipReason = iota
	// The filename classified as a font candidate but did not parse
	// into a valid descriptor.
	SkipName
	// The descriptor did not resolve to an existing resource.
	SkipResolve
	// The resource bytes could not be read or did not decode as a font.
	SkipDecode
	// The registrar rejected the decoded font.
	SkipRegister
)

func (self SkipReason) String() string {
	switch self {
	case SkipContainer: return "container unreadable"
	case SkipName: return "invalid font name"
	case SkipResolve: return "resource not found"
	case SkipDecode: return "font decode failed"
	case SkipRegister: return "registration rejected"
	default: return "unknown"
	}
}

// A Skip records one entry that did not make it through the pipeline.
type Skip struct {
	Path   string
	Reason SkipReason
	Err    error
}

// A Report is the outcome of one blast over a bundle tree. Loaded
// holds the canonical names of every registered font in registration
// order; Skipped holds everything that was left behind and why.
//
// Reports are per-invocation values: blasting the same root twice
// yields two independent reports (and, through the default registrar,
// the same names loaded again).
type Report struct {
	ID      uuid.UUID
	Root    string
	Loaded  []string
	Skipped []Skip
}

func newReport(root string) Report {
	return Report{ID: uuid.New(), Root: root}
}

func (self *Report) loaded(name string) {
	self.Loaded = append(self.Loaded, name)
}

func (self *Report) skipped(path string, reason SkipReason, err error) {
	self.Skipped = append(self.Skipped, Skip{Path: path, Reason: reason, Err: err})
}
