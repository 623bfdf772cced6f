package fontblast

import "errors"
import "strings"

// The two font formats a bundle scan will pick up.
const (
	ExtTTF = "ttf"
	ExtOTF = "otf"
)

// Returned by [NewDescriptor] for filenames whose parsed extension is
// not .ttf or .otf.
var ErrUnsupportedExtension = errors.New("unsupported font extension")

// Returned by [NewDescriptor] for filenames with an empty base name
// (e.g. ".ttf").
var ErrEmptyBaseName = errors.New("empty font base name")

// A Descriptor identifies one candidate font file inside a resource
// container before it is loaded: the container directory, the base
// name and the extension. Descriptors are created during discovery
// and consumed once by the loader.
type Descriptor struct {
	Container string
	Base      string
	Ext       string
}

// Creates a [Descriptor] for the given filename within the given
// container directory. The filename is split on dots and only the
// first two components are kept, so a font named "My.Font.ttf" parses
// as base "My" with extension "Font" and is rejected with
// [ErrUnsupportedExtension]. Dotted base names do not survive a blast.
func NewDescriptor(container, filename string) (Descriptor, error) {
	base, ext := splitName(filename)
	if ext != ExtTTF && ext != ExtOTF {
		return Descriptor{}, ErrUnsupportedExtension
	}
	if base == "" { return Descriptor{}, ErrEmptyBaseName }
	return Descriptor{Container: container, Base: base, Ext: ext}, nil
}

// Returns the filename the descriptor resolves to within its container.
func (self Descriptor) fileName() string {
	return self.Base + "." + self.Ext
}

// Reports whether the given filename looks like a font candidate.
// This is a containment check, not a suffix check: "weird.ttf.bak"
// and "a.ttfx" both classify as candidates and are weeded out later
// in the pipeline, when they fail to resolve or decode.
func IsFontFile(name string) bool {
	return strings.Contains(name, "."+ExtTTF) || strings.Contains(name, "."+ExtOTF)
}

// Splits a filename into base name and extension using only the first
// two dot-separated components. Everything after the second component
// is discarded.
func splitName(filename string) (base, ext string) {
	components := strings.Split(filename, ".")
	if len(components) < 2 { return filename, "" }
	return components[0], components[1]
}
