package fontblast

import "github.com/fontblast/fontblast/font"

// A Registrar turns raw font bytes into a font available by name.
// It is deliberately narrow so the traversal and accumulation logic
// can be exercised against a fake in tests, and so programs can plug
// in platform font subsystems of their own.
type Registrar interface {
	// Decode parses raw bytes into a font object, or reports that the
	// bytes are not a decodable font.
	Decode(data []byte) (*font.Font, error)
	// Register makes the decoded font available and returns the
	// canonical name it was registered under, or a descriptive error.
	Register(f *font.Font) (string, error)
}

// The default [Registrar]: fonts decode through sfnt and register
// into a [font.Library]. Registering a font whose canonical name is
// already taken succeeds trivially (the font is available under that
// name either way), so blasting the same bundle twice accumulates the
// same names twice rather than erroring.
type LibraryRegistrar struct {
	lib *font.Library
}

// Creates a [LibraryRegistrar] over the given library. A nil library
// gets a fresh empty one.
func NewLibraryRegistrar(lib *font.Library) *LibraryRegistrar {
	if lib == nil { lib = font.NewLibrary() }
	return &LibraryRegistrar{lib: lib}
}

// Returns the backing [font.Library].
func (self *LibraryRegistrar) Library() *font.Library { return self.lib }

func (self *LibraryRegistrar) Decode(data []byte) (*font.Font, error) {
	// a name lookup failure is not a decode failure; if the font
	// parsed, registration gets to judge the naming table
	f, _, err := font.ParseBytes(data)
	if f == nil { return nil, err }
	return f, nil
}

func (self *LibraryRegistrar) Register(f *font.Font) (string, error) {
	name, err := self.lib.Add(f)
	if err == font.ErrAlreadyPresent { return name, nil }
	return name, err
}
