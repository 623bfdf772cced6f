package font

import "sort"
import "errors"

// A registry of fonts accessible by canonical name.
//
// A Library plays the role an OS font manager plays on other
// platforms: once a font is added, any part of the program can look
// it up by the name it was registered under. Libraries do not know
// about system fonts.
type Library struct {
	fonts map[string]*Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{
		fonts: make(map[string]*Font),
	}
}

// Returns the current number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Finds out whether a font with the given name exists in the library.
func (self *Library) Has(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font registered under the given name, or nil if there
// is none. Names are the canonical names derived at registration time
// (see [PostScriptName]), not filenames.
func (self *Library) Get(name string) *Font {
	f, found := self.fonts[name]
	if found { return f }
	return nil
}

// An error returned by [Library.Add] when a font is not added because
// its canonical name is already taken.
var ErrAlreadyPresent = errors.New("font already present in the library")

// Registers the given font under its canonical name and returns that
// name. If the given font is nil, the method panics. If another font
// already holds the name, [ErrAlreadyPresent] is returned along the
// name that collided.
func (self *Library) Add(f *Font) (string, error) {
	name, err := PostScriptName(f)
	if err != nil { return "", err }
	if self.Has(name) { return name, ErrAlreadyPresent }
	self.fonts[name] = f
	return name, nil
}

// Returns false if the font can't be removed due to not being found.
func (self *Library) Remove(name string) bool {
	_, found := self.fonts[name]
	if !found { return false }
	delete(self.fonts, name)
	return true
}

// Returns the sorted list of names currently registered.
func (self *Library) Names() []string {
	names := make([]string, 0, len(self.fonts))
	for name := range self.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calls the given function for each font in the library, passing the
// registered name and the font itself, in pseudo-random order. Return
// false from the function to stop early.
func (self *Library) Each(fontFunc func(string, *Font) bool) {
	for name, f := range self.fonts {
		if !fontFunc(name, f) { return }
	}
}
