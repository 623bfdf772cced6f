package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by the property accessors when the requested naming table
// entry is missing or empty.
var ErrNotFound = errors.New("font property not found or empty")

// Name table lookups need a working buffer. Pooling it keeps repeated
// property reads allocation-free without making callers carry one.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested naming table property for the given font.
// If the property is missing, [ErrNotFound] will be returned.
func Property(f *Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	value, err := f.Name(buffer, property)
	bufferPool.Put(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the full name of the given font (e.g. "Go Regular").
func Name(f *Font) (string, error) {
	return Property(f, sfnt.NameIDFull)
}

// Returns the family name of the given font (e.g. "Go").
func Family(f *Font) (string, error) {
	return Property(f, sfnt.NameIDFamily)
}

// Returns the subfamily name of the given font. In most cases the
// value is one of: Regular, Italic, Bold, Bold Italic.
func Subfamily(f *Font) (string, error) {
	return Property(f, sfnt.NameIDSubfamily)
}

// Returns the unique identifier of the given font.
func Identifier(f *Font) (string, error) {
	return Property(f, sfnt.NameIDUniqueIdentifier)
}

// Returns the canonical name a font becomes available under once
// registered: the PostScript name when the font declares one, the
// full name otherwise.
func PostScriptName(f *Font) (string, error) {
	name, err := Property(f, sfnt.NameIDPostScript)
	if err == nil && name != "" { return name, nil }
	return Name(f)
}

// Returns the runes in the given text that the font has no glyph for.
// Repeated runes in the input may be repeated in the result too.
//
// When fonts are discovered dynamically it is good practice to check
// that they cover the text you intend to render with them.
func MissingRunes(f *Font, text string) ([]rune, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	missing := make([]rune, 0)
	for _, codePoint := range text {
		index, err := f.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
