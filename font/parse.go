package font

import "os"
import "io"
import "io/fs"
import "errors"
import "strings"

import "golang.org/x/image/font/sfnt"

// Parses raw font data and returns the font along its canonical name
// (see [PostScriptName]). The bytes must not be modified while the
// font is in use; when in doubt, pass a copy.
func ParseBytes(data []byte) (*Font, string, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil { return nil, "", err }
	name, err := PostScriptName(parsed)
	return parsed, name, err
}

// Parses the font file at the given path and returns it along its
// canonical name. Only .ttf and .otf files are accepted.
func ParseFile(path string) (*Font, string, error) {
	if !hasFontSuffix(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

// Same as [ParseFile], but for arbitrary filesystems. This is mainly
// provided to support [embed.FS] and embedded fonts.
func ParseFS(filesys fs.FS, path string) (*Font, string, error) {
	if !hasFontSuffix(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

// ---- helpers ----

func parseAndClose(file io.ReadCloser) (*Font, string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseBytes(data)
}

// Strict suffix check used by the direct parsing entry points. Bundle
// discovery uses a looser containment rule instead; see the root
// package.
func hasFontSuffix(path string) bool {
	return strings.HasSuffix(path, ".ttf") || strings.HasSuffix(path, ".otf")
}
