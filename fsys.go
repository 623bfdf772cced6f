package fontblast

import "os"
import "io/fs"
import "path"
import "path/filepath"

// bundleFS abstracts the filesystem operations the pipeline needs:
// listing a container, resolving a named resource within one, and
// reading resource bytes. Listing must report missing or unreadable
// directories as an error, never as a silent empty result.
type bundleFS interface {
	ListDir(dir string) ([]string, error)
	Resolve(dir, base, ext string) (string, error)
	ReadFile(path string) ([]byte, error)
	Join(dir, name string) string
	// Key canonicalizes a container path for cycle detection.
	Key(dir string) string
}

// The operating system filesystem, used by [Blaster.Blast].
type osFS struct{}

func (osFS) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil { return nil, err }
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

func (osFS) Resolve(dir, base, ext string) (string, error) {
	location := filepath.Join(dir, base+"."+ext)
	_, err := os.Stat(location)
	if err != nil { return "", err }
	return location, nil
}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFS) Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// Symlinked bundles must key to their target so that self-referential
// links terminate instead of recursing forever.
func (osFS) Key(dir string) string {
	resolved, err := filepath.EvalSymlinks(dir)
	if err == nil { dir = resolved }
	abs, err := filepath.Abs(dir)
	if err != nil { return filepath.Clean(dir) }
	return abs
}

// An [fs.FS] adapter, used by [Blaster.BlastFS]. Mainly provided to
// support [embed.FS] resource bundles.
type fsysFS struct {
	fsys fs.FS
}

func (self fsysFS) ListDir(dir string) ([]string, error) {
	entries, err := fs.ReadDir(self.fsys, dir)
	if err != nil { return nil, err }
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

func (self fsysFS) Resolve(dir, base, ext string) (string, error) {
	location := path.Join(dir, base+"."+ext)
	_, err := fs.Stat(self.fsys, location)
	if err != nil { return "", err }
	return location, nil
}

func (self fsysFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(self.fsys, path)
}

func (self fsysFS) Join(dir, name string) string {
	return path.Join(dir, name)
}

func (self fsysFS) Key(dir string) string {
	return path.Clean(dir)
}
