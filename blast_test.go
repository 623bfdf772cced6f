package fontblast_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/fontblast/fontblast"
	"github.com/fontblast/fontblast/font"
)

// The package-level functions share process-wide state, so everything
// touching them runs inside this single sequential test.
func TestProcessWideBlast(t *testing.T) {
	_, regularName, err := font.ParseBytes(goregular.TTF)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	_, boldName, err := font.ParseBytes(gobold.TTF)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	root := t.TempDir()
	writeTestFile(t, root, "a.ttf", goregular.TTF)
	writeTestFile(t, filepath.Join(root, "Extras.bundle"), "b.otf", gobold.TTF)

	fontblast.Reset()
	if len(fontblast.Loaded()) != 0 {
		t.Fatal("expected an empty loaded list after Reset")
	}

	first := fontblast.Blast(root)
	want := []string{regularName, boldName}
	if diff := cmp.Diff(want, first.Loaded); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}

	// no duplicate detection: blasting the same root again appends
	// the same names a second time
	second := fontblast.Blast(root)
	if diff := cmp.Diff(want, second.Loaded); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	accumulated := append(append([]string(nil), want...), want...)
	if diff := cmp.Diff(accumulated, fontblast.Loaded()); diff != "" {
		t.Fatalf("loaded list mismatch (-want +got):\n%s", diff)
	}

	registry := fontblast.Registry()
	if registry == nil {
		t.Fatal("expected the default registry to be available")
	}
	for _, name := range want {
		if !registry.Has(name) {
			t.Fatalf("expected registry to include %s", name)
		}
		if registry.Get(name) == nil {
			t.Fatalf("expected registry to return %s", name)
		}
	}

	fontblast.Reset()
	if len(fontblast.Loaded()) != 0 {
		t.Fatal("expected an empty loaded list after Reset")
	}
	if !registry.Has(regularName) {
		t.Fatal("Reset must not unregister fonts")
	}

	filesys := fstest.MapFS{
		"assets/c.ttf": &fstest.MapFile{Data: goregular.TTF},
	}
	report := fontblast.BlastFS(filesys, "assets")
	if diff := cmp.Diff([]string{regularName}, report.Loaded); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{regularName}, fontblast.Loaded()); diff != "" {
		t.Fatalf("loaded list mismatch (-want +got):\n%s", diff)
	}
	fontblast.Reset()

	if fontblast.Debug() {
		t.Fatal("debug must default to off")
	}
	fontblast.SetDebug(true)
	if !fontblast.Debug() {
		t.Fatal("expected debug to be on")
	}
	fontblast.SetDebug(false)
	if fontblast.Debug() {
		t.Fatal("expected debug to be off")
	}
}

func writeTestFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
}
