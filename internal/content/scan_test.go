package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanIncludesOnlyMarkdown(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "design-principle/solid.md", "# SOLID\n")
	writeFile(t, root, "design-principle/notes.txt", "not a doc")
	writeFile(t, root, "assets/logo.png", "binary")

	files, err := Scan(os.DirFS(root), nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0] != "design-principle/solid.md" {
		t.Errorf("files = %v", files)
	}
}

func TestScanExcludesDenylistAnywhere(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "README.md", "# Readme\n")
	writeFile(t, root, "index.md", "# Index\n")
	writeFile(t, root, "deep/nested/overview.md", "# Overview\n")
	writeFile(t, root, "deep/nested/Documentation-Index.md", "# DI\n")
	writeFile(t, root, "patterns/observer-diagram.md", "# Diagram\n")
	writeFile(t, root, "patterns/observer.md", "# Observer\n")

	files, err := Scan(os.DirFS(root), nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0] != "patterns/observer.md" {
		t.Errorf("files = %v, want only patterns/observer.md", files)
	}
}

func TestScanExtraExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "changelog.md", "# Changelog\n")
	writeFile(t, root, "guide.md", "# Guide\n")

	files, err := Scan(os.DirFS(root), map[string]bool{"changelog.md": true})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || files[0] != "guide.md" {
		t.Errorf("files = %v", files)
	}
}

func TestScanMissingRoot(t *testing.T) {
	files, err := Scan(os.DirFS(filepath.Join(t.TempDir(), "nope")), nil)
	if err != nil {
		t.Fatalf("missing root must not error, got %v", err)
	}
	if files != nil {
		t.Errorf("files = %v, want nil for missing root", files)
	}
}

func TestScanDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/two.md", "# Two\n")
	writeFile(t, root, "a/one.md", "# One\n")
	writeFile(t, root, "a/zero.md", "# Zero\n")

	first, err := Scan(os.DirFS(root), nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Scan(os.DirFS(root), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("counts = %d, %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("order differs at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestScanSkipsHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/objects/stash.md", "# Not content\n")
	writeFile(t, root, "real.md", "# Real\n")

	files, err := Scan(os.DirFS(root), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0] != "real.md" {
		t.Errorf("files = %v", files)
	}
}

func TestScanPropagatesWalkErrors(t *testing.T) {
	fsys := fstest.MapFS{"ok.md": &fstest.MapFile{Data: []byte("# OK\n")}}
	if _, err := Scan(failFS{fsys}, nil); err == nil {
		t.Fatal("expected error from failing filesystem")
	}
}

// failFS stats the root fine but fails every other operation, simulating a
// permissions failure mid-scan.
type failFS struct {
	fstest.MapFS
}

var errBoom = errors.New("permission denied")

func (f failFS) Open(name string) (fs.File, error) {
	if name == "." {
		return f.MapFS.Open(name)
	}
	return nil, errBoom
}

func (f failFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return nil, errBoom
}

func (f failFS) ReadFile(name string) ([]byte, error) {
	return nil, errBoom
}
