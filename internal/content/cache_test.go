package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheServesAndRebuilds(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/one.md", "# One\n")
	cache := NewCache(New(root, WithLogger(quietLogger())))

	if got := cache.ListAll(); len(got) != 1 {
		t.Fatalf("initial = %d entries", len(got))
	}

	// A new file moves the fingerprint; the next read must see it.
	writeFile(t, root, "b/two.md", "# Two\n")
	if got := cache.ListAll(); len(got) != 2 {
		t.Errorf("after add = %d entries, want 2", len(got))
	}
}

func TestCacheInvalidatesOnMtime(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, root, "doc.md", "# Old Title\n")
	cache := NewCache(New(root, WithLogger(quietLogger())))

	if got := cache.ListAll(); got[0].Title != "Old Title" {
		t.Fatalf("title = %q", got[0].Title)
	}

	if err := os.WriteFile(path, []byte("# New Title\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	if got := cache.ListAll(); got[0].Title != "New Title" {
		t.Errorf("title after rewrite = %q, want New Title", got[0].Title)
	}
}

func TestCacheInvalidate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doc.md", "# Doc\n")
	cache := NewCache(New(root, WithLogger(quietLogger())))
	cache.ListAll()

	cache.Invalidate()
	if got := cache.ListAll(); len(got) != 1 {
		t.Errorf("post-invalidate = %d entries", len(got))
	}
}

func TestCacheSearchShortQuery(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "doc.md", "# Doc\n")
	cache := NewCache(New(root, WithLogger(quietLogger())))

	if got := cache.Search("a"); len(got) != 0 {
		t.Errorf("short query = %+v", got)
	}
	if got := cache.Search("doc"); len(got) != 1 {
		t.Errorf("search = %+v", got)
	}
}
