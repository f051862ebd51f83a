package content

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		root, path, want string
	}{
		{"/docs", "/docs/design-principle/solid.md", "design-principle/solid"},
		{"/docs", "/docs/getting-started.md", "getting-started"},
		{"/docs", "/docs/a/b/c/deep.md", "a/b/c/deep"},
	}
	for _, tt := range tests {
		if got := SlugFromPath(tt.root, tt.path); got != tt.want {
			t.Errorf("SlugFromPath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}

func TestSlugRoundTrip(t *testing.T) {
	root := t.TempDir()
	rel := filepath.Join("design-pattern", "observer.md")
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte("# Observer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	slug := SlugFromPath(root, full)
	rejoined := filepath.Join(root, filepath.FromSlash(PathFromSlug(slug)))
	if _, err := os.Stat(rejoined); err != nil {
		t.Errorf("round-trip path %q does not resolve: %v", rejoined, err)
	}
}

func TestCategoryFromSlug(t *testing.T) {
	if got := CategoryFromSlug("design-principle/solid", "general"); got != "design-principle" {
		t.Errorf("category = %q", got)
	}
	if got := CategoryFromSlug("a/b/c", "general"); got != "a" {
		t.Errorf("category = %q", got)
	}
	if got := CategoryFromSlug("standalone", "general"); got != "general" {
		t.Errorf("separator-less slug category = %q, want default", got)
	}
}
