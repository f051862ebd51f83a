package content

import (
	"path/filepath"
	"strings"
)

// Ext is the markdown extension that marks a file as a document.
const Ext = ".md"

// SlugFromPath maps an on-disk file path to its public slug: the path
// relative to root, separators normalized to forward slashes, extension
// stripped. Deterministic; inputs are assumed well-formed.
func SlugFromPath(root, filePath string) string {
	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		rel = filePath
	}
	return slugFromRel(filepath.ToSlash(rel))
}

// slugFromRel converts a slash-separated path relative to the content root.
func slugFromRel(rel string) string {
	return strings.TrimSuffix(rel, Ext)
}

// PathFromSlug is the inverse mapping, yielding a slash-separated path
// relative to the content root.
func PathFromSlug(slug string) string {
	return slug + Ext
}

// CategoryFromSlug returns the slug's first path segment, or fallback when
// the slug has no separator.
func CategoryFromSlug(slug, fallback string) string {
	if i := strings.IndexByte(slug, '/'); i >= 0 {
		return slug[:i]
	}
	return fallback
}
