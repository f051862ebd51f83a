package content

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// defaultExcludedFiles are structural files that never become documents,
// matched case-insensitively against the basename in any directory.
var defaultExcludedFiles = map[string]bool{
	"index.md":               true,
	"readme.md":              true,
	"overview.md":            true,
	"documentation-index.md": true,
}

// diagramMarker excludes diagram sources wherever they live in the tree.
const diagramMarker = "diagram"

// Scan enumerates all eligible document paths under the root of fsys, in
// lexical traversal order. Paths are slash-separated and relative to the
// root. A missing root is zero documents, not an error; any other failure
// propagates for the caller's fallback handling. extra extends the built-in
// filename denylist.
func Scan(fsys fs.FS, extra map[string]bool) ([]string, error) {
	if _, err := fs.Stat(fsys, "."); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if Eligible(d.Name()) && !extra[strings.ToLower(d.Name())] {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Eligible reports whether a file name passes the inclusion and exclusion
// rules: markdown extension, not a structural file, not a diagram source.
func Eligible(name string) bool {
	lower := strings.ToLower(path.Base(name))
	if !strings.HasSuffix(lower, Ext) {
		return false
	}
	if defaultExcludedFiles[lower] {
		return false
	}
	if strings.Contains(lower, diagramMarker) {
		return false
	}
	return true
}
