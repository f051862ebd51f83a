package content

import (
	"fmt"
	"io/fs"
	"sync"
)

// Cache memoizes the summary index in front of a Library. The cached value
// is keyed by the corpus fingerprint (file count + newest mtime), so any
// file change invalidates it on the next read. The uncached Library remains
// the default; the cache is an opt-in for serving larger corpora.
type Cache struct {
	lib *Library

	mu        sync.Mutex
	key       string
	summaries []Summary
}

// NewCache wraps a Library with an mtime-keyed summary cache.
func NewCache(lib *Library) *Cache {
	return &Cache{lib: lib}
}

// ListAll returns the cached summary index, rebuilding it when the corpus
// fingerprint has moved since the last call.
func (c *Cache) ListAll() []Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	key, err := c.fingerprint()
	if err == nil && key == c.key && c.summaries != nil {
		return c.summaries
	}
	sums := c.lib.ListAll()
	c.key = key
	c.summaries = sums
	return sums
}

// Search runs the substring search over the cached index.
func (c *Cache) Search(query string) []SearchResult {
	if len(query) < minQueryLen {
		return []SearchResult{}
	}
	return searchSummaries(c.ListAll(), query)
}

// ListByCategory filters the cached index by exact category match.
func (c *Cache) ListByCategory(category string) []Summary {
	return filterCategory(c.ListAll(), category)
}

// GetBySlug always goes to the underlying Library: full documents carry the
// rendered body and are not worth caching per the rescan-per-query contract.
func (c *Cache) GetBySlug(slug string) *Document {
	return c.lib.GetBySlug(slug)
}

// Related delegates to the underlying Library.
func (c *Cache) Related(slug string) []Summary {
	return c.lib.Related(slug)
}

// Invalidate drops the cached index. The watcher calls this on file events
// so the next read rebuilds even if mtime granularity would hide the change.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.key = ""
	c.summaries = nil
	c.mu.Unlock()
}

// fingerprint folds every eligible file's mtime into a cache key. Scan
// failures surface as an error so the caller rebuilds (and hits the
// Library's own fallback handling).
func (c *Cache) fingerprint() (string, error) {
	files, err := Scan(c.lib.fsys, c.lib.exclude)
	if err != nil {
		return "", err
	}
	var newest int64
	for _, f := range files {
		info, err := fs.Stat(c.lib.fsys, f)
		if err != nil {
			return "", err
		}
		if mt := info.ModTime().UnixNano(); mt > newest {
			newest = mt
		}
	}
	return fmt.Sprintf("%d:%d", len(files), newest), nil
}
