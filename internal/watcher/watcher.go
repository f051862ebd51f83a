// Package watcher monitors the content root and drops the serving cache when
// documents change.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/sgx-labs/docsmith/internal/content"
)

// debounceDelay batches rapid save events before invalidating.
const debounceDelay = 2 * time.Second

// Watch blocks, watching root recursively and invalidating cache whenever a
// markdown file is created, written, renamed, or removed. Returns when the
// event stream closes or the watcher cannot be created.
func Watch(root string, cache *content.Cache, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := walkDirs(root)
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			logger.Warn("watcher: cannot watch directory", "dir", d, "err", err)
		}
	}
	logger.Info("watching content root", "root", root, "dirs", len(dirs))

	var (
		mu    sync.Mutex
		dirty bool
		timer *time.Timer
	)

	flush := func() {
		mu.Lock()
		wasDirty := dirty
		dirty = false
		mu.Unlock()
		if wasDirty {
			cache.Invalidate()
			logger.Info("content changed, cache invalidated")
		}
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				// New subdirectories need their own watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !strings.HasPrefix(filepath.Base(event.Name), ".") {
						if err := w.Add(event.Name); err != nil {
							logger.Warn("watcher: cannot watch directory", "dir", event.Name, "err", err)
						}
					}
					continue
				}
			}

			if !strings.HasSuffix(event.Name, content.Ext) {
				continue
			}

			mu.Lock()
			dirty = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, flush)
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: event stream error", "err", err)
		}
	}
}

// walkDirs lists root and every non-hidden subdirectory.
func walkDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs
}
