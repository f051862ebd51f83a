package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// fallbackJSON is the pre-baked snapshot bundled with the binary. Its shape
// matches the live data model exactly, so callers cannot tell the sources
// apart from the return types.
//
//go:embed fallback.json
var fallbackJSON []byte

// Snapshot is a static corpus: an ordered document list standing in for the
// scanned file system whenever the live path fails. Order defines prev/next.
type Snapshot struct {
	Documents []Document `json:"documents"`
}

var (
	defaultSnap     *Snapshot
	defaultSnapOnce sync.Once
)

// DefaultSnapshot returns the snapshot embedded in the binary.
func DefaultSnapshot() *Snapshot {
	defaultSnapOnce.Do(func() {
		defaultSnap = &Snapshot{}
		if err := json.Unmarshal(fallbackJSON, defaultSnap); err != nil {
			// The embedded snapshot is part of the build; a parse failure
			// here is a build defect, and an empty snapshot is the only
			// safe answer at runtime.
			defaultSnap = &Snapshot{}
		}
	})
	return defaultSnap
}

// LoadSnapshot reads a snapshot from a JSON file, for deployments that bake
// their own.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return &s, nil
}

// Summaries returns the snapshot's documents as summaries, in snapshot order.
func (s *Snapshot) Summaries() []Summary {
	out := make([]Summary, 0, len(s.Documents))
	for _, d := range s.Documents {
		out = append(out, d.Summary)
	}
	return out
}

// Document returns the snapshot document for a slug, or nil. Prev and next
// come from snapshot order, mirroring the live index. When duplicate slugs
// exist the later entry wins, matching the scan-order contract.
func (s *Snapshot) Document(slug string) *Document {
	idx := -1
	for i, d := range s.Documents {
		if d.Slug == slug {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	doc := s.Documents[idx]
	if idx > 0 {
		doc.Prev = s.Documents[idx-1].Slug
	}
	if idx < len(s.Documents)-1 {
		doc.Next = s.Documents[idx+1].Slug
	}
	return &doc
}
