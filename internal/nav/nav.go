// Package nav supplies the curated site navigation tree. The tree is
// authored independently of the scanned corpus — the two can diverge, which
// is why Validate exists.
package nav

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/sgx-labs/docsmith/internal/content"
)

// Item is one navigation entry. External items link off-site and are never
// validated against the corpus.
type Item struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Icon     string `json:"icon,omitempty"`
	External bool   `json:"isExternal,omitempty"`
	Children []Item `json:"children,omitempty"`
}

// Group is a category section of the navigation tree.
type Group struct {
	Category     string `json:"category"`
	CategorySlug string `json:"categorySlug"`
	Description  string `json:"description,omitempty"`
	Items        []Item `json:"items"`
}

//go:embed navigation.json
var defaultJSON []byte

var (
	defaultGroups []Group
	defaultOnce   sync.Once
)

// Default returns the navigation tree bundled into the binary.
func Default() []Group {
	defaultOnce.Do(func() {
		if err := json.Unmarshal(defaultJSON, &defaultGroups); err != nil {
			defaultGroups = []Group{}
		}
	})
	return defaultGroups
}

// Builder serves the curated tree, preferring an operator-supplied file and
// falling back to the embedded default when the file is absent or broken.
type Builder struct {
	path string
	log  *log.Logger
}

// NewBuilder creates a Builder. path may be empty, meaning embedded-only.
func NewBuilder(path string, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{path: path, log: logger}
}

// Groups returns the navigation tree. File problems are logged and answered
// with the embedded default; callers never see an error.
func (b *Builder) Groups() []Group {
	if b.path == "" {
		return Default()
	}
	groups, err := LoadFile(b.path)
	if err != nil {
		b.log.Error("nav: loading navigation file failed, serving embedded tree", "path", b.path, "err", err)
		return Default()
	}
	return groups
}

// LoadFile parses a navigation tree from a JSON file.
func LoadFile(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navigation %s: %w", path, err)
	}
	var groups []Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parse navigation %s: %w", path, err)
	}
	return groups, nil
}

// Validate cross-checks the curated tree against the live corpus and returns
// human-readable warnings: navigation entries pointing at slugs the corpus
// does not have, and scanned categories absent from navigation. Divergence
// is a content problem, not a runtime failure.
func Validate(groups []Group, summaries []content.Summary) []string {
	known := make(map[string]bool, len(summaries))
	categories := make(map[string]bool)
	for _, s := range summaries {
		known[s.Slug] = true
		categories[s.Category] = true
	}

	var warnings []string
	navCategories := make(map[string]bool)
	for _, g := range groups {
		navCategories[g.CategorySlug] = true
		warnings = append(warnings, checkItems(g.Category, g.Items, known)...)
	}
	for cat := range categories {
		if !navCategories[cat] {
			warnings = append(warnings, fmt.Sprintf("category %q has documents but no navigation group", cat))
		}
	}
	return warnings
}

func checkItems(group string, items []Item, known map[string]bool) []string {
	var warnings []string
	for _, it := range items {
		if !it.External && it.Slug != "" && !known[it.Slug] {
			warnings = append(warnings, fmt.Sprintf("navigation entry %q (group %q) points at missing document %q", it.Title, group, it.Slug))
		}
		warnings = append(warnings, checkItems(group, it.Children, known)...)
	}
	return warnings
}
