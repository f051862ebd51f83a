package content

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/sgx-labs/docsmith/internal/render"
)

// h1Pattern matches the first level-1 heading in the document body.
var h1Pattern = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t]*$`)

// purposePattern matches the description marker line authors use near the top
// of a document: "Purpose: ...", "**Purpose**: ...", or "**Purpose:** ...".
// First match wins.
var purposePattern = regexp.MustCompile(`(?mi)^(?:\*\*purpose:\*\*|\*\*purpose\*\*:|purpose:)[ \t]*(.+?)[ \t]*$`)

// untitled is the placeholder title when neither an H1 nor frontmatter
// provides one.
const untitled = "Untitled"

// loader reads and renders individual documents from a content filesystem.
type loader struct {
	fsys            fs.FS
	defaultCategory string
}

// errSkipped marks a document excluded via frontmatter rather than filename.
var errSkipped = errors.New("document excluded by frontmatter")

// summary loads the metadata-only record for one relative file path.
// Returns errSkipped when the document opts out via `exclude: true`.
func (l *loader) summary(rel string) (*Summary, error) {
	raw, err := fs.ReadFile(l.fsys, rel)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	res, err := render.Render(raw)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", rel, err)
	}
	if res.Meta.Exclude {
		return nil, errSkipped
	}

	slug := slugFromRel(rel)
	s := &Summary{
		Slug:        slug,
		Category:    CategoryFromSlug(slug, l.defaultCategory),
		Title:       extractTitle(res),
		Description: extractDescription(res),
		Metadata: Metadata{
			ReadingTime: res.ReadingTime,
			Difficulty:  res.Meta.Difficulty,
			LastUpdated: l.lastUpdated(rel),
		},
	}
	return s, nil
}

// full loads the complete document for a slug. A slug that does not resolve
// to a file yields (nil, nil); read and render failures are errors so the
// index can fall back.
func (l *loader) full(slug string) (*Document, error) {
	rel := PathFromSlug(slug)
	raw, err := fs.ReadFile(l.fsys, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	res, err := render.Render(raw)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", rel, err)
	}
	if res.Meta.Exclude {
		return nil, nil
	}

	doc := &Document{
		Summary: Summary{
			Slug:        slug,
			Category:    CategoryFromSlug(slug, l.defaultCategory),
			Title:       extractTitle(res),
			Description: extractDescription(res),
			Metadata: Metadata{
				ReadingTime: res.ReadingTime,
				Difficulty:  res.Meta.Difficulty,
				LastUpdated: l.lastUpdated(rel),
			},
		},
		Content: res.HTML,
		TOC:     res.TOC,
		Tags:    res.Meta.Tags,
		Related: res.Meta.Related,
	}
	return doc, nil
}

// lastUpdated formats the file's modification date. Empty when the
// filesystem cannot stat the file; the caller decides whether that matters.
func (l *loader) lastUpdated(rel string) string {
	info, err := fs.Stat(l.fsys, rel)
	if err != nil {
		return ""
	}
	return info.ModTime().Format("2006-01-02")
}

// extractTitle applies the precedence authors rely on:
// first H1 in the body > frontmatter title > "Untitled".
func extractTitle(res *render.Result) string {
	if m := h1Pattern.FindStringSubmatch(res.Body); m != nil {
		return strings.TrimSpace(m[1])
	}
	if res.Meta.Title != "" {
		return res.Meta.Title
	}
	return untitled
}

// extractDescription applies:
// first purpose-marker line > frontmatter description > "".
func extractDescription(res *render.Result) string {
	if m := purposePattern.FindStringSubmatch(res.Body); m != nil {
		return strings.TrimSpace(m[1])
	}
	return res.Meta.Description
}
