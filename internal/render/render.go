// Package render implements the markdown renderer: HTML conversion,
// frontmatter extraction, heading-derived table of contents, and estimated
// reading time. It is a pure function over the raw document text.
package render

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// wordsPerMinute is the reading speed used for the reading-time estimate.
const wordsPerMinute = 200

// Meta holds frontmatter fields recognized across the corpus.
type Meta struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Difficulty  string   `yaml:"difficulty"`
	Related     []string `yaml:"related"`
	Exclude     bool     `yaml:"exclude"`
}

// Heading is one table-of-contents entry. Children are the headings that
// follow this one at a deeper level, up to the next heading at this level
// or shallower.
type Heading struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Level    int        `json:"level"`
	Children []*Heading `json:"children,omitempty"`
}

// Result is the output of rendering one document.
type Result struct {
	HTML        string
	Body        string // markdown body with frontmatter stripped
	Meta        Meta
	TOC         []*Heading
	ReadingTime int // minutes, always >= 1
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render parses frontmatter, converts the body to HTML, extracts the TOC
// tree, and estimates reading time. Malformed frontmatter degrades to empty
// metadata with the full text treated as body; it is never an error.
func Render(raw []byte) (*Result, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		meta = Meta{}
		body = raw
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return nil, err
	}

	return &Result{
		HTML:        buf.String(),
		Body:        string(body),
		Meta:        meta,
		TOC:         extractTOC(body),
		ReadingTime: readingTime(body),
	}, nil
}

// extractTOC walks the markdown AST and nests each heading under the nearest
// preceding heading of a lower level. Equal-level headings are siblings.
func extractTOC(body []byte) []*Heading {
	doc := md.Parser().Parse(text.NewReader(body))

	var roots []*Heading
	var stack []*Heading

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		entry := &Heading{
			ID:    slug.Make(nodeText(h, body)),
			Title: nodeText(h, body),
			Level: h.Level,
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= entry.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, entry)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, entry)
		}
		stack = append(stack, entry)
	}
	return roots
}

// nodeText collects the plain text of a node's subtree.
func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// readingTime estimates minutes at wordsPerMinute, rounding up with a floor
// of one minute.
func readingTime(body []byte) int {
	words := len(strings.Fields(string(body)))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
