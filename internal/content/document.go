// Package content implements the corpus pipeline: scanning the content root,
// loading documents, building the in-memory index, substring search, and the
// static fallback snapshot used when the file system fails.
package content

import "github.com/sgx-labs/docsmith/internal/render"

// Metadata is the small per-document metadata block shown in listings.
type Metadata struct {
	ReadingTime int    `json:"readingTime"`
	LastUpdated string `json:"lastUpdated"` // date-only, 2006-01-02
	Difficulty  string `json:"difficulty,omitempty"`
}

// Summary is the minimal addressable unit for listing and searching.
// Slug is the identity key for every lookup.
type Summary struct {
	Slug        string   `json:"slug"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Metadata    Metadata `json:"metadata"`
}

// Document is a Summary plus the rendered body and structural metadata.
// Prev and Next are not intrinsic to the document: they are recomputed
// against the full index on every fetch and are empty at corpus boundaries.
type Document struct {
	Summary
	Content string            `json:"content"`
	TOC     []*render.Heading `json:"toc"`
	Tags    []string          `json:"tags"`
	Related []string          `json:"related"`
	Prev    string            `json:"prev,omitempty"`
	Next    string            `json:"next,omitempty"`
}

// SearchResult is a Summary with a relevance score. Scoring is deliberately
// trivial: a title hit outranks a description hit.
type SearchResult struct {
	Summary
	Score float64 `json:"score"`
}
