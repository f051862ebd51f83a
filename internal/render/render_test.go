package render

import (
	"strings"
	"testing"
)

func TestRenderFrontmatter(t *testing.T) {
	raw := `---
title: Observer Pattern
description: Decouple publishers from subscribers
tags: [patterns, behavioral]
difficulty: intermediate
related:
  - design-pattern/strategy
---

# Observer Pattern

Body text.
`
	res, err := Render([]byte(raw))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Meta.Title != "Observer Pattern" {
		t.Errorf("title = %q", res.Meta.Title)
	}
	if res.Meta.Description != "Decouple publishers from subscribers" {
		t.Errorf("description = %q", res.Meta.Description)
	}
	if len(res.Meta.Tags) != 2 || res.Meta.Tags[0] != "patterns" || res.Meta.Tags[1] != "behavioral" {
		t.Errorf("tags = %v, want order-preserving [patterns behavioral]", res.Meta.Tags)
	}
	if res.Meta.Difficulty != "intermediate" {
		t.Errorf("difficulty = %q", res.Meta.Difficulty)
	}
	if len(res.Meta.Related) != 1 || res.Meta.Related[0] != "design-pattern/strategy" {
		t.Errorf("related = %v", res.Meta.Related)
	}
	if strings.Contains(res.Body, "---") {
		t.Error("frontmatter not stripped from body")
	}
	if !strings.Contains(res.HTML, "<h1") {
		t.Errorf("HTML missing heading: %q", res.HTML)
	}
}

func TestRenderMalformedFrontmatter(t *testing.T) {
	raw := "---\ntitle: [unclosed\n---\n\n# Still Here\n"
	res, err := Render([]byte(raw))
	if err != nil {
		t.Fatalf("malformed frontmatter should degrade, got error: %v", err)
	}
	if res.Meta.Title != "" {
		t.Errorf("meta should be empty, got title %q", res.Meta.Title)
	}
	if !strings.Contains(res.Body, "# Still Here") {
		t.Errorf("body should keep full text, got %q", res.Body)
	}
}

func TestRenderNoFrontmatter(t *testing.T) {
	res, err := Render([]byte("# Plain\n\nNo metadata here.\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Meta.Title != "" || len(res.Meta.Tags) != 0 {
		t.Errorf("expected empty meta, got %+v", res.Meta)
	}
}

func TestTOCNesting(t *testing.T) {
	body := `# Top

## First Section

### Detail A

### Detail B

## Second Section

# Another Top
`
	res, err := Render([]byte(body))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(res.TOC) != 2 {
		t.Fatalf("roots = %d, want 2", len(res.TOC))
	}
	top := res.TOC[0]
	if top.Title != "Top" || top.Level != 1 {
		t.Errorf("first root = %+v", top)
	}
	if len(top.Children) != 2 {
		t.Fatalf("Top children = %d, want 2", len(top.Children))
	}
	first := top.Children[0]
	if first.Title != "First Section" || len(first.Children) != 2 {
		t.Errorf("First Section = %+v", first)
	}
	// Equal-level headings are siblings, never nested.
	if first.Children[0].Title != "Detail A" || first.Children[1].Title != "Detail B" {
		t.Errorf("details = %+v", first.Children)
	}
	if top.Children[1].Title != "Second Section" {
		t.Errorf("second child = %+v", top.Children[1])
	}
	if res.TOC[1].Title != "Another Top" {
		t.Errorf("second root = %+v", res.TOC[1])
	}
}

func TestTOCSkipsLevels(t *testing.T) {
	// An h3 directly under an h1 still nests under it.
	res, err := Render([]byte("# Root\n\n### Deep\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(res.TOC) != 1 || len(res.TOC[0].Children) != 1 {
		t.Fatalf("TOC = %+v", res.TOC)
	}
	if res.TOC[0].Children[0].Level != 3 {
		t.Errorf("child level = %d", res.TOC[0].Children[0].Level)
	}
}

func TestHeadingIDs(t *testing.T) {
	res, err := Render([]byte("## SOLID Principles & You\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(res.TOC) != 1 {
		t.Fatalf("TOC = %+v", res.TOC)
	}
	if res.TOC[0].ID != "solid-principles-and-you" {
		t.Errorf("id = %q", res.TOC[0].ID)
	}
}

func TestReadingTimeFloor(t *testing.T) {
	res, err := Render([]byte("tiny"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.ReadingTime != 1 {
		t.Errorf("reading time = %d, want 1", res.ReadingTime)
	}
}

func TestReadingTimeRoundsUp(t *testing.T) {
	raw := strings.Repeat("word ", 201)
	res, err := Render([]byte(raw))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.ReadingTime != 2 {
		t.Errorf("reading time = %d, want 2 for 201 words", res.ReadingTime)
	}
}
