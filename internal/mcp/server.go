// Package mcp exposes the content query surface as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sgx-labs/docsmith/internal/content"
	"github.com/sgx-labs/docsmith/internal/nav"
)

// Version is set by the caller (main) before Serve.
var Version = "dev"

// Serve runs the MCP server on stdio until the client disconnects.
func Serve(lib *content.Library, navb *nav.Builder) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "docsmith",
		Version: Version,
	}, nil)

	h := &handlers{lib: lib, nav: navb}
	registerTools(server, h)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server, h *handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List every document in the corpus as summaries (slug, category, title, description, reading time).\n\nArgs:\n  category: Optional category to filter by (e.g. 'design-pattern')\n\nReturns summaries in corpus order.",
	}, h.listDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_document",
		Description: "Read one document in full: rendered content, table of contents, tags, related slugs, and prev/next neighbors.\n\nArgs:\n  slug: Document slug as returned by list_documents or search_documents\n\nReturns the full document, or a not-found message.",
	}, h.getDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Search document titles and descriptions by case-insensitive substring.\n\nArgs:\n  query: Search term (at least 2 characters)\n\nReturns matching summaries with a simple relevance score.",
	}, h.searchDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_navigation",
		Description: "Return the curated site navigation tree (category groups with their articles).",
	}, h.getNavigation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_related",
		Description: "List the documents curated as related to one document.\n\nArgs:\n  slug: Source document slug\n\nReturns related summaries in corpus order.",
	}, h.getRelated)
}

type handlers struct {
	lib *content.Library
	nav *nav.Builder
}

// Tool input types

type listInput struct {
	Category string `json:"category,omitempty" jsonschema:"Optional category filter"`
}

type slugInput struct {
	Slug string `json:"slug" jsonschema:"Document slug"`
}

type searchInput struct {
	Query string `json:"query" jsonschema:"Search term (min 2 characters)"`
}

type emptyInput struct{}

// Tool handlers

func (h *handlers) listDocuments(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	var sums []content.Summary
	if input.Category != "" {
		sums = h.lib.ListByCategory(input.Category)
	} else {
		sums = h.lib.ListAll()
	}
	if len(sums) == 0 {
		return textResult("No documents found."), nil, nil
	}
	return jsonResult(sums), nil, nil
}

func (h *handlers) getDocument(ctx context.Context, req *mcp.CallToolRequest, input slugInput) (*mcp.CallToolResult, any, error) {
	doc := h.lib.GetBySlug(input.Slug)
	if doc == nil {
		return textResult(fmt.Sprintf("Document not found: %s", input.Slug)), nil, nil
	}
	return jsonResult(doc), nil, nil
}

func (h *handlers) searchDocuments(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, any, error) {
	results := h.lib.Search(input.Query)
	if len(results) == 0 {
		return textResult("No results."), nil, nil
	}
	return jsonResult(results), nil, nil
}

func (h *handlers) getNavigation(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, any, error) {
	return jsonResult(h.nav.Groups()), nil, nil
}

func (h *handlers) getRelated(ctx context.Context, req *mcp.CallToolRequest, input slugInput) (*mcp.CallToolResult, any, error) {
	sums := h.lib.Related(input.Slug)
	if len(sums) == 0 {
		return textResult(fmt.Sprintf("No related documents for: %s", input.Slug)), nil, nil
	}
	return jsonResult(sums), nil, nil
}

// Helpers

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return textResult(string(data))
}
