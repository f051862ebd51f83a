// Package web provides a local read-only JSON API over the content index.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sgx-labs/docsmith/internal/content"
	"github.com/sgx-labs/docsmith/internal/nav"
)

// Index is the query surface the server exposes. Both content.Library and
// content.Cache satisfy it.
type Index interface {
	ListAll() []content.Summary
	ListByCategory(category string) []content.Summary
	GetBySlug(slug string) *content.Document
	Search(query string) []content.SearchResult
	Related(slug string) []content.Summary
}

// Serve starts the API server on the given address and blocks.
func Serve(addr string, idx Index, navb *nav.Builder, version, root string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	handler := New(idx, navb, version, root)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	logger.Info("docsmith API listening", "url", fmt.Sprintf("http://%s", listener.Addr()))
	return http.Serve(listener, handler)
}

// New builds the full handler chain, exported for tests.
func New(idx Index, navb *nav.Builder, version, root string) http.Handler {
	s := &server{idx: idx, nav: navb, version: version, root: root}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/docs", s.handleDocs)
	mux.HandleFunc("/api/docs/", s.handleDocBySlug) // /api/docs/{slug}
	mux.HandleFunc("/api/categories/", s.handleCategory)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/navigation", s.handleNavigation)
	mux.HandleFunc("/api/related/", s.handleRelated) // /api/related/{slug}

	return localhostOnly(securityHeaders(mux))
}

type server struct {
	idx     Index
	nav     *nav.Builder
	version string
	root    string
}

// --- Middleware ---

func localhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		if idx := strings.LastIndex(host, ":"); idx >= 0 {
			host = host[:idx]
		}
		host = strings.Trim(host, "[]") // strip IPv6 brackets

		if host == "localhost" {
			next.ServeHTTP(w, r)
			return
		}
		if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
			next.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Forbidden", http.StatusForbidden)
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

// --- Handlers ---

const indexHTML = `<!doctype html>
<html><head><title>docsmith</title></head>
<body>
<h1>docsmith</h1>
<p>Read-only content API. Endpoints:</p>
<ul>
<li><code>GET /api/status</code></li>
<li><code>GET /api/docs</code></li>
<li><code>GET /api/docs/{slug}</code></li>
<li><code>GET /api/categories/{category}</code></li>
<li><code>GET /api/search?q=term</code></li>
<li><code>GET /api/navigation</code></li>
<li><code>GET /api/related/{slug}</code></li>
</ul>
</body></html>
`

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sums := s.idx.ListAll()
	categories := map[string]bool{}
	for _, sum := range sums {
		categories[sum.Category] = true
	}
	writeJSON(w, map[string]any{
		"document_count": len(sums),
		"category_count": len(categories),
		"version":        s.version,
		"content_root":   s.root,
	})
}

func (s *server) handleDocs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.idx.ListAll())
}

func (s *server) handleDocBySlug(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugSuffix(r.URL.Path, "/api/docs/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid slug")
		return
	}
	doc := s.idx.GetBySlug(slug)
	if doc == nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, doc)
}

func (s *server) handleCategory(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	if category == "" || strings.Contains(category, "/") {
		writeError(w, http.StatusBadRequest, "invalid category")
		return
	}
	writeJSON(w, s.idx.ListByCategory(category))
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) > 1000 {
		writeError(w, http.StatusBadRequest, "oversized query")
		return
	}
	writeJSON(w, s.idx.Search(query))
}

func (s *server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.nav.Groups())
}

func (s *server) handleRelated(w http.ResponseWriter, r *http.Request) {
	slug, ok := slugSuffix(r.URL.Path, "/api/related/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid slug")
		return
	}
	writeJSON(w, s.idx.Related(slug))
}

// slugSuffix extracts and sanity-checks the slug following prefix, rejecting
// traversal attempts.
func slugSuffix(urlPath, prefix string) (string, bool) {
	raw := strings.TrimPrefix(urlPath, prefix)
	decoded, err := url.PathUnescape(raw)
	if err != nil || decoded == "" {
		return "", false
	}
	clean := path.Clean(decoded)
	if strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") {
		return "", false
	}
	return clean, true
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
