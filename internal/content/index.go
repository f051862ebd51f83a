package content

import (
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// minQueryLen is the shortest query Search answers; anything shorter returns
// an empty result set without touching the corpus.
const minQueryLen = 2

// Library is the content index: the per-request materialization of the corpus
// as summaries. Every public operation independently re-scans the content
// root and falls back to the static snapshot on failure — there is no cache
// shared between calls, and no failure is ever visible to callers.
type Library struct {
	fsys            fs.FS
	root            string
	fallback        *Snapshot
	defaultCategory string
	exclude         map[string]bool
	log             *log.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithFS substitutes the content filesystem. Tests use this to inject
// read failures; production code leaves the os.DirFS default.
func WithFS(fsys fs.FS) Option {
	return func(l *Library) { l.fsys = fsys }
}

// WithFallback sets the snapshot served when the live corpus fails.
func WithFallback(s *Snapshot) Option {
	return func(l *Library) { l.fallback = s }
}

// WithLogger sets the logger for warnings and fallback activations.
func WithLogger(logger *log.Logger) Option {
	return func(l *Library) { l.log = logger }
}

// WithDefaultCategory sets the category for separator-less slugs.
func WithDefaultCategory(c string) Option {
	return func(l *Library) { l.defaultCategory = c }
}

// WithExcludedFiles extends the filename denylist.
func WithExcludedFiles(names []string) Option {
	return func(l *Library) {
		for _, n := range names {
			l.exclude[strings.ToLower(n)] = true
		}
	}
}

// New builds a Library over the given content root directory.
func New(root string, opts ...Option) *Library {
	l := &Library{
		fsys:            os.DirFS(root),
		root:            root,
		fallback:        DefaultSnapshot(),
		defaultCategory: "general",
		exclude:         map[string]bool{},
		log:             log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ListAll scans the corpus and loads a summary for every eligible file, in
// scan order. A missing root is an empty (non-nil-safe) listing; any other
// failure is logged and answered from the fallback snapshot.
func (l *Library) ListAll() []Summary {
	sums, err := l.listAll()
	if err != nil {
		l.log.Error("content: listing corpus failed, serving fallback", "root", l.root, "err", err)
		return l.fallback.Summaries()
	}
	return sums
}

// ListByCategory filters ListAll by exact category match.
func (l *Library) ListByCategory(category string) []Summary {
	sums, err := l.listAll()
	if err != nil {
		l.log.Error("content: category listing failed, serving fallback", "category", category, "err", err)
		sums = l.fallback.Summaries()
	}
	return filterCategory(sums, category)
}

// GetBySlug loads the full document for a slug, with prev/next assigned from
// the slug's position in ListAll order. A slug that resolves to no file is
// nil — not found is not a failure. Read or parse errors fall back.
func (l *Library) GetBySlug(slug string) *Document {
	doc, err := l.getBySlug(slug)
	if err != nil {
		l.log.Error("content: loading document failed, serving fallback", "slug", slug, "err", err)
		return l.fallback.Document(slug)
	}
	return doc
}

// Search answers a free-text query with a case-insensitive substring match
// over title and description, in ListAll order. Queries shorter than two
// characters return nothing.
func (l *Library) Search(query string) []SearchResult {
	if len(query) < minQueryLen {
		return []SearchResult{}
	}
	sums, err := l.listAll()
	if err != nil {
		l.log.Error("content: search failed, serving fallback", "query", query, "err", err)
		sums = l.fallback.Summaries()
	}
	return searchSummaries(sums, query)
}

// Related resolves a document's curated related-slug list to summaries,
// preserving ListAll order rather than the curated order.
func (l *Library) Related(slug string) []Summary {
	related, err := l.relatedSlugs(slug)
	if err != nil {
		l.log.Error("content: related lookup failed, serving fallback", "slug", slug, "err", err)
		if doc := l.fallback.Document(slug); doc != nil {
			return filterBySlugs(l.fallback.Summaries(), doc.Related)
		}
		return []Summary{}
	}
	if len(related) == 0 {
		return []Summary{}
	}
	sums, err := l.listAll()
	if err != nil {
		l.log.Error("content: related listing failed, serving fallback", "slug", slug, "err", err)
		sums = l.fallback.Summaries()
	}
	return filterBySlugs(sums, related)
}

// listAll is the primary path behind every listing operation.
func (l *Library) listAll() ([]Summary, error) {
	files, err := Scan(l.fsys, l.exclude)
	if err != nil {
		return nil, err
	}
	if files == nil {
		l.log.Warn("content: root missing, treating as empty corpus", "root", l.root)
		return []Summary{}, nil
	}

	ld := &loader{fsys: l.fsys, defaultCategory: l.defaultCategory}
	sums := make([]Summary, 0, len(files))
	for _, f := range files {
		s, err := ld.summary(f)
		if err == errSkipped {
			continue
		}
		if err != nil {
			return nil, err
		}
		sums = append(sums, *s)
	}
	return sums, nil
}

func (l *Library) getBySlug(slug string) (*Document, error) {
	ld := &loader{fsys: l.fsys, defaultCategory: l.defaultCategory}
	doc, err := ld.full(slug)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	sums, err := l.listAll()
	if err != nil {
		return nil, err
	}
	doc.Prev, doc.Next = neighbors(sums, slug)
	return doc, nil
}

func (l *Library) relatedSlugs(slug string) ([]string, error) {
	ld := &loader{fsys: l.fsys, defaultCategory: l.defaultCategory}
	doc, err := ld.full(slug)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Related, nil
}

// neighbors finds slug's position in the ordered summaries and returns the
// adjacent slugs. Absent slugs and corpus boundaries yield empty strings.
func neighbors(sums []Summary, slug string) (prev, next string) {
	for i, s := range sums {
		if s.Slug != slug {
			continue
		}
		if i > 0 {
			prev = sums[i-1].Slug
		}
		if i < len(sums)-1 {
			next = sums[i+1].Slug
		}
		return prev, next
	}
	return "", ""
}

func filterCategory(sums []Summary, category string) []Summary {
	out := make([]Summary, 0, len(sums))
	for _, s := range sums {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// filterBySlugs keeps summaries whose slug appears in want, preserving the
// order of sums.
func filterBySlugs(sums []Summary, want []string) []Summary {
	set := make(map[string]bool, len(want))
	for _, s := range want {
		set[s] = true
	}
	out := make([]Summary, 0, len(want))
	for _, s := range sums {
		if set[s.Slug] {
			out = append(out, s)
		}
	}
	return out
}

func searchSummaries(sums []Summary, query string) []SearchResult {
	q := strings.ToLower(query)
	out := make([]SearchResult, 0)
	for _, s := range sums {
		score := 0.0
		if strings.Contains(strings.ToLower(s.Title), q) {
			score += 2
		}
		if strings.Contains(strings.ToLower(s.Description), q) {
			score++
		}
		if score > 0 {
			out = append(out, SearchResult{Summary: s, Score: score})
		}
	}
	return out
}
