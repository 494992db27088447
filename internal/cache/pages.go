package cache

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

// MaxEntriesPerPath bounds how many query variants of one path are kept.
// Further variants are rendered but not stored until the path is invalidated.
const MaxEntriesPerPath = 256

type key struct {
	vary string
	uri  string
}

type entry struct {
	header http.Header
	body   []byte
}

// bucket holds the renders of one path. gen advances on every invalidation so
// renders started before it are not stored afterwards.
type bucket struct {
	gen     uint64
	entries map[key]entry
}

// Pages keeps rendered GET responses keyed by request URI until their path is
// invalidated. Responses are additionally partitioned by the value of vary,
// typically the signed-in user.
type Pages struct {
	mu    sync.RWMutex
	paths map[string]*bucket
	vary  func(*http.Request) string
}

func NewPages(vary func(*http.Request) string) *Pages {
	if vary == nil {
		vary = func(*http.Request) string { return "" }
	}

	return &Pages{paths: make(map[string]*bucket), vary: vary}
}

// Invalidate drops every cached rendering of path, whatever its query string.
func (p *Pages) Invalidate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := p.bucket(path)
	b.gen++
	clear(b.entries)
}

func (p *Pages) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, b := range p.paths {
		n += len(b.entries)
	}

	return n
}

// bucket returns the bucket of path, creating it. Callers hold the write lock.
func (p *Pages) bucket(path string) *bucket {
	b, ok := p.paths[path]
	if !ok {
		b = &bucket{entries: make(map[key]entry)}
		p.paths[path] = b
	}

	return b
}

// lookup returns the cached render of k under path and the path's current
// generation.
func (p *Pages) lookup(path string, k key) (entry, bool, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	b, ok := p.paths[path]
	if !ok {
		return entry{}, false, 0
	}

	e, hit := b.entries[k]

	return e, hit, b.gen
}

// store records e unless path was invalidated since gen was read or the path
// is full.
func (p *Pages) store(path string, k key, gen uint64, e entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	b := p.bucket(path)
	if b.gen != gen || len(b.entries) >= MaxEntriesPerPath {
		return
	}

	b.entries[k] = e
}

// Middleware serves GET requests from the cache and records successful renders.
// Responses that set cookies are never stored.
func (p *Pages) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		path := r.URL.Path
		k := key{vary: p.vary(r), uri: r.URL.RequestURI()}

		e, ok, gen := p.lookup(path, k)
		if ok {
			for name, values := range e.header {
				w.Header()[name] = values
			}

			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(e.body)

			return
		}

		var buf bytes.Buffer

		w.Header().Set("X-Cache", "MISS")

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)

		next.ServeHTTP(ww, r)

		if ww.Status() != http.StatusOK || ww.Header().Get("Set-Cookie") != "" {
			return
		}

		header := ww.Header().Clone()
		header.Del("X-Cache")

		p.store(path, k, gen, entry{header: header, body: buf.Bytes()})
	})
}
