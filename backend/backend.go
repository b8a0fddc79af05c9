// Package backend defines the storage backend abstraction used to resolve
// hrefs to readable and writable streams, together with a scheme-keyed
// registry of backend implementations.
//
// Backend packages register themselves on load:
//
//	import (
//	    "github.com/sharkinsspatial/stactools/backend"
//	    _ "github.com/sharkinsspatial/stactools/backend/s3"
//	)
//
//	b, err := backend.Resolve("s3://bucket/catalog.json")
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// Params carries backend-specific open parameters, e.g. credentials,
// request headers, or a compression algorithm. Keys are backend-defined;
// unknown keys are ignored.
type Params map[string]any

// Backend resolves hrefs within one or more schemes to byte streams.
type Backend interface {
	// NewReader opens the resource at href for reading. The returned
	// reader must be closed by the caller.
	NewReader(ctx context.Context, href string, params Params) (io.ReadCloser, error)

	// NewWriter opens the resource at href for writing, truncating any
	// existing content. The write is not guaranteed durable until Close
	// returns. Read-only backends return ErrReadOnly.
	NewWriter(ctx context.Context, href string, params Params) (io.WriteCloser, error)
}

// ErrReadOnly is returned by NewWriter on backends that cannot write.
var ErrReadOnly = errors.New("backend: read-only backend")

// UnknownSchemeError records an href whose scheme has no registered backend.
type UnknownSchemeError struct {
	Scheme string
}

func (e *UnknownSchemeError) Error() string {
	if e.Scheme == "" {
		return "backend: no backend registered for local paths"
	}
	return fmt.Sprintf("backend: no backend registered for scheme %q", e.Scheme)
}

var (
	mu       sync.RWMutex
	backends = make(map[string]Backend)
)

// Register makes a backend available under the given scheme. The empty
// scheme matches hrefs without a scheme (bare filesystem paths).
// Register panics if the backend is nil or the scheme is already taken.
func Register(scheme string, b Backend) {
	if b == nil {
		panic("backend: Register with nil backend")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := backends[scheme]; ok {
		panic(fmt.Sprintf("backend: scheme %q already registered", scheme))
	}
	backends[scheme] = b
}

// Lookup returns the backend registered for scheme.
func Lookup(scheme string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	b, ok := backends[scheme]
	if !ok {
		return nil, &UnknownSchemeError{Scheme: scheme}
	}
	return b, nil
}

// Resolve returns the backend responsible for href, dispatching on its
// scheme. Hrefs without a scheme resolve to the empty-scheme backend.
func Resolve(href string) (Backend, error) {
	return Lookup(SchemeOf(href))
}

// Schemes returns the registered schemes in sorted order.
func Schemes() []string {
	mu.RLock()
	defer mu.RUnlock()

	schemes := make([]string, 0, len(backends))
	for s := range backends {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// SchemeOf extracts the scheme from an href, or "" for bare paths.
// Single-letter schemes are treated as Windows drive letters, not schemes.
func SchemeOf(href string) string {
	i := strings.Index(href, "://")
	if i <= 0 {
		return ""
	}
	scheme := href[:i]
	if len(scheme) == 1 {
		return ""
	}
	for _, r := range scheme {
		if !isSchemeRune(r) {
			return ""
		}
	}
	return strings.ToLower(scheme)
}

func isSchemeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '.':
		return true
	}
	return false
}
