// Package memory implements an in-memory backend under the memory://
// scheme. It is mainly useful for tests and fixtures.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sharkinsspatial/stactools/backend"
)

// Scheme handled by this backend.
const Scheme = "memory"

// Store keeps resources in a mutex-guarded map keyed by href.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// Default is the registered instance backing memory:// hrefs.
var Default = New()

func init() {
	backend.Register(Scheme, Default)
}

// New creates an empty in-memory backend.
func New() *Store {
	return &Store{objects: make(map[string][]byte)}
}

// NewReader returns a reader over the content stored at href.
func (s *Store) NewReader(ctx context.Context, href string, params backend.Params) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data, ok := s.objects[href]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("memory: not found: %s", href)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// NewWriter returns a writer that stores its content under href on Close.
func (s *Store) NewWriter(ctx context.Context, href string, params backend.Params) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &writer{store: s, href: href}, nil
}

// Store sets the content at href directly, bypassing the writer path.
func (s *Store) Store(href string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[href] = append([]byte(nil), data...)
}

// Contents returns the content stored at href.
func (s *Store) Contents(href string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[href]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// Reset removes all stored resources.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = make(map[string][]byte)
}

type writer struct {
	store  *Store
	href   string
	buf    bytes.Buffer
	closed bool
}

func (w *writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("memory: write after close: %s", w.href)
	}
	return w.buf.Write(p)
}

func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.store.Store(w.href, w.buf.Bytes())
	return nil
}
