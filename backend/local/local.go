// Package local implements the filesystem backend. It handles bare paths
// and file:// hrefs and is registered for both on load.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sharkinsspatial/stactools/backend"
)

// Schemes handled by this backend.
const (
	Scheme     = ""
	FileScheme = "file"
)

// FS reads and writes files on the local filesystem.
type FS struct{}

func init() {
	backend.Register(Scheme, &FS{})
	backend.Register(FileScheme, &FS{})
}

// New creates a filesystem backend.
func New() *FS {
	return &FS{}
}

// NewReader opens the file at href for reading.
func (f *FS) NewReader(ctx context.Context, href string, params backend.Params) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(Path(href))
}

// NewWriter opens the file at href for writing, creating parent
// directories as needed and truncating existing content.
func (f *FS) NewWriter(ctx context.Context, href string, params backend.Params) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := Path(href)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

// Path converts an href to a filesystem path, stripping a file:// prefix
// and normalizing separators.
func Path(href string) string {
	if rest, ok := strings.CutPrefix(href, "file://"); ok {
		href = rest
	}
	return filepath.FromSlash(href)
}
