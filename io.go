package stactools

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sharkinsspatial/stactools/backend"
	"github.com/sharkinsspatial/stactools/backend/local"
)

// Params carries backend-specific open parameters.
// Re-exported from the backend package for convenience.
type Params = backend.Params

// ReadHrefModifier transforms an href before it is read, e.g. appending a
// SAS token or translating to a signed URL. Modifiers apply to reads only;
// callers needing write-path rewriting must pre-apply it themselves.
type ReadHrefModifier func(href string) string

// IO is the strategy for reading and writing text addressed by hrefs.
// Exactly one IO is installed as the process-wide default at any time; the
// facade functions delegate to it.
type IO interface {
	// ReadTextFromHref resolves href and returns its content as a
	// UTF-8 string.
	ReadTextFromHref(ctx context.Context, href string, params Params) (string, error)

	// WriteTextToHref writes text to the resource at href, replacing
	// any existing content.
	WriteTextToHref(ctx context.Context, href string, text string, params Params) error
}

type ioSlot struct {
	strategy IO
}

var defaultIO atomic.Pointer[ioSlot]

func init() {
	defaultIO.Store(&ioSlot{strategy: &LocalIO{}})
}

// DefaultIO returns the current default IO strategy. The default is never
// nil; the package starts with a LocalIO installed.
func DefaultIO() IO {
	return defaultIO.Load().strategy
}

// SetDefaultIO installs strategy as the process-wide default. Calls
// already in flight keep the strategy they captured at call start.
// SetDefaultIO panics on a nil strategy.
func SetDefaultIO(strategy IO) {
	if strategy == nil {
		panic("stactools: SetDefaultIO with nil strategy")
	}
	defaultIO.Store(&ioSlot{strategy: strategy})
}

// UseBackendIO installs the backend-aware strategy as the process-wide
// default, routing all facade reads and writes through the scheme
// registry. Calling it more than once is harmless.
func UseBackendIO() {
	SetDefaultIO(NewBackendIO())
}

// ReadText reads the content at href as a UTF-8 string using the current
// default IO strategy. An href modifier supplied via WithHrefModifier is
// applied to href first; read parameters are forwarded to the strategy
// either way. Errors from the strategy propagate unwrapped.
func ReadText(ctx context.Context, href string, opts ...ReadOption) (string, error) {
	cfg := newReadConfig(opts)
	strategy := DefaultIO()

	if cfg.modifier != nil {
		href = cfg.modifier(href)
	}
	return strategy.ReadTextFromHref(ctx, href, cfg.params)
}

// WriteText writes text to href using the current default IO strategy,
// forwarding any write parameters. Errors from the strategy propagate
// unwrapped.
func WriteText(ctx context.Context, href string, text string, opts ...WriteOption) error {
	cfg := newWriteConfig(opts)
	return DefaultIO().WriteTextToHref(ctx, href, text, cfg.params)
}

// LocalIO is the initial default strategy. It reads and writes local
// files directly, accepting bare paths and file:// hrefs, and does not
// consult the backend registry. Open parameters, including "compression",
// are not consulted either. Install a BackendIO via UseBackendIO for
// remote schemes and parameter-aware I/O.
type LocalIO struct{}

// ReadTextFromHref reads the local file at href.
func (s *LocalIO) ReadTextFromHref(ctx context.Context, href string, params Params) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(local.Path(href))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Href: href}
	}
	return string(data), nil
}

// WriteTextToHref writes text to the local file at href, creating parent
// directories as needed.
func (s *LocalIO) WriteTextToHref(ctx context.Context, href string, text string, params Params) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := local.Path(href)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0644)
}
