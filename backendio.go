package stactools

import (
	"context"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/sharkinsspatial/stactools/backend"
	"github.com/sharkinsspatial/stactools/internal/codec"
)

// BackendIO is an IO strategy that routes every read and write through
// the scheme-dispatched backend registry, so any registered scheme works
// transparently. Content is read eagerly and validated as UTF-8; the
// optional "compression" parameter selects a stream codec.
type BackendIO struct{}

// NewBackendIO creates a backend-aware IO strategy.
func NewBackendIO() *BackendIO {
	return &BackendIO{}
}

// ReadTextFromHref resolves href through the backend registry and returns
// the decoded content. The backend stream is closed on every exit path,
// including decode failure. Backend errors propagate unwrapped.
func (s *BackendIO) ReadTextFromHref(ctx context.Context, href string, params Params) (_ string, err error) {
	b, err := backend.Resolve(href)
	if err != nil {
		return "", err
	}

	stream, err := b.NewReader(ctx, href, params)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	decoded, err := codec.Reader(stream, params.String(codec.Param, codec.None))
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := decoded.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := io.ReadAll(decoded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Href: href}
	}
	return string(data), nil
}

// WriteTextToHref writes text to href through the backend registry. The
// backend stream is closed on every exit path; there is no partial-write
// recovery, so an interrupted write leaves whatever the backend leaves.
func (s *BackendIO) WriteTextToHref(ctx context.Context, href string, text string, params Params) (err error) {
	b, err := backend.Resolve(href)
	if err != nil {
		return err
	}

	// Opening the backend writer truncates the target, so reject a bad
	// compression parameter before any backend state changes.
	alg := params.String(codec.Param, codec.None)
	if err := codec.Validate(alg); err != nil {
		return err
	}

	stream, err := b.NewWriter(ctx, href, params)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	encoder, err := codec.Writer(stream, alg)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(encoder, text); err != nil {
		encoder.Close()
		return err
	}
	return encoder.Close()
}

var deprecateWriteOnce sync.Once

// WriteTextFromHref forwards to WriteTextToHref, emitting a one-time
// deprecation notice.
//
// Deprecated: use WriteTextToHref. WriteTextFromHref will be removed
// after v0.5.0.
func (s *BackendIO) WriteTextFromHref(ctx context.Context, href string, text string, params Params) error {
	deprecateWriteOnce.Do(func() {
		log.Warn("WriteTextFromHref is deprecated and will be removed after v0.5.0",
			"replacement", "WriteTextToHref")
	})
	return s.WriteTextToHref(ctx, href, text, params)
}
