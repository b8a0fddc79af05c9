package stactools

import (
	"fmt"

	"github.com/sharkinsspatial/stactools/backend"
)

// DecodeError reports content that could not be decoded as UTF-8 text.
type DecodeError struct {
	Href string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("stactools: content at %s is not valid UTF-8", e.Href)
}

// UnknownSchemeError is returned when an href's scheme has no registered
// backend. Re-exported from the backend package for convenience.
type UnknownSchemeError = backend.UnknownSchemeError

// ErrReadOnly is returned when writing through a read-only backend.
// Re-exported from the backend package for convenience.
var ErrReadOnly = backend.ErrReadOnly
