// Package stactools provides href-addressed text I/O with a swappable
// process-wide strategy and scheme-dispatched storage backends.
//
// Hrefs are opaque location strings: bare paths, file://, http(s)://,
// s3://, memory://, or oci:// references. The facade functions delegate to
// whichever IO strategy is currently installed as the default.
//
// Basic usage (local files, no setup required):
//
//	err := stactools.WriteText(ctx, "catalog/item.json", text)
//	text, err := stactools.ReadText(ctx, "catalog/item.json")
//
// Remote storage goes through the backend registry. Install the
// backend-aware strategy and import the backends you need:
//
//	import (
//	    "github.com/sharkinsspatial/stactools"
//	    _ "github.com/sharkinsspatial/stactools/backend/httpio"
//	    _ "github.com/sharkinsspatial/stactools/backend/s3"
//	)
//
//	stactools.UseBackendIO()
//	text, err := stactools.ReadText(ctx, "s3://bucket/catalog.json")
//
// Reads accept an href modifier, typically used to append a credential
// token or translate to a signed URL:
//
//	text, err := stactools.ReadText(ctx, href,
//	    stactools.WithHrefModifier(func(h string) string { return h + token }))
//
// Backend-specific open parameters (credentials, headers, compression) are
// passed per call:
//
//	text, err := stactools.ReadText(ctx, href,
//	    stactools.WithReadParams(stactools.Params{"compression": "gzip"}))
package stactools
