// Package codec wraps backend streams with optional compression, selected
// by the "compression" open parameter.
package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Param is the open-parameter key naming the compression algorithm.
const Param = "compression"

// Supported algorithms.
const (
	None = ""
	Gzip = "gzip"
	Zstd = "zstd"
)

// Validate reports whether alg names a supported algorithm. Callers with
// a destructive follow-up (opening a backend writer truncates the target)
// should validate before touching the backend.
func Validate(alg string) error {
	switch alg {
	case None, Gzip, Zstd:
		return nil
	default:
		return fmt.Errorf("codec: unsupported compression %q", alg)
	}
}

// Reader wraps r with the decompressor for alg. The empty algorithm
// returns r unchanged behind a no-op Close.
func Reader(r io.Reader, alg string) (io.ReadCloser, error) {
	switch alg {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Zstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("codec: unsupported compression %q", alg)
	}
}

// Writer wraps w with the compressor for alg. The returned writer must be
// closed to flush; closing it does not close w.
func Writer(w io.Writer, alg string) (io.WriteCloser, error) {
	switch alg {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	default:
		return nil, fmt.Errorf("codec: unsupported compression %q", alg)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
