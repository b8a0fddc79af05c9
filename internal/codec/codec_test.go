package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharkinsspatial/stactools/internal/codec"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{codec.Gzip, codec.Zstd} {
		alg := alg
		t.Run(alg, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			w, err := codec.Writer(&buf, alg)
			require.NoError(t, err, "Writer error")
			_, err = io.WriteString(w, "compressible content, compressible content")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := codec.Reader(&buf, alg)
			require.NoError(t, err, "Reader error")
			defer r.Close()

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, "compressible content, compressible content", string(data), "round-trip mismatch")
		})
	}
}

func TestNonePassthrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, err := codec.Writer(&buf, codec.None)
	require.NoError(t, err)
	_, err = io.WriteString(w, "raw")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "raw", buf.String(), "the empty algorithm must not transform content")

	r, err := codec.Reader(&buf, codec.None)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.Equal(t, "raw", string(data))
}

func TestUnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := codec.Reader(bytes.NewReader(nil), "snappy")
	require.Error(t, err, "unsupported algorithm must error on Reader")

	_, err = codec.Writer(io.Discard, "snappy")
	require.Error(t, err, "unsupported algorithm must error on Writer")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{codec.None, codec.Gzip, codec.Zstd} {
		require.NoError(t, codec.Validate(alg), "Validate(%q)", alg)
	}
	require.Error(t, codec.Validate("snappy"), "unsupported algorithm must fail validation")
}
