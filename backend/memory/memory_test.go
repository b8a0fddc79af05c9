package memory_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharkinsspatial/stactools/backend/memory"
)

func TestMemoryRoundTrip(t *testing.T) {
	t.Parallel()

	store := memory.New()
	href := "memory://catalog/item.json"

	w, err := store.NewWriter(context.Background(), href, nil)
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := store.NewReader(context.Background(), href, nil)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data), "round-trip mismatch")
}

func TestMemoryContentVisibleOnlyAfterClose(t *testing.T) {
	t.Parallel()

	store := memory.New()
	href := "memory://pending"

	w, err := store.NewWriter(context.Background(), href, nil)
	require.NoError(t, err)
	_, err = w.Write([]byte("buffered"))
	require.NoError(t, err)

	_, ok := store.Contents(href)
	require.False(t, ok, "content must not be visible before Close")

	require.NoError(t, w.Close())
	data, ok := store.Contents(href)
	require.True(t, ok)
	require.Equal(t, "buffered", string(data))
}

func TestMemoryWriteAfterClose(t *testing.T) {
	t.Parallel()

	store := memory.New()
	w, err := store.NewWriter(context.Background(), "memory://closed", nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	require.Error(t, err, "writes after Close must fail")
	require.NoError(t, w.Close(), "repeated Close is a no-op")
}

func TestMemoryNotFound(t *testing.T) {
	t.Parallel()

	_, err := memory.New().NewReader(context.Background(), "memory://absent", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestMemoryReset(t *testing.T) {
	t.Parallel()

	store := memory.New()
	store.Store("memory://a", []byte("x"))
	store.Reset()

	_, ok := store.Contents("memory://a")
	require.False(t, ok, "Reset must drop all resources")
}
