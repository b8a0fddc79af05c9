package local_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharkinsspatial/stactools/backend/local"
)

func TestLocalRoundTrip(t *testing.T) {
	t.Parallel()

	fs := local.New()
	href := filepath.Join(t.TempDir(), "nested", "dir", "item.json")

	w, err := fs.NewWriter(context.Background(), href, nil)
	require.NoError(t, err, "NewWriter must create parent directories")
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fs.NewReader(context.Background(), href, nil)
	require.NoError(t, err, "NewReader error")
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "payload", string(data), "round-trip mismatch")
}

func TestLocalFileScheme(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	r, err := local.New().NewReader(context.Background(), "file://"+filepath.ToSlash(path), nil)
	require.NoError(t, err, "file:// hrefs must resolve to local paths")
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "{}", string(data))
}

func TestLocalMissingFile(t *testing.T) {
	t.Parallel()

	_, err := local.New().NewReader(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err), "missing files surface the OS error unchanged")
}

func TestLocalCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := local.New().NewReader(ctx, "anything", nil)
	require.ErrorIs(t, err, context.Canceled)

	_, err = local.New().NewWriter(ctx, "anything", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.FromSlash("/data/item.json"), local.Path("file:///data/item.json"))
	require.Equal(t, filepath.FromSlash("relative/item.json"), local.Path("relative/item.json"))
}
