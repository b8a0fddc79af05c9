package httpio_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sharkinsspatial/stactools/backend"
	"github.com/sharkinsspatial/stactools/backend/httpio"
)

func TestHTTPRead(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "remote item")
	}))
	defer server.Close()

	r, err := httpio.New(nil).NewReader(context.Background(), server.URL+"/item.json", nil)
	require.NoError(t, err, "NewReader error")
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "remote item", string(data))
}

func TestHTTPStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := httpio.New(nil).NewReader(context.Background(), server.URL+"/missing.json", nil)

	var statusErr *httpio.StatusError
	require.ErrorAs(t, err, &statusErr, "non-2xx responses must fail with StatusError")
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestHTTPHeadersParam(t *testing.T) {
	t.Parallel()

	var seen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	params := backend.Params{
		httpio.ParamHeaders: map[string]string{"Authorization": "Bearer token"},
	}
	r, err := httpio.New(nil).NewReader(context.Background(), server.URL, params)
	require.NoError(t, err)
	r.Close()

	require.Equal(t, "Bearer token", seen, "header params must reach the request")
}

func TestHTTPWriteUnsupported(t *testing.T) {
	t.Parallel()

	_, err := httpio.New(nil).NewWriter(context.Background(), "http://example.com/item.json", nil)
	require.ErrorIs(t, err, backend.ErrReadOnly, "the HTTP backend is read-only")
}

func TestHTTPCanceledContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := httpio.New(nil).NewReader(ctx, server.URL, nil)
	require.Error(t, err, "canceled contexts must abort the request")
}
