// Package httpio implements a read-only backend for http:// and https://
// hrefs. Writes are not supported; callers needing uploads should use a
// storage-specific backend such as s3.
package httpio

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sharkinsspatial/stactools/backend"
)

// Schemes handled by this backend.
const (
	Scheme       = "http"
	SecureScheme = "https"
)

// Params recognized by this backend.
const (
	// ParamHeaders is a map[string]string of request headers, e.g. an
	// Authorization header for token-protected catalogs.
	ParamHeaders = "headers"

	// ParamClient overrides the *http.Client used for the request.
	ParamClient = "client"
)

// Client fetches hrefs over HTTP.
type Client struct {
	httpClient *http.Client
}

func init() {
	c := New(nil)
	backend.Register(Scheme, c)
	backend.Register(SecureScheme, c)
}

// New creates an HTTP backend. A nil httpClient uses http.DefaultClient.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// StatusError records a non-2xx response status for an href.
type StatusError struct {
	Href       string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpio: %s: %s", e.Href, e.Status)
}

// NewReader issues a GET for href and returns the response body. Non-2xx
// responses are drained, closed, and reported as a *StatusError.
func (c *Client) NewReader(ctx context.Context, href string, params backend.Params) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return nil, err
	}
	if headers, ok := params[ParamHeaders].(map[string]string); ok {
		for k, v := range headers {
			req.Header.Set(k, v)
		}
	}

	client := c.httpClient
	if override, ok := params[ParamClient].(*http.Client); ok && override != nil {
		client = override
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{Href: href, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp.Body, nil
}

// NewWriter always fails: the HTTP backend is read-only.
func (c *Client) NewWriter(ctx context.Context, href string, params backend.Params) (io.WriteCloser, error) {
	return nil, backend.ErrReadOnly
}
