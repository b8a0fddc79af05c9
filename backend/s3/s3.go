// Package s3 implements a backend for s3:// hrefs using the MinIO client,
// covering AWS S3 and any S3-compatible object store.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/sharkinsspatial/stactools/backend"
)

// Scheme handled by this backend.
const Scheme = "s3"

// DefaultEndpoint is used when no endpoint parameter is supplied.
const DefaultEndpoint = "s3.amazonaws.com"

// Params recognized by this backend.
const (
	ParamEndpoint        = "endpoint"
	ParamRegion          = "region"
	ParamAccessKeyID     = "access_key_id"
	ParamSecretAccessKey = "secret_access_key"
	ParamSessionToken    = "session_token"
	ParamUseSSL          = "use_ssl"
	ParamContentType     = "content_type"
)

// Store reads and writes S3 objects.
type Store struct{}

func init() {
	backend.Register(Scheme, &Store{})
}

// New creates an S3 backend. Connection details come from per-call params
// and the standard AWS environment variables.
func New() *Store {
	return &Store{}
}

// ParseHref splits an s3://bucket/key href into bucket and key.
func ParseHref(href string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(href, "s3://")
	if !ok {
		return "", "", fmt.Errorf("s3: not an s3 href: %s", href)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3: href must have the form s3://bucket/key: %s", href)
	}
	return bucket, key, nil
}

// NewReader opens the object at href for reading.
func (s *Store) NewReader(ctx context.Context, href string, params backend.Params) (io.ReadCloser, error) {
	bucket, key, err := ParseHref(href)
	if err != nil {
		return nil, err
	}

	client, err := newClient(params)
	if err != nil {
		return nil, err
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy; surface missing objects at open time.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

// NewWriter returns a writer that buffers content and uploads the object
// in a single PutObject call on Close.
func (s *Store) NewWriter(ctx context.Context, href string, params backend.Params) (io.WriteCloser, error) {
	bucket, key, err := ParseHref(href)
	if err != nil {
		return nil, err
	}

	client, err := newClient(params)
	if err != nil {
		return nil, err
	}

	return &writer{
		ctx:         ctx,
		client:      client,
		bucket:      bucket,
		key:         key,
		contentType: params.String(ParamContentType, "text/plain"),
	}, nil
}

// clientOptions assembles the endpoint and connection options from params.
// Explicit credential params win; otherwise the standard AWS environment
// chain applies.
func clientOptions(params backend.Params) (string, *minio.Options) {
	var creds *credentials.Credentials
	if accessKey := params.String(ParamAccessKeyID, ""); accessKey != "" {
		creds = credentials.NewStaticV4(
			accessKey,
			params.String(ParamSecretAccessKey, ""),
			params.String(ParamSessionToken, ""),
		)
	} else {
		creds = credentials.NewEnvAWS()
	}

	return params.String(ParamEndpoint, DefaultEndpoint), &minio.Options{
		Creds:  creds,
		Secure: params.Bool(ParamUseSSL, true),
		Region: params.String(ParamRegion, ""),
	}
}

func newClient(params backend.Params) (*minio.Client, error) {
	endpoint, opts := clientOptions(params)

	client, err := minio.New(endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("s3: create client for %s: %w", endpoint, err)
	}
	return client, nil
}

type writer struct {
	ctx         context.Context
	client      *minio.Client
	bucket      string
	key         string
	contentType string
	buf         bytes.Buffer
	closed      bool
}

func (w *writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("s3: write after close: s3://%s/%s", w.bucket, w.key)
	}
	return w.buf.Write(p)
}

func (w *writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	_, err := w.client.PutObject(w.ctx, w.bucket, w.key, &w.buf, int64(w.buf.Len()), minio.PutObjectOptions{
		ContentType: w.contentType,
	})
	return err
}
