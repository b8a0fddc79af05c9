// Package oci implements a read-only backend for oci:// hrefs that fetch
// blobs from an OCI registry by digest, e.g.
//
//	oci://ghcr.io/org/catalog@sha256:abc123...
//
// Authentication follows the Docker keychain unless explicit credentials
// are supplied via params.
package oci

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"

	"github.com/sharkinsspatial/stactools/backend"
)

// Scheme handled by this backend.
const Scheme = "oci"

// Params recognized by this backend.
const (
	ParamUsername = "username"
	ParamPassword = "password"
)

// Registry fetches registry blobs addressed by digest.
type Registry struct{}

func init() {
	backend.Register(Scheme, &Registry{})
}

// New creates an OCI registry backend.
func New() *Registry {
	return &Registry{}
}

// ParseHref converts an oci:// href into a registry digest reference.
func ParseHref(href string) (name.Digest, error) {
	rest, ok := strings.CutPrefix(href, "oci://")
	if !ok {
		return name.Digest{}, fmt.Errorf("oci: not an oci href: %s", href)
	}
	digest, err := name.NewDigest(rest)
	if err != nil {
		return name.Digest{}, fmt.Errorf("oci: invalid blob reference %q: %w", rest, err)
	}
	return digest, nil
}

// NewReader streams the uncompressed blob layer addressed by href.
func (r *Registry) NewReader(ctx context.Context, href string, params backend.Params) (io.ReadCloser, error) {
	digest, err := ParseHref(href)
	if err != nil {
		return nil, err
	}

	layer, err := remote.Layer(digest, remoteOptions(ctx, params)...)
	if err != nil {
		return nil, err
	}
	return layer.Uncompressed()
}

// NewWriter always fails: the OCI backend is read-only.
func (r *Registry) NewWriter(ctx context.Context, href string, params backend.Params) (io.WriteCloser, error) {
	return nil, backend.ErrReadOnly
}

func remoteOptions(ctx context.Context, params backend.Params) []remote.Option {
	opts := []remote.Option{remote.WithContext(ctx)}
	if username := params.String(ParamUsername, ""); username != "" {
		opts = append(opts, remote.WithAuth(&authn.Basic{
			Username: username,
			Password: params.String(ParamPassword, ""),
		}))
	} else {
		opts = append(opts, remote.WithAuthFromKeychain(authn.DefaultKeychain))
	}
	return opts
}
