// Package http provides an HTTP-based implementation of edugen.Fetcher
// for retrieving reference pages supplied as URL sources.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/edugen"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements edugen.Fetcher at compile time.
var _ edugen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", edugen.Errorf(edugen.EINVALID, "invalid url %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", edugen.Errorf(edugen.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", edugen.Errorf(edugen.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", edugen.Errorf(edugen.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", edugen.Errorf(edugen.EUNAVAILABLE, "read response from %s: %v", url, err)
	}

	return string(body), nil
}
