// Package http provides an HTTP-based implementation of subscan.Fetcher
// for fetching feeds and pages from newsletter sites that don't require
// JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/subscan"
)

// DefaultFetchTimeout bounds each request. Substack occasionally stalls
// on feed endpoints, so this is deliberately generous.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the scanner to upstream sites.
const DefaultUserAgent = "subscan/1.0 (+https://github.com/fwojciec/subscan)"

// Accept header values for the two document kinds the pipeline fetches.
const (
	AcceptFeed = "application/rss+xml, application/xml, text/xml, */*"
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Ensure Fetcher implements subscan.Fetcher at compile time.
var _ subscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves document bodies from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript; Substack pages
// are server-rendered so this is the default choice.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	accept    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (15s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAccept sets the Accept header sent with each request. Use
// AcceptFeed for feed endpoints and AcceptHTML (the default) for pages.
func WithAccept(accept string) Option {
	return func(f *Fetcher) {
		f.accept = accept
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		accept:    AcceptHTML,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", f.accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", subscan.Errorf(subscan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", subscan.Errorf(subscan.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
