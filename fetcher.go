package subscan

import "context"

// Fetcher retrieves a document body from a URL.
// Implementations may use plain HTTP or browser automation for pages
// that require JavaScript rendering.
type Fetcher interface {
	// Fetch retrieves the body at url as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
