// Package bloom provides URL deduplication for batch scans using Bloom
// filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// falsePositiveRate trades a small chance of skipping a never-seen URL
// for constant memory; batch scans tolerate that.
const falsePositiveRate = 0.001

// SeenURLs tracks which newsletter URLs a batch has already processed.
// URLs are normalized before testing so "Foo.Substack.com/" and
// "https://foo.substack.com" count as the same newsletter.
type SeenURLs struct {
	f *bloom.BloomFilter
}

// NewSeenURLs creates a filter sized for n expected URLs.
func NewSeenURLs(n uint) *SeenURLs {
	if n == 0 {
		n = 1
	}
	return &SeenURLs{
		f: bloom.NewWithEstimates(n, falsePositiveRate),
	}
}

// Add records a URL as processed.
func (s *SeenURLs) Add(rawURL string) {
	s.f.AddString(normalize(rawURL))
}

// Seen returns true if the URL was probably processed already.
// False positives are possible; false negatives are not.
func (s *SeenURLs) Seen(rawURL string) bool {
	return s.f.TestString(normalize(rawURL))
}

// Count returns the approximate number of URLs in the filter.
func (s *SeenURLs) Count() uint {
	return uint(s.f.ApproximatedSize())
}

// normalize lowercases the host, strips the scheme, fragment, and any
// trailing slash. Unparseable URLs are normalized textually.
func normalize(rawURL string) string {
	trimmed := strings.TrimSpace(rawURL)
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return strings.ToLower(strings.TrimRight(strings.TrimSpace(rawURL), "/"))
	}

	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return strings.TrimRight(u.Host+u.Path, "/")
}
