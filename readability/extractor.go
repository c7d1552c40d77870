// Package readability provides a fallback subscan.ArticleExtractor used
// when trafilatura finds no content on a post page.
package readability

import (
	"strings"

	"github.com/fwojciec/subscan"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements subscan.ArticleExtractor at compile time.
var _ subscan.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*subscan.ArticleContent, error) {
	if rawHTML == "" {
		return nil, subscan.Errorf(subscan.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &subscan.ArticleContent{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
