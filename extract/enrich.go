package extract

import (
	"context"
	"net/url"

	"github.com/fwojciec/subscan"
	"golang.org/x/sync/errgroup"
)

// DefaultEnrichConcurrency bounds how many article pages are fetched at
// once during enrichment.
const DefaultEnrichConcurrency = 3

// Enricher replaces feed-derived article content with the full article
// text fetched from each post URL, extracted with boilerplate removed and
// converted to Markdown for knowledge-base ingestion.
type Enricher struct {
	Fetcher   subscan.Fetcher
	Extractor subscan.ArticleExtractor

	// Fallback is tried when Extractor fails on a page. Optional.
	Fallback subscan.ArticleExtractor

	Converter subscan.Converter

	// Limiter paces article fetches per host. Optional.
	Limiter *HostLimiter

	// Concurrency bounds parallel fetches. Values < 1 use the default.
	Concurrency int
}

// Enrich returns a copy of posts where each post with a URL carries full
// article Markdown in Content. A post whose fetch, extraction, or
// conversion fails keeps its feed-derived content; enrichment failures
// are never fatal.
func (e *Enricher) Enrich(ctx context.Context, posts []subscan.Article) []subscan.Article {
	enriched := make([]subscan.Article, len(posts))
	copy(enriched, posts)

	concurrency := e.Concurrency
	if concurrency < 1 {
		concurrency = DefaultEnrichConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range enriched {
		if enriched[i].URL == "" {
			continue
		}
		g.Go(func() error {
			if content, ok := e.enrichOne(gctx, enriched[i].URL); ok {
				enriched[i].Content = content
			}
			return nil
		})
	}

	// Workers only report success through the slice; the group exists
	// for bounded concurrency and context propagation.
	_ = g.Wait()

	return enriched
}

// enrichOne fetches one article page and returns its Markdown content.
func (e *Enricher) enrichOne(ctx context.Context, articleURL string) (string, bool) {
	if e.Limiter != nil {
		if u, err := url.Parse(articleURL); err == nil {
			if err := e.Limiter.Wait(ctx, u.Host); err != nil {
				return "", false
			}
		}
	}

	fctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	html, err := e.Fetcher.Fetch(fctx, articleURL)
	if err != nil {
		return "", false
	}

	content, err := e.Extractor.Extract(html)
	if err != nil && e.Fallback != nil {
		content, err = e.Fallback.Extract(html)
	}
	if err != nil || content == nil || content.ContentHTML == "" {
		return "", false
	}

	markdown, err := e.Converter.Convert(content.ContentHTML)
	if err != nil {
		return "", false
	}

	return markdown, true
}
