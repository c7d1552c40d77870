package mock

import "github.com/fwojciec/subscan"

var _ subscan.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of subscan.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*subscan.ArticleContent, error)
}

func (e *ArticleExtractor) Extract(html string) (*subscan.ArticleContent, error) {
	return e.ExtractFn(html)
}
