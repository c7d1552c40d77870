package subscan

// ArticleContent holds the extracted content of a single post page.
type ArticleContent struct {
	// Title is the article title extracted from page metadata.
	Title string

	// ContentHTML is the article body as clean HTML with boilerplate
	// (nav, footer, subscribe widgets) removed.
	ContentHTML string
}

// ArticleExtractor extracts the main article content from a post page,
// removing boilerplate.
type ArticleExtractor interface {
	// Extract processes raw HTML and returns the article content.
	Extract(html string) (*ArticleContent, error)
}
