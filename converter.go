package subscan

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms article HTML into Markdown suitable for
	// knowledge-base ingestion. The input should be clean HTML
	// (e.g., from an ArticleExtractor).
	Convert(html string) (string, error)
}
