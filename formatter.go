package subscan

import "strings"

// FormatArticles flattens articles into a single document for
// knowledge-base ingestion. Uses the article title as a header, falling
// back to the URL. Articles are separated by blank lines.
func FormatArticles(articles []Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.Title
		if header == "" {
			header = a.URL
		}
		parts = append(parts, "## Article: "+header+"\n"+a.Content)
	}

	return strings.Join(parts, "\n\n")
}
