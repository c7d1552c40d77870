package subscan

// FeedMetadata holds channel-level feed information, derived once per
// feed fetch. Title may be empty when the feed has no title element
// before its first item.
type FeedMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ParsedFeed is the output of a feed parse: channel metadata plus the
// ordered list of items whose titles passed validation, in feed document
// order.
type ParsedFeed struct {
	Metadata FeedMetadata
	Posts    []Article
}

// FeedParser extracts metadata and posts from a raw RSS/Atom document.
type FeedParser interface {
	// Parse scans raw feed text and returns the parsed feed.
	// Returns EFEEDFORMAT when the body does not look like a feed at
	// all; callers must treat that condition as fatal rather than
	// falling back to synthetic content.
	Parse(raw string) (*ParsedFeed, error)
}

// ImageLocator finds a creator's profile image in an HTML document.
type ImageLocator interface {
	// Locate searches the document for the best profile image candidate
	// and returns its absolute URL, or "" when no usable image exists.
	// targetName is the best-known creator display name at call time,
	// used as a scoring hint; it may be empty.
	Locate(html, baseURL, targetName string) string
}
