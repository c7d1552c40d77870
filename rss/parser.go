package rss

import (
	"regexp"
	"strings"

	"github.com/fwojciec/subscan"
)

// MaxScannedItems bounds how many item blocks a single parse will process.
const MaxScannedItems = 15

// Ensure Parser implements subscan.FeedParser at compile time.
var _ subscan.FeedParser = (*Parser)(nil)

// Parser extracts feed metadata and post records from raw RSS/Atom text.
// Parser is stateless and safe for concurrent use.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

var residualTagRe = regexp.MustCompile(`<[^>]*>`)

// cleanText strips residual tags from an element's extracted content and
// decodes entities. Unlike subscan.StripTags it preserves the text as a
// single line, which is what titles and links need.
func cleanText(s string) string {
	return strings.TrimSpace(subscan.DecodeEntities(residualTagRe.ReplaceAllString(s, "")))
}

// Parse scans raw feed text and returns channel metadata plus the ordered
// list of items whose titles pass validation.
//
// Two shapes are fatal and return EFEEDFORMAT: a body with none of the
// "<rss", "<feed", "<?xml" markers, and a body with markers but neither
// an rss/channel pair nor a feed element with an xmlns attribute. Callers
// must not fall back to synthetic content on that error; any other parse
// shortfall simply yields fewer posts.
func (p *Parser) Parse(raw string) (*subscan.ParsedFeed, error) {
	if !strings.Contains(raw, "<rss") &&
		!strings.Contains(raw, "<feed") &&
		!strings.Contains(raw, "<?xml") {
		return nil, subscan.Errorf(subscan.EFEEDFORMAT, "response is not an XML document")
	}

	hasRSS := strings.Contains(raw, "<rss") && strings.Contains(raw, "<channel")
	hasAtom := strings.Contains(raw, "<feed") && strings.Contains(raw, "xmlns")
	if !hasRSS && !hasAtom {
		return nil, subscan.Errorf(subscan.EFEEDFORMAT, "document lacks RSS channel or Atom feed structure")
	}

	feed := &subscan.ParsedFeed{
		Metadata: parseMetadata(raw),
	}

	blocks := allBlocks(raw)
	if len(blocks) > MaxScannedItems {
		blocks = blocks[:MaxScannedItems]
	}

	for _, block := range blocks {
		post, ok := parseItem(block)
		if !ok {
			continue
		}
		feed.Posts = append(feed.Posts, post)
	}

	return feed, nil
}

// parseMetadata extracts the channel title and description from the
// region preceding the first item.
func parseMetadata(doc string) subscan.FeedMetadata {
	head := headBefore(doc)

	var md subscan.FeedMetadata
	if title, ok := titleTag.first(head); ok {
		md.Title = cleanText(title)
	}
	if desc, ok := descriptionTag.first(head); ok {
		md.Description = subscan.StripTags(desc)
	}
	return md
}

// parseItem extracts one post record from an item block. Returns ok=false
// when the item has no title or its title fails validation; such items
// are discarded silently.
func parseItem(block string) (subscan.Article, bool) {
	title, ok := itemTitle(block)
	if !ok {
		return subscan.Article{}, false
	}
	title = cleanText(title)
	if !subscan.ValidPostTitle(title) {
		return subscan.Article{}, false
	}

	post := subscan.Article{Title: title}

	if link, ok := linkTag.first(block); ok {
		post.URL = strings.TrimSpace(link)
	}
	if body, ok := itemBody(block); ok {
		post.Content = subscan.StripTags(body)
	}
	if date, ok := pubDateTag.first(block); ok {
		// Raw date text, deliberately unparsed.
		post.PublishedAt = strings.TrimSpace(date)
	}

	return post, true
}

// itemTitle tries the title sources in preference order: CDATA <title>,
// plain <title>, CDATA <dc:title>, plain <dc:title>.
func itemTitle(block string) (string, bool) {
	if t, ok := titleTag.firstCDATA(block); ok {
		return t, true
	}
	if t, ok := titleTag.firstPlain(block); ok {
		return t, true
	}
	if t, ok := dcTitleTag.firstCDATA(block); ok {
		return t, true
	}
	return dcTitleTag.firstPlain(block)
}

// itemBody prefers full <content:encoded> over <description>; the first
// non-empty source wins.
func itemBody(block string) (string, bool) {
	if body, ok := contentTag.first(block); ok && strings.TrimSpace(body) != "" {
		return body, true
	}
	if body, ok := descriptionTag.first(block); ok && strings.TrimSpace(body) != "" {
		return body, true
	}
	return "", false
}
