// Package rss parses RSS and Atom documents with a tolerant, pattern-based
// scanner rather than a strict XML parser. Many real-world newsletter feeds
// are slightly malformed; the scanner extracts what it can and skips what
// it cannot, keeping tag matching behind named helpers so the extraction
// semantics stay independently testable.
package rss

import (
	"regexp"
	"strings"
)

// tagPattern matches one element's content in raw feed text, with and
// without a CDATA wrapper. Matching is non-greedy: a block whose CDATA
// contains a literal closing tag for its enclosing element splits early
// and mis-extracts. That is an accepted limitation of the scanner design.
type tagPattern struct {
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

func newTagPattern(tag string) tagPattern {
	t := regexp.QuoteMeta(tag)
	return tagPattern{
		cdata: regexp.MustCompile(`(?is)<` + t + `[^>]*>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + t + `>`),
		plain: regexp.MustCompile(`(?is)<` + t + `[^>]*>(.*?)</` + t + `>`),
	}
}

// Element patterns used by the parser. Compiled once at startup.
var (
	titleTag       = newTagPattern("title")
	dcTitleTag     = newTagPattern("dc:title")
	descriptionTag = newTagPattern("description")
	linkTag        = newTagPattern("link")
	contentTag     = newTagPattern("content:encoded")
	pubDateTag     = newTagPattern("pubDate")

	itemBlockRe  = regexp.MustCompile(`(?is)<item[\s>].*?</item>`)
	entryBlockRe = regexp.MustCompile(`(?is)<entry[\s>].*?</entry>`)
)

// firstCDATA returns the CDATA-wrapped content of the first occurrence of
// the element, if any.
func (p tagPattern) firstCDATA(s string) (string, bool) {
	if m := p.cdata.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	return "", false
}

// firstPlain returns the unwrapped content of the first occurrence of the
// element, if any.
func (p tagPattern) firstPlain(s string) (string, bool) {
	if m := p.plain.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	return "", false
}

// first returns the content of the first occurrence of the element,
// whether or not it is wrapped in CDATA.
func (p tagPattern) first(s string) (string, bool) {
	if v, ok := p.firstCDATA(s); ok {
		return v, true
	}
	return p.firstPlain(s)
}

// allBlocks returns every <item>...</item> block in document order,
// falling back to <entry>...</entry> blocks for Atom documents.
func allBlocks(doc string) []string {
	if blocks := itemBlockRe.FindAllString(doc, -1); len(blocks) > 0 {
		return blocks
	}
	return entryBlockRe.FindAllString(doc, -1)
}

// headBefore returns the portion of the document preceding its first item
// or entry block. Channel-level metadata is only extracted from this
// region so an item's title cannot masquerade as the feed title.
func headBefore(doc string) string {
	head := doc
	for _, marker := range []string{"<item", "<entry"} {
		if i := strings.Index(head, marker); i >= 0 {
			head = head[:i]
		}
	}
	return head
}
