package subscan

import (
	"regexp"
	"strings"
)

// entityReplacer decodes the common named HTML/XML character entities.
// The patterns do not overlap, so a single pass is sufficient and the
// operation is idempotent on already-decoded text.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	brTagRe       = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockTagRe    = regexp.MustCompile(`(?i)</?(?:p|div|h[1-6])\b[^>]*>`)
	listItemRe    = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	anyTagRe      = regexp.MustCompile(`<[^>]*>`)

	newlineRunRe = regexp.MustCompile(`[ \t]*\n[\s]*`)
	spaceRunRe   = regexp.MustCompile(`[ \t]{2,}`)
)

// DecodeEntities replaces the common named character entities with their
// literal characters. Unknown entities are left untouched.
func DecodeEntities(text string) string {
	if text == "" {
		return ""
	}
	return entityReplacer.Replace(text)
}

// StripTags converts an HTML fragment to plain text. Script and style
// blocks are removed entirely, line breaks and block-level tags become
// newlines, list items become "- " bullets, all remaining tags are
// stripped, entities are decoded, and whitespace is collapsed.
func StripTags(html string) string {
	if html == "" {
		return ""
	}

	text := scriptBlockRe.ReplaceAllString(html, "")
	text = styleBlockRe.ReplaceAllString(text, "")
	text = brTagRe.ReplaceAllString(text, "\n")
	text = blockTagRe.ReplaceAllString(text, "\n")
	text = listItemRe.ReplaceAllString(text, "\n- ")
	text = anyTagRe.ReplaceAllString(text, "")
	text = DecodeEntities(text)

	text = newlineRunRe.ReplaceAllString(text, "\n")
	text = spaceRunRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
