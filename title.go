package subscan

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Post title length bounds. Shorter titles are almost always feed
// boilerplate; longer ones are usually body text that leaked into the
// title element.
const (
	MinTitleLength = 10
	MaxTitleLength = 200
)

var (
	titleURLRe        = regexp.MustCompile(`(?i)^(https?://|www\.)`)
	titleDigitsRe     = regexp.MustCompile(`^[0-9]+$`)
	titleLetterRe     = regexp.MustCompile(`[a-zA-Z]`)
	titleNewsletterRe = regexp.MustCompile(`(?i)newsletter.*substack`)
)

// titleBoilerplate holds titles rejected on exact match, compared
// case-insensitively and ignoring a trailing "s".
var titleBoilerplate = []string{"comment", "rss", "feed"}

// ValidPostTitle reports whether a candidate post title looks like a real
// post rather than feed noise. It is a pure predicate with no side effects.
func ValidPostTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	if n < MinTitleLength || n > MaxTitleLength {
		return false
	}
	if titleURLRe.MatchString(title) {
		return false
	}

	lower := strings.ToLower(title)
	if strings.Contains(lower, "subscribe") {
		return false
	}
	for _, b := range titleBoilerplate {
		if lower == b || lower == b+"s" {
			return false
		}
	}

	if titleDigitsRe.MatchString(title) {
		return false
	}
	if !titleLetterRe.MatchString(title) {
		return false
	}
	if titleNewsletterRe.MatchString(title) {
		return false
	}

	return true
}
