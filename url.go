package subscan

import (
	"net/url"
	"strings"
)

// AbsoluteURL resolves ref against base and returns the absolute form.
// Protocol-relative and path-relative references resolve correctly.
// If either URL fails to parse the reference is returned unmodified;
// resolution is best-effort and never fails.
func AbsoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}

	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}

	return b.ResolveReference(r).String()
}

// NormalizeSiteURL validates and canonicalizes a user-supplied newsletter
// URL: trims whitespace, defaults the scheme to https, and strips any
// trailing slash. Returns EINVALID if the URL is empty or unparseable.
func NormalizeSiteURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", Errorf(EINVALID, "newsletter URL required")
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "invalid newsletter URL %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}

	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}

// NameFromURL derives a provisional creator name from the URL subdomain.
// "jane-doe.substack.com" becomes "Jane Doe". Returns "" if the URL has
// no usable host.
func NameFromURL(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Host == "" {
		return ""
	}

	sub := strings.Split(u.Hostname(), ".")[0]
	words := strings.FieldsFunc(sub, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
