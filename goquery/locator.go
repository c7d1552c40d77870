// Package goquery provides an HTML implementation of subscan.ImageLocator
// built on PuerkitoBio/goquery. It finds a creator's profile image by
// scoring candidate elements with heuristics rather than a classifier, so
// the exact tie-break and threshold behavior stays reproducible.
package goquery

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/subscan"
)

// Scoring weights for image candidates. Named so the ranking behavior is
// testable against each signal in isolation.
const (
	scoreFragmentKeyword = 3 // avatar/profile/author/user in fragment text
	scoreAvatarAlt       = 4 // "avatar" in the img alt attribute
	scoreTargetName      = 3 // creator name in alt text or fragment
	scoreSizeHint        = 2 // 96/112/128 dimensions or "112px" sizes
	scorePerSource       = 1 // each <source> child of a <picture>
	maxSourceScore       = 2 // cap on the <source> child bonus
)

// avatarSizes are the pixel dimensions Substack renders profile images at.
var avatarSizes = map[string]bool{"96": true, "112": true, "128": true}

// Ensure Locator implements subscan.ImageLocator at compile time.
var _ subscan.ImageLocator = (*Locator)(nil)

// Locator finds profile images in HTML documents. It searches four tiers
// in sequence: <picture> blocks, bare <img> tags, JSON-LD structured
// data, and Open Graph meta tags. Locator is stateless and safe for
// concurrent use.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate searches the document and returns the best candidate image as an
// absolute URL, or "" when every tier is exhausted. Malformed candidates
// (unparseable JSON-LD, empty srcsets) are skipped silently; a single bad
// element never aborts the search.
func (l *Locator) Locate(html, baseURL, targetName string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	target := strings.ToLower(strings.TrimSpace(targetName))

	if u := l.fromPictures(doc, baseURL, target); u != "" {
		return u
	}
	if u := l.fromBareImages(doc, baseURL, target); u != "" {
		return u
	}
	if u := l.fromJSONLD(doc, baseURL); u != "" {
		return u
	}
	return l.fromOpenGraph(doc, baseURL)
}

// scoredSelection pairs a candidate element with its heuristic score.
type scoredSelection struct {
	sel   *goquery.Selection
	score int
}

// rankDescending sorts candidates by score, highest first. The sort is
// stable so equally scored candidates keep document order.
func rankDescending(candidates []scoredSelection) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
}

// fromPictures scores every <picture> block and returns the first ranked
// fragment that yields a usable URL.
func (l *Locator) fromPictures(doc *goquery.Document, baseURL, target string) string {
	var candidates []scoredSelection
	doc.Find("picture").Each(func(_ int, sel *goquery.Selection) {
		candidates = append(candidates, scoredSelection{sel: sel, score: l.scorePicture(sel, target)})
	})
	rankDescending(candidates)

	for _, c := range candidates {
		if u := pictureURL(c.sel, baseURL); u != "" {
			return u
		}
	}
	return ""
}

// scorePicture computes the heuristic score for one <picture> fragment.
func (l *Locator) scorePicture(sel *goquery.Selection, target string) int {
	frag, err := goquery.OuterHtml(sel)
	if err != nil {
		frag = ""
	}
	fragLower := strings.ToLower(frag)

	img := sel.Find("img").First()
	alt := strings.ToLower(img.AttrOr("alt", ""))

	score := 0
	if hasAvatarKeyword(fragLower) {
		score += scoreFragmentKeyword
	}
	if strings.Contains(alt, "avatar") {
		score += scoreAvatarAlt
	}
	if target != "" && (strings.Contains(alt, target) || strings.Contains(fragLower, target)) {
		score += scoreTargetName
	}
	if hasSizeHint(sel, img) {
		score += scoreSizeHint
	}

	sources := sel.Find("source").Length() * scorePerSource
	if sources > maxSourceScore {
		sources = maxSourceScore
	}
	score += sources

	return score
}

// pictureURL resolves a <picture> fragment to one image URL: the first
// <img>'s srcset, then its src, then the first <source>'s srcset.
func pictureURL(sel *goquery.Selection, baseURL string) string {
	img := sel.Find("img").First()
	if srcset, ok := img.Attr("srcset"); ok {
		if u := subscan.PickBestSrc(srcset, baseURL); u != "" {
			return u
		}
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return subscan.AbsoluteURL(baseURL, src)
	}
	if srcset, ok := sel.Find("source").First().Attr("srcset"); ok {
		return subscan.PickBestSrc(srcset, baseURL)
	}
	return ""
}

// fromBareImages scores <img> tags outside any <picture> and returns the
// first ranked tag that yields a usable URL.
func (l *Locator) fromBareImages(doc *goquery.Document, baseURL, target string) string {
	var candidates []scoredSelection
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if sel.Closest("picture").Length() > 0 {
			return
		}
		candidates = append(candidates, scoredSelection{sel: sel, score: l.scoreImage(sel, target)})
	})
	rankDescending(candidates)

	for _, c := range candidates {
		if srcset, ok := c.sel.Attr("srcset"); ok {
			if u := subscan.PickBestSrc(srcset, baseURL); u != "" {
				return u
			}
		}
		if src, ok := c.sel.Attr("src"); ok && src != "" {
			return subscan.AbsoluteURL(baseURL, src)
		}
	}
	return ""
}

// scoreImage computes the heuristic score for one bare <img> tag.
func (l *Locator) scoreImage(sel *goquery.Selection, target string) int {
	frag, err := goquery.OuterHtml(sel)
	if err != nil {
		frag = ""
	}
	fragLower := strings.ToLower(frag)
	alt := strings.ToLower(sel.AttrOr("alt", ""))

	score := 0
	if hasAvatarKeyword(fragLower) {
		score += scoreFragmentKeyword
	}
	if strings.Contains(alt, "avatar") {
		score += scoreAvatarAlt
	}
	if target != "" && (strings.Contains(alt, target) || strings.Contains(fragLower, target)) {
		score += scoreTargetName
	}
	if hasSizeHint(sel, sel) {
		score += scoreSizeHint
	}

	return score
}

// hasAvatarKeyword reports whether lowercased fragment text contains any
// of the profile-image indicator words.
func hasAvatarKeyword(fragLower string) bool {
	for _, kw := range []string{"avatar", "profile", "author", "user"} {
		if strings.Contains(fragLower, kw) {
			return true
		}
	}
	return false
}

// hasSizeHint reports whether the candidate carries one of the dimensions
// Substack uses for profile images, either as a width/height attribute on
// the img or a sizes attribute starting with "112px" anywhere in the
// fragment.
func hasSizeHint(frag, img *goquery.Selection) bool {
	if avatarSizes[img.AttrOr("width", "")] || avatarSizes[img.AttrOr("height", "")] {
		return true
	}
	if strings.HasPrefix(img.AttrOr("sizes", ""), "112px") {
		return true
	}

	found := false
	frag.Find("[sizes]").Each(func(_ int, s *goquery.Selection) {
		if strings.HasPrefix(s.AttrOr("sizes", ""), "112px") {
			found = true
		}
	})
	return found
}

// fromJSONLD parses each application/ld+json script block and returns the
// first image, logo, or publisher.logo value present. Blocks that fail to
// parse are skipped.
func (l *Locator) fromJSONLD(doc *goquery.Document, baseURL string) string {
	result := ""
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var data map[string]any
		if err := json.Unmarshal([]byte(sel.Text()), &data); err != nil {
			return true
		}

		for _, v := range []any{data["image"], data["logo"]} {
			if u := imageFieldURL(v); u != "" {
				result = subscan.AbsoluteURL(baseURL, u)
				return false
			}
		}
		if pub, ok := data["publisher"].(map[string]any); ok {
			if u := imageFieldURL(pub["logo"]); u != "" {
				result = subscan.AbsoluteURL(baseURL, u)
				return false
			}
		}
		return true
	})
	return result
}

// imageFieldURL extracts a URL from a JSON-LD image field, which may be a
// plain string or an object with a url property.
func imageFieldURL(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if u, ok := t["url"].(string); ok {
			return u
		}
	}
	return ""
}

// fromOpenGraph returns the og:image meta content, checking the property
// attribute first and the name attribute as a fallback.
func (l *Locator) fromOpenGraph(doc *goquery.Document, baseURL string) string {
	if content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && content != "" {
		return subscan.AbsoluteURL(baseURL, content)
	}
	if content, ok := doc.Find(`meta[name="og:image"]`).First().Attr("content"); ok && content != "" {
		return subscan.AbsoluteURL(baseURL, content)
	}
	return ""
}
