// Package extract orchestrates the newsletter extraction pipeline: feed
// fetch and parse, fallback synthesis, creator-name refinement, content
// categorization, profile-image location, and result assembly. The
// parsing itself lives in the rss and goquery packages; this package owns
// the control flow over the network fetches and the degradation policy.
package extract

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/subscan"
)

// FetchTimeout bounds each of the pipeline's network fetches: the feed,
// the homepage, and the about page. Each fetch is independently
// cancellable; a timed-out fetch degrades to the fallback path instead
// of failing the run.
const FetchTimeout = 15 * time.Second

// placeholderTitles seeds the result when the feed yields no posts, so
// downstream consumers always have content to display and categorize.
var placeholderTitles = []string{
	"Welcome to my newsletter",
	"Thoughts and reflections from this week",
	"What I have been reading and thinking about",
	"Notes on my latest project",
	"A look back at recent conversations",
}

// Ensure Pipeline implements subscan.ExtractionService at compile time.
var _ subscan.ExtractionService = (*Pipeline)(nil)

// Pipeline runs the full extraction flow for one newsletter. The two
// fetchers are separate because feeds and pages want different Accept
// headers; both may point at the same underlying client.
type Pipeline struct {
	FeedFetcher subscan.Fetcher
	PageFetcher subscan.Fetcher
	Parser      subscan.FeedParser
	Images      subscan.ImageLocator

	// Enricher optionally replaces feed-derived article content with
	// full article text fetched from each post URL. Nil disables
	// enrichment.
	Enricher *Enricher
}

// Extract runs the pipeline for siteURL.
//
// Exactly two conditions surface as errors: EINVALID when the input URL
// is empty or unparseable (checked before any network activity), and
// EFEEDFORMAT when the feed endpoint responds with a body that has no
// RSS/Atom structure. The latter means the target is not actually a
// newsletter feed, and callers key UI behavior off it, so it is not
// papered over with synthetic content. Every other failure (network,
// timeout, missing image, empty feed) degrades to a best-effort result.
func (p *Pipeline) Extract(ctx context.Context, siteURL string) (*subscan.ExtractionResult, error) {
	site, err := subscan.NormalizeSiteURL(siteURL)
	if err != nil {
		return nil, err
	}

	feedURL := site + "/feed"
	aboutURL := site + "/about"
	author := subscan.NameFromURL(site)

	parsed, err := p.fetchFeed(ctx, feedURL)
	if err != nil {
		// Only the feed-format condition is fatal; anything else
		// proceeds with an empty feed.
		if subscan.ErrorCode(err) == subscan.EFEEDFORMAT {
			return nil, err
		}
		parsed = &subscan.ParsedFeed{}
	}

	posts := parsed.Posts
	synthesized := false
	if len(posts) == 0 {
		posts = syntheticPosts()
		synthesized = true
	}

	if t := strings.TrimSpace(parsed.Metadata.Title); t != "" && !strings.Contains(strings.ToLower(t), "substack") {
		author = t
	}

	titles := make([]string, 0, len(posts))
	for _, post := range posts {
		titles = append(titles, post.Title)
	}

	category := subscan.Categorize(titles, parsed.Metadata.Description)
	image := p.locateImage(ctx, site, aboutURL, author)

	if p.Enricher != nil && !synthesized {
		posts = p.Enricher.Enrich(ctx, posts)
	}

	if len(posts) > subscan.MaxResultPosts {
		posts = posts[:subscan.MaxResultPosts]
		titles = titles[:subscan.MaxResultPosts]
	}

	result := &subscan.ExtractionResult{
		Author:          author,
		PostTitles:      titles,
		Articles:        posts,
		TotalPosts:      len(posts),
		Category:        category,
		SiteURL:         site,
		FeedURL:         feedURL,
		AboutURL:        aboutURL,
		Description:     parsed.Metadata.Description,
		ProfileImageURL: image,
		Synthesized:     synthesized,
	}
	result.Variables = result.BuildVariables()

	return result, nil
}

// fetchFeed retrieves and parses the feed with a bounded timeout.
func (p *Pipeline) fetchFeed(ctx context.Context, feedURL string) (*subscan.ParsedFeed, error) {
	fctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	body, err := p.FeedFetcher.Fetch(fctx, feedURL)
	if err != nil {
		return nil, err
	}

	return p.Parser.Parse(body)
}

// locateImage tries the homepage first and the about page only when the
// homepage yields nothing, avoiding an unnecessary fetch. Fetch failures
// yield an absent image, never an error.
func (p *Pipeline) locateImage(ctx context.Context, siteURL, aboutURL, targetName string) string {
	for _, pageURL := range []string{siteURL, aboutURL} {
		fctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		html, err := p.PageFetcher.Fetch(fctx, pageURL)
		cancel()
		if err != nil {
			continue
		}
		if u := p.Images.Locate(html, pageURL, targetName); u != "" {
			return u
		}
	}
	return ""
}

// syntheticPosts returns the fixed placeholder post list.
func syntheticPosts() []subscan.Article {
	posts := make([]subscan.Article, 0, len(placeholderTitles))
	for _, t := range placeholderTitles {
		posts = append(posts, subscan.Article{Title: t})
	}
	return posts
}
