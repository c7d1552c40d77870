package subscan

import (
	"context"
	"strconv"
	"strings"
)

// MaxResultPosts caps the number of posts and articles surfaced to
// callers of the extraction pipeline.
const MaxResultPosts = 10

// Article is one post record surfaced in an ExtractionResult: the title
// plus whatever link, plain-text content, and raw publish date the feed
// carried.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Content     string `json:"content,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// ExtractionResult aggregates everything extracted from one newsletter.
// Created once per extraction run and immutable afterward; the caller
// owns all further persistence.
type ExtractionResult struct {
	Author          string            `json:"author"`
	PostTitles      []string          `json:"postTitles"`
	Articles        []Article         `json:"articles"`
	TotalPosts      int               `json:"totalPosts"`
	Category        string            `json:"category"`
	SiteURL         string            `json:"siteUrl"`
	FeedURL         string            `json:"feedUrl"`
	AboutURL        string            `json:"aboutUrl"`
	Description     string            `json:"description,omitempty"`
	ProfileImageURL string            `json:"profileImageUrl,omitempty"`
	Synthesized     bool              `json:"synthesized,omitempty"`
	Variables       map[string]string `json:"variables"`
}

// Variable map keys handed to the prompt-template consumer.
const (
	VarSiteURL         = "SUBSTACK_URL"
	VarFeedURL         = "RSS_URL"
	VarAboutURL        = "ABOUT_URL"
	VarCreatorName     = "CREATOR_NAME"
	VarCategory        = "CATEGORY"
	VarDescription     = "DESCRIPTION"
	VarProfileImageURL = "PROFILE_IMAGE_URL"
	VarPostCount       = "POST_COUNT"
	VarPostTitles      = "POST_TITLES"
)

// BuildVariables derives the flat variables map from the result fields.
// Optional fields with empty values are omitted.
func (r *ExtractionResult) BuildVariables() map[string]string {
	vars := map[string]string{
		VarSiteURL:     r.SiteURL,
		VarFeedURL:     r.FeedURL,
		VarAboutURL:    r.AboutURL,
		VarCreatorName: r.Author,
		VarCategory:    r.Category,
		VarPostCount:   strconv.Itoa(r.TotalPosts),
		VarPostTitles:  strings.Join(r.PostTitles, "\n"),
	}
	if r.Description != "" {
		vars[VarDescription] = r.Description
	}
	if r.ProfileImageURL != "" {
		vars[VarProfileImageURL] = r.ProfileImageURL
	}
	return vars
}

// ExtractionService runs the full extraction pipeline for one newsletter.
type ExtractionService interface {
	// Extract fetches and parses the newsletter's feed, homepage, and
	// about page, returning the assembled result.
	//
	// Only two failures surface as errors: EINVALID for an unusable
	// input URL, and EFEEDFORMAT when the feed endpoint returns a body
	// with no RSS/Atom structure. Every other failure degrades to a
	// best-effort result.
	Extract(ctx context.Context, siteURL string) (*ExtractionResult, error)
}

// ResultStore persists extraction results with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ResultStore interface {
	Save(ctx context.Context, result *ExtractionResult) error
	Commit() error
	Abort() error
}
