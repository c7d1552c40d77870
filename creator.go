package subscan

import (
	"context"
	"time"
)

// Creator represents one scanned newsletter creator persisted in storage.
type Creator struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SiteURL         string    `json:"siteUrl"`
	FeedURL         string    `json:"feedUrl"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate returns an error if the creator contains invalid fields.
func (c *Creator) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "creator name required")
	}
	if c.SiteURL == "" {
		return Errorf(EINVALID, "creator site URL required")
	}
	return nil
}

// CreatorService represents a service for managing scanned creators.
type CreatorService interface {
	// CreateCreator creates a new creator.
	CreateCreator(ctx context.Context, creator *Creator) error

	// FindCreatorByID retrieves a creator by ID.
	// Returns ENOTFOUND if the creator does not exist.
	FindCreatorByID(ctx context.Context, id string) (*Creator, error)

	// FindCreators retrieves creators matching the filter.
	FindCreators(ctx context.Context, filter CreatorFilter) ([]*Creator, error)

	// DeleteCreator permanently removes a creator and all associated
	// articles. Returns ENOTFOUND if the creator does not exist.
	DeleteCreator(ctx context.Context, id string) error
}

// CreatorFilter represents a filter for FindCreators.
type CreatorFilter struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	SiteURL *string `json:"siteUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// StoredArticle is an article row persisted for a creator.
type StoredArticle struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creatorId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	PublishedAt string    `json:"publishedAt"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the stored article contains invalid fields.
func (a *StoredArticle) Validate() error {
	if a.CreatorID == "" {
		return Errorf(EINVALID, "article creator ID required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}

// ArticleService represents a service for managing stored articles.
type ArticleService interface {
	// CreateArticles persists articles for a creator in feed order.
	CreateArticles(ctx context.Context, creatorID string, articles []Article) error

	// FindArticlesByCreator retrieves a creator's articles ordered by
	// position.
	FindArticlesByCreator(ctx context.Context, creatorID string) ([]*StoredArticle, error)

	// DeleteArticlesByCreator removes all articles for a creator.
	DeleteArticlesByCreator(ctx context.Context, creatorID string) error
}
