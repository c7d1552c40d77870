package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/subscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ subscan.ArticleService = (*ArticleService)(nil)

// ArticleService implements subscan.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns a hex string. Used
// to detect unchanged articles across rescans without comparing bodies.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateArticles persists articles for a creator in feed order.
func (s *ArticleService) CreateArticles(ctx context.Context, creatorID string, articles []subscan.Article) error {
	now := time.Now().UTC()

	for i, a := range articles {
		stored := subscan.StoredArticle{
			ID:          uuid.New().String(),
			CreatorID:   creatorID,
			Title:       a.Title,
			URL:         a.URL,
			Content:     a.Content,
			PublishedAt: a.PublishedAt,
			ContentHash: hashContent(a.Content),
			Position:    i,
			FetchedAt:   now,
		}
		if err := stored.Validate(); err != nil {
			return err
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO articles (id, creator_id, title, url, content, published_at, content_hash, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, stored.ID, stored.CreatorID, stored.Title, stored.URL, stored.Content,
			stored.PublishedAt, stored.ContentHash, stored.Position,
			stored.FetchedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindArticlesByCreator retrieves a creator's articles ordered by position.
func (s *ArticleService) FindArticlesByCreator(ctx context.Context, creatorID string) ([]*subscan.StoredArticle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, creator_id, title, url, content, published_at, content_hash, position, fetched_at
		FROM articles
		WHERE creator_id = ?
		ORDER BY position
	`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*subscan.StoredArticle
	for rows.Next() {
		var a subscan.StoredArticle
		var fetchedAt string

		if err := rows.Scan(&a.ID, &a.CreatorID, &a.Title, &a.URL, &a.Content,
			&a.PublishedAt, &a.ContentHash, &a.Position, &fetchedAt); err != nil {
			return nil, err
		}

		if a.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &a)
	}

	return articles, rows.Err()
}

// DeleteArticlesByCreator removes all articles for a creator.
func (s *ArticleService) DeleteArticlesByCreator(ctx context.Context, creatorID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE creator_id = ?`, creatorID)
	return err
}
