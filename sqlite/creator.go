package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/subscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ subscan.CreatorService = (*CreatorService)(nil)

// CreatorService implements subscan.CreatorService using SQLite.
type CreatorService struct {
	db *DB
}

// NewCreatorService creates a new CreatorService.
func NewCreatorService(db *DB) *CreatorService {
	return &CreatorService{db: db}
}

// CreateCreator creates a new creator.
func (s *CreatorService) CreateCreator(ctx context.Context, creator *subscan.Creator) error {
	if err := creator.Validate(); err != nil {
		return err
	}

	creator.ID = uuid.New().String()
	now := time.Now().UTC()
	creator.CreatedAt = now
	creator.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO creators (id, name, site_url, feed_url, category, description, profile_image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, creator.ID, creator.Name, creator.SiteURL, creator.FeedURL, creator.Category,
		creator.Description, creator.ProfileImageURL,
		creator.CreatedAt.Format(time.RFC3339), creator.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCreatorByID retrieves a creator by ID.
func (s *CreatorService) FindCreatorByID(ctx context.Context, id string) (*subscan.Creator, error) {
	var creator subscan.Creator
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, site_url, feed_url, category, description, profile_image_url, created_at, updated_at
		FROM creators
		WHERE id = ?
	`, id).Scan(&creator.ID, &creator.Name, &creator.SiteURL, &creator.FeedURL,
		&creator.Category, &creator.Description, &creator.ProfileImageURL,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, subscan.Errorf(subscan.ENOTFOUND, "creator not found")
	}
	if err != nil {
		return nil, err
	}

	if creator.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if creator.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &creator, nil
}

// FindCreators retrieves creators matching the filter.
func (s *CreatorService) FindCreators(ctx context.Context, filter subscan.CreatorFilter) ([]*subscan.Creator, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, name, site_url, feed_url, category, description, profile_image_url, created_at, updated_at FROM creators WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.SiteURL != nil {
		query.WriteString(" AND site_url = ?")
		args = append(args, *filter.SiteURL)
	}

	query.WriteString(" ORDER BY created_at")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creators []*subscan.Creator
	for rows.Next() {
		var creator subscan.Creator
		var createdAt, updatedAt string

		if err := rows.Scan(&creator.ID, &creator.Name, &creator.SiteURL, &creator.FeedURL,
			&creator.Category, &creator.Description, &creator.ProfileImageURL,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if creator.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if creator.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		creators = append(creators, &creator)
	}

	return creators, rows.Err()
}

// DeleteCreator permanently removes a creator. Associated articles are
// removed by the foreign key cascade.
func (s *CreatorService) DeleteCreator(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM creators WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return subscan.Errorf(subscan.ENOTFOUND, "creator not found")
	}

	return nil
}
