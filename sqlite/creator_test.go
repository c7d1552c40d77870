package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreator(name, siteURL string) *subscan.Creator {
	return &subscan.Creator{
		Name:     name,
		SiteURL:  siteURL,
		FeedURL:  siteURL + "/feed",
		Category: "Technology & AI",
	}
}

func TestCreatorService_CreateCreator(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamps", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		ctx := context.Background()

		creator := newCreator("Jane Doe", "https://jane.substack.com")
		require.NoError(t, s.CreateCreator(ctx, creator))

		assert.NotEmpty(t, creator.ID)
		assert.False(t, creator.CreatedAt.IsZero())
		assert.False(t, creator.UpdatedAt.IsZero())

		got, err := s.FindCreatorByID(ctx, creator.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "https://jane.substack.com", got.SiteURL)
		assert.Equal(t, "https://jane.substack.com/feed", got.FeedURL)
		assert.Equal(t, "Technology & AI", got.Category)
	})

	t.Run("rejects invalid creator", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))

		err := s.CreateCreator(context.Background(), &subscan.Creator{SiteURL: "https://x.com"})
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(err))
	})
}

func TestCreatorService_FindCreatorByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for missing creator", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))

		_, err := s.FindCreatorByID(context.Background(), "no-such-id")
		assert.Equal(t, subscan.ENOTFOUND, subscan.ErrorCode(err))
	})
}

func TestCreatorService_FindCreators(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateCreator(ctx, newCreator("Jane Doe", "https://jane.substack.com")))
		require.NoError(t, s.CreateCreator(ctx, newCreator("John Smith", "https://john.substack.com")))

		name := "Jane Doe"
		got, err := s.FindCreators(ctx, subscan.CreatorFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://jane.substack.com", got[0].SiteURL)
	})

	t.Run("filters by site URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateCreator(ctx, newCreator("Jane Doe", "https://jane.substack.com")))

		siteURL := "https://jane.substack.com"
		got, err := s.FindCreators(ctx, subscan.CreatorFilter{SiteURL: &siteURL})
		require.NoError(t, err)
		require.Len(t, got, 1)

		missing := "https://missing.substack.com"
		got, err = s.FindCreators(ctx, subscan.CreatorFilter{SiteURL: &missing})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no filter returns all", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateCreator(ctx, newCreator("Jane Doe", "https://jane.substack.com")))
		require.NoError(t, s.CreateCreator(ctx, newCreator("John Smith", "https://john.substack.com")))

		got, err := s.FindCreators(ctx, subscan.CreatorFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit and offset paginate", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateCreator(ctx, newCreator("Creator A", "https://a.substack.com")))
		require.NoError(t, s.CreateCreator(ctx, newCreator("Creator B", "https://b.substack.com")))
		require.NoError(t, s.CreateCreator(ctx, newCreator("Creator C", "https://c.substack.com")))

		got, err := s.FindCreators(ctx, subscan.CreatorFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = s.FindCreators(ctx, subscan.CreatorFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestCreatorService_DeleteCreator(t *testing.T) {
	t.Parallel()

	t.Run("deletes creator and cascades to articles", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		creators := sqlite.NewCreatorService(db)
		articles := sqlite.NewArticleService(db)
		ctx := context.Background()

		creator := newCreator("Jane Doe", "https://jane.substack.com")
		require.NoError(t, creators.CreateCreator(ctx, creator))
		require.NoError(t, articles.CreateArticles(ctx, creator.ID, []subscan.Article{
			{Title: "A post about machine learning"},
		}))

		require.NoError(t, creators.DeleteCreator(ctx, creator.ID))

		_, err := creators.FindCreatorByID(ctx, creator.ID)
		assert.Equal(t, subscan.ENOTFOUND, subscan.ErrorCode(err))

		remaining, err := articles.FindArticlesByCreator(ctx, creator.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for missing creator", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewCreatorService(MustOpenDB(t))
		err := s.DeleteCreator(context.Background(), "no-such-id")
		assert.Equal(t, subscan.ENOTFOUND, subscan.ErrorCode(err))
	})
}
