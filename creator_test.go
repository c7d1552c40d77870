package subscan_test

import (
	"testing"

	"github.com/fwojciec/subscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreator_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		c := &subscan.Creator{Name: "Jane Doe", SiteURL: "https://jane.substack.com"}
		require.NoError(t, c.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		c := &subscan.Creator{SiteURL: "https://jane.substack.com"}
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(c.Validate()))
	})

	t.Run("missing site URL", func(t *testing.T) {
		t.Parallel()

		c := &subscan.Creator{Name: "Jane Doe"}
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(c.Validate()))
	})
}

func TestStoredArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a := &subscan.StoredArticle{CreatorID: "c1", Title: "A reasonable post title"}
		require.NoError(t, a.Validate())
	})

	t.Run("missing creator ID", func(t *testing.T) {
		t.Parallel()

		a := &subscan.StoredArticle{Title: "A reasonable post title"}
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(a.Validate()))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		a := &subscan.StoredArticle{CreatorID: "c1"}
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(a.Validate()))
	})
}
