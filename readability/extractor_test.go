package readability_test

import (
	"testing"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements subscan.ArticleExtractor at compile time.
var _ subscan.ArticleExtractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>A Week of Small Experiments</title></head>
<body>
<article>
<h1>A Week of Small Experiments</h1>
<p>This week I tried something different with the newsletter format and the results surprised me quite a bit.</p>
<p>Here is what I learned from the whole exercise, written down before I forget any of it.</p>
</article>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "results surprised me")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(err))
	})
}
