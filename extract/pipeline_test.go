package extract_test

import (
	"context"
	"testing"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/extract"
	"github.com/fwojciec/subscan/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return body, nil
		},
	}
}

func failFetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "", subscan.Errorf(subscan.EUNAVAILABLE, "fetch %s: connection refused", url)
		},
	}
}

func noImage() *mock.ImageLocator {
	return &mock.ImageLocator{
		LocateFn: func(html, baseURL, targetName string) string { return "" },
	}
}

func TestPipeline_Extract(t *testing.T) {
	t.Parallel()

	t.Run("assembles a full result", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		p := &extract.Pipeline{
			FeedFetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetched = append(fetched, url)
					return "feed body", nil
				},
			},
			PageFetcher: okFetcher("<html></html>"),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{
						Metadata: subscan.FeedMetadata{
							Title:       "Jane's Letters",
							Description: "Essays about machine learning and software",
						},
						Posts: []subscan.Article{
							{Title: "A post about machine learning", URL: "https://jane.substack.com/p/ml"},
							{Title: "Another post about software"},
						},
					}, nil
				},
			},
			Images: &mock.ImageLocator{
				LocateFn: func(html, baseURL, targetName string) string {
					return "https://cdn.example.com/jane.jpg"
				},
			},
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		require.NoError(t, err)

		assert.Equal(t, "Jane's Letters", got.Author)
		assert.Equal(t, "https://jane.substack.com", got.SiteURL)
		assert.Equal(t, "https://jane.substack.com/feed", got.FeedURL)
		assert.Equal(t, "https://jane.substack.com/about", got.AboutURL)
		assert.Equal(t, []string{"A post about machine learning", "Another post about software"}, got.PostTitles)
		assert.Equal(t, 2, got.TotalPosts)
		assert.Equal(t, "Technology & AI", got.Category)
		assert.Equal(t, "https://cdn.example.com/jane.jpg", got.ProfileImageURL)
		assert.False(t, got.Synthesized)
		assert.Equal(t, []string{"https://jane.substack.com/feed"}, fetched)

		assert.Equal(t, "Jane's Letters", got.Variables[subscan.VarCreatorName])
		assert.Equal(t, "2", got.Variables[subscan.VarPostCount])
	})

	t.Run("rejects unusable URL before any fetch", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					t.Error("unexpected fetch")
					return "", nil
				},
			},
		}

		_, err := p.Extract(context.Background(), "   ")
		assert.Equal(t, subscan.EINVALID, subscan.ErrorCode(err))
	})

	t.Run("feed format error is fatal", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: okFetcher("<html>404</html>"),
			PageFetcher: okFetcher("<html></html>"),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return nil, subscan.Errorf(subscan.EFEEDFORMAT, "response is not an XML document")
				},
			},
			Images: noImage(),
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		assert.Nil(t, got)
		assert.Equal(t, subscan.EFEEDFORMAT, subscan.ErrorCode(err))
	})

	t.Run("fetch failure degrades to synthetic posts", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: failFetcher(),
			PageFetcher: failFetcher(),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					t.Error("unexpected parse")
					return nil, nil
				},
			},
			Images: noImage(),
		}

		got, err := p.Extract(context.Background(), "jane-doe.substack.com")
		require.NoError(t, err)

		assert.True(t, got.Synthesized)
		assert.Equal(t, "Jane Doe", got.Author)
		assert.Len(t, got.Articles, 5)
		assert.Equal(t, "General Interest", got.Category)
		assert.Empty(t, got.ProfileImageURL)
	})

	t.Run("empty feed degrades to synthetic posts", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: okFetcher("feed body"),
			PageFetcher: failFetcher(),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{}, nil
				},
			},
			Images: noImage(),
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		require.NoError(t, err)
		assert.True(t, got.Synthesized)
		assert.Len(t, got.Articles, 5)
	})

	t.Run("feed title containing substack does not replace author", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: okFetcher("feed body"),
			PageFetcher: failFetcher(),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{
						Metadata: subscan.FeedMetadata{Title: "Jane's Substack"},
						Posts:    []subscan.Article{{Title: "A post about nothing much"}},
					}, nil
				},
			},
			Images: noImage(),
		}

		got, err := p.Extract(context.Background(), "jane-doe.substack.com")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Author)
	})

	t.Run("caps posts at the result limit", func(t *testing.T) {
		t.Parallel()

		posts := make([]subscan.Article, 0, 12)
		for i := 0; i < 12; i++ {
			posts = append(posts, subscan.Article{Title: "A perfectly reasonable post"})
		}

		p := &extract.Pipeline{
			FeedFetcher: okFetcher("feed body"),
			PageFetcher: failFetcher(),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{Posts: posts}, nil
				},
			},
			Images: noImage(),
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		require.NoError(t, err)
		assert.Len(t, got.Articles, subscan.MaxResultPosts)
		assert.Len(t, got.PostTitles, subscan.MaxResultPosts)
		assert.Equal(t, subscan.MaxResultPosts, got.TotalPosts)
	})

	t.Run("tries about page when homepage has no image", func(t *testing.T) {
		t.Parallel()

		var pages []string
		p := &extract.Pipeline{
			FeedFetcher: okFetcher("feed body"),
			PageFetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					pages = append(pages, url)
					return "<html></html>", nil
				},
			},
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{Posts: []subscan.Article{{Title: "A post about nothing much"}}}, nil
				},
			},
			Images: &mock.ImageLocator{
				LocateFn: func(html, baseURL, targetName string) string {
					if baseURL == "https://jane.substack.com/about" {
						return "https://cdn.example.com/about.jpg"
					}
					return ""
				},
			},
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/about.jpg", got.ProfileImageURL)
		assert.Equal(t, []string{"https://jane.substack.com", "https://jane.substack.com/about"}, pages)
	})

	t.Run("enrichment replaces post content", func(t *testing.T) {
		t.Parallel()

		p := &extract.Pipeline{
			FeedFetcher: okFetcher("feed body"),
			PageFetcher: failFetcher(),
			Parser: &mock.FeedParser{
				ParseFn: func(raw string) (*subscan.ParsedFeed, error) {
					return &subscan.ParsedFeed{Posts: []subscan.Article{
						{Title: "A post about nothing much", URL: "https://jane.substack.com/p/one", Content: "feed summary"},
					}}, nil
				},
			},
			Images: noImage(),
			Enricher: &extract.Enricher{
				Fetcher: okFetcher("<article>full</article>"),
				Extractor: &mock.ArticleExtractor{
					ExtractFn: func(html string) (*subscan.ArticleContent, error) {
						return &subscan.ArticleContent{ContentHTML: "<p>full</p>"}, nil
					},
				},
				Converter: &mock.Converter{
					ConvertFn: func(html string) (string, error) { return "full markdown", nil },
				},
			},
		}

		got, err := p.Extract(context.Background(), "jane.substack.com")
		require.NoError(t, err)
		require.Len(t, got.Articles, 1)
		assert.Equal(t, "full markdown", got.Articles[0].Content)
	})
}
