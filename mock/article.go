package mock

import (
	"context"

	"github.com/fwojciec/subscan"
)

var _ subscan.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of subscan.ArticleService.
type ArticleService struct {
	CreateArticlesFn          func(ctx context.Context, creatorID string, articles []subscan.Article) error
	FindArticlesByCreatorFn   func(ctx context.Context, creatorID string) ([]*subscan.StoredArticle, error)
	DeleteArticlesByCreatorFn func(ctx context.Context, creatorID string) error
}

func (s *ArticleService) CreateArticles(ctx context.Context, creatorID string, articles []subscan.Article) error {
	return s.CreateArticlesFn(ctx, creatorID, articles)
}

func (s *ArticleService) FindArticlesByCreator(ctx context.Context, creatorID string) ([]*subscan.StoredArticle, error) {
	return s.FindArticlesByCreatorFn(ctx, creatorID)
}

func (s *ArticleService) DeleteArticlesByCreator(ctx context.Context, creatorID string) error {
	return s.DeleteArticlesByCreatorFn(ctx, creatorID)
}
