package mock

import (
	"context"

	"github.com/fwojciec/subscan"
)

var _ subscan.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of subscan.ExtractionService.
type ExtractionService struct {
	ExtractFn func(ctx context.Context, siteURL string) (*subscan.ExtractionResult, error)
}

func (s *ExtractionService) Extract(ctx context.Context, siteURL string) (*subscan.ExtractionResult, error) {
	return s.ExtractFn(ctx, siteURL)
}
