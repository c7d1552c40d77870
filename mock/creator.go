package mock

import (
	"context"

	"github.com/fwojciec/subscan"
)

var _ subscan.CreatorService = (*CreatorService)(nil)

// CreatorService is a mock implementation of subscan.CreatorService.
type CreatorService struct {
	CreateCreatorFn   func(ctx context.Context, creator *subscan.Creator) error
	FindCreatorByIDFn func(ctx context.Context, id string) (*subscan.Creator, error)
	FindCreatorsFn    func(ctx context.Context, filter subscan.CreatorFilter) ([]*subscan.Creator, error)
	DeleteCreatorFn   func(ctx context.Context, id string) error
}

func (s *CreatorService) CreateCreator(ctx context.Context, creator *subscan.Creator) error {
	return s.CreateCreatorFn(ctx, creator)
}

func (s *CreatorService) FindCreatorByID(ctx context.Context, id string) (*subscan.Creator, error) {
	return s.FindCreatorByIDFn(ctx, id)
}

func (s *CreatorService) FindCreators(ctx context.Context, filter subscan.CreatorFilter) ([]*subscan.Creator, error) {
	return s.FindCreatorsFn(ctx, filter)
}

func (s *CreatorService) DeleteCreator(ctx context.Context, id string) error {
	return s.DeleteCreatorFn(ctx, id)
}
