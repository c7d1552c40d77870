package mock

import (
	"context"

	"github.com/fwojciec/subscan"
)

var _ subscan.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of subscan.ResultStore.
type ResultStore struct {
	SaveFn   func(ctx context.Context, result *subscan.ExtractionResult) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ResultStore) Save(ctx context.Context, result *subscan.ExtractionResult) error {
	return s.SaveFn(ctx, result)
}

func (s *ResultStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

func (s *ResultStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}
