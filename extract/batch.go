package extract

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/subscan"
	"github.com/fwojciec/subscan/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds how many newsletters are scanned at once.
const DefaultBatchConcurrency = 3

// Progress reports the outcome of one newsletter in a batch scan.
type Progress struct {
	SiteURL   string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called as newsletters are processed. It may be nil.
type ProgressFunc func(Progress)

// Batch scans several newsletters concurrently. Duplicate URLs within a
// batch are skipped via a bloom filter, requests are paced per host, and
// one newsletter's failure never aborts the others.
type Batch struct {
	Service subscan.ExtractionService

	// Limiter paces requests per host. Optional.
	Limiter *HostLimiter

	// Concurrency bounds parallel scans. Values < 1 use the default.
	Concurrency int
}

// ExtractAll runs the pipeline for every URL and returns results in input
// order. Slots for duplicate or failed URLs are nil; per-URL errors are
// reported through progress and not returned. Only context cancellation
// aborts the batch.
func (b *Batch) ExtractAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*subscan.ExtractionResult, error) {
	results := make([]*subscan.ExtractionResult, len(urls))

	seen := bloom.NewSeenURLs(uint(len(urls)))
	var todo []int
	for i, raw := range urls {
		if seen.Seen(raw) {
			continue
		}
		seen.Add(raw)
		todo = append(todo, i)
	}

	concurrency := b.Concurrency
	if concurrency < 1 {
		concurrency = DefaultBatchConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	completed := 0

	for _, i := range todo {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if b.Limiter != nil {
				if u, err := url.Parse(urls[i]); err == nil && u.Host != "" {
					if err := b.Limiter.Wait(gctx, u.Host); err != nil {
						return err
					}
				}
			}

			result, err := b.Service.Extract(gctx, urls[i])
			if err == nil {
				results[i] = result
			}

			mu.Lock()
			completed++
			n := completed
			mu.Unlock()

			if progress != nil {
				progress(Progress{
					SiteURL:   urls[i],
					Completed: n,
					Total:     len(todo),
					Err:       err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
