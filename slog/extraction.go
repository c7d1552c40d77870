package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/subscan"
)

// Ensure LoggingExtractionService implements subscan.ExtractionService.
var _ subscan.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with debug logging.
type LoggingExtractionService struct {
	next   subscan.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next subscan.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) Extract(ctx context.Context, siteURL string) (result *subscan.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", siteURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs,
				"posts", result.TotalPosts,
				"category", result.Category,
				"image", result.ProfileImageURL != "",
				"synthesized", result.Synthesized,
			)
		}
		s.logger.Info("extract", attrs...)
	}(time.Now())
	return s.next.Extract(ctx, siteURL)
}
