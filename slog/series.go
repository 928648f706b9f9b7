package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Suixin04/scp-scraper"
)

// Ensure LoggingSeriesResolver implements scpscrape.SeriesResolver.
var _ scpscrape.SeriesResolver = (*LoggingSeriesResolver)(nil)

// LoggingSeriesResolver wraps a SeriesResolver with debug logging.
type LoggingSeriesResolver struct {
	next   scpscrape.SeriesResolver
	logger *slog.Logger
}

// NewLoggingSeriesResolver creates a new LoggingSeriesResolver.
func NewLoggingSeriesResolver(next scpscrape.SeriesResolver, logger *slog.Logger) *LoggingSeriesResolver {
	return &LoggingSeriesResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the operation.
func (r *LoggingSeriesResolver) Resolve(ctx context.Context, num int) (series int, name string) {
	defer func(begin time.Time) {
		r.logger.Info("series resolution",
			"num", num,
			"series", series,
			"named", name != "",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(ctx, num)
}
