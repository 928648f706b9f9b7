package mock

import (
	"context"

	"github.com/Suixin04/scp-scraper"
)

var _ scpscrape.SeriesResolver = (*SeriesResolver)(nil)

// SeriesResolver is a mock implementation of scpscrape.SeriesResolver.
type SeriesResolver struct {
	ResolveFn func(ctx context.Context, num int) (int, string)
}

func (r *SeriesResolver) Resolve(ctx context.Context, num int) (int, string) {
	return r.ResolveFn(ctx, num)
}
