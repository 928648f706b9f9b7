package crawl

import (
	"context"

	"github.com/Suixin04/scp-scraper"
	"github.com/Suixin04/scp-scraper/goquery"
)

// Ensure SeriesResolver implements scpscrape.SeriesResolver at compile time.
var _ scpscrape.SeriesResolver = (*SeriesResolver)(nil)

// SeriesResolver recovers an item's series number and human-readable name
// from the shared series listing pages. Listing pages are fetched at most
// once per series across the whole run through the cache.
type SeriesResolver struct {
	fetcher scpscrape.Fetcher
	cache   *PageCache
}

// NewSeriesResolver creates a SeriesResolver backed by fetcher.
func NewSeriesResolver(fetcher scpscrape.Fetcher) *SeriesResolver {
	return &SeriesResolver{
		fetcher: fetcher,
		cache:   NewPageCache(DefaultCacheCapacity),
	}
}

// Resolve returns the item's series number and, when the listing page names
// it, its name. Resolve is total: every failure degrades to an empty name.
func (r *SeriesResolver) Resolve(ctx context.Context, num int) (int, string) {
	series := scpscrape.SeriesNumber(num)

	html, err := r.cache.Get(ctx, series, func(ctx context.Context) (string, error) {
		body, _, err := r.fetcher.Fetch(ctx, scpscrape.SeriesURL(series))
		return body, err
	})
	if err != nil || html == "" {
		return series, ""
	}

	return series, goquery.SeriesName(html, num)
}
