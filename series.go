package scpscrape

import (
	"context"
	"fmt"
)

// SeriesListingBaseURL is the shared listing page naming every identifier
// in a series. Series beyond the first live at a numeric-suffix variant.
const SeriesListingBaseURL = "http://scp-wiki-cn.wikidot.com/scp-series"

// MaxSeries is the highest series the wiki publishes a listing page for.
const MaxSeries = 9

// SeriesNumber derives the grouping number for a numeric identifier:
// integer division by 1000 plus one, clamped to [1, MaxSeries].
func SeriesNumber(num int) int {
	series := num/1000 + 1
	if series < 1 {
		return 1
	}
	if series > MaxSeries {
		return MaxSeries
	}
	return series
}

// SeriesURL returns the listing-page URL for a series number.
func SeriesURL(series int) string {
	if series == 1 {
		return SeriesListingBaseURL
	}
	return fmt.Sprintf("%s-%d", SeriesListingBaseURL, series)
}

// SeriesResolver recovers series metadata for a numeric identifier.
type SeriesResolver interface {
	// Resolve returns the identifier's series number and, when the shared
	// listing page names it, its human-readable name. Resolve is total: on
	// any network, parse, or not-found condition the name is empty and the
	// series number is still returned.
	Resolve(ctx context.Context, num int) (series int, name string)
}
