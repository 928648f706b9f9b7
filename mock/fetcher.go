// Package mock provides function-field mock implementations of the domain
// interfaces for tests.
package mock

import (
	"context"

	"github.com/Suixin04/scp-scraper"
)

var _ scpscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scpscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	return f.FetchFn(ctx, url)
}
