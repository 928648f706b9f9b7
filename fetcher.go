package scpscrape

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations own the transport-level concerns: connection pooling
// sized for the configured concurrency, a fixed per-request timeout, and a
// bounded retry/backoff policy for retryable server status codes.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its HTML along with
	// the final resolved URL after any redirects. The context controls
	// timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, finalURL string, err error)
}
