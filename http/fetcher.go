// Package http provides the HTTP-based implementation of scpscrape.Fetcher.
// The wiki is a static site, so plain requests are enough; the fetcher owns
// the transport concerns the rest of the pipeline assumes: a shared
// connection pool sized for the worker concurrency, a fixed per-request
// timeout, and a bounded retry/backoff policy for retryable status codes.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Suixin04/scp-scraper"
)

// DefaultFetchTimeout is the default per-request timeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultPoolSize is the default connection pool size. It should match or
// exceed the crawl concurrency to avoid connection starvation.
const DefaultPoolSize = 20

// defaultUserAgent mirrors a desktop browser; the wiki serves reduced pages
// to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultRetryDelays returns the backoff delays between retry attempts:
// 500ms, 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, 1 * time.Second, 2 * time.Second}
}

// retryableStatusCodes are the server/gateway statuses worth retrying. All
// other non-2xx statuses fail immediately; only read requests are issued,
// so idempotency is never a concern.
var retryableStatusCodes = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// Ensure Fetcher implements scpscrape.Fetcher at compile time.
var _ scpscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using pooled HTTP requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	poolSize    int
	userAgent   string
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithPoolSize sets the connection pool size.
// Defaults to DefaultPoolSize if not specified.
func WithPoolSize(n int) Option {
	return func(f *Fetcher) {
		f.poolSize = n
	}
}

// WithRetryDelays sets the backoff delays between retry attempts. The
// number of delays bounds the number of retries. This is useful for testing
// without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		poolSize:    DefaultPoolSize,
		userAgent:   defaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = f.poolSize
	transport.MaxIdleConnsPerHost = f.poolSize

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the HTML at url, retrying transport failures and
// retryable status codes with exponential backoff. It returns the body and
// the final resolved URL after redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	maxAttempts := len(f.retryDelays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, finalURL, retryable, err := f.fetchOnce(ctx, url)
		if err == nil {
			return html, finalURL, nil
		}
		lastErr = err

		if !retryable || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
	}

	return "", "", lastErr
}

// fetchOnce performs a single request. The retryable result distinguishes
// transport failures and retryable statuses from terminal client errors.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", "", false, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", "", true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, retryable := retryableStatusCodes[resp.StatusCode]
		return "", "", retryable, scpscrape.Errorf(scpscrape.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", true, err
	}

	return string(body), resp.Request.URL.String(), false, nil
}
