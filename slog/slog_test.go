package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/Suixin04/scp-scraper/mock"
	scpslog "github.com/Suixin04/scp-scraper/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, nil))
}

func TestLoggingFetcher_delegates_and_logs(t *testing.T) {
	t.Parallel()

	var gotURL string
	next := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, string, error) {
			gotURL = url
			return "<html></html>", url, nil
		},
	}

	var buf bytes.Buffer
	f := scpslog.NewLoggingFetcher(next, newLogger(&buf))

	html, finalURL, err := f.Fetch(context.Background(), "http://example.com/scp-040")
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/scp-040", gotURL)
	assert.Equal(t, "<html></html>", html)
	assert.Equal(t, "http://example.com/scp-040", finalURL)
	assert.Contains(t, buf.String(), "fetch")
	assert.Contains(t, buf.String(), "scp-040")
}

func TestLoggingSeriesResolver_delegates_and_logs(t *testing.T) {
	t.Parallel()

	next := &mock.SeriesResolver{
		ResolveFn: func(ctx context.Context, num int) (int, string) {
			return 2, "未命名"
		},
	}

	var buf bytes.Buffer
	r := scpslog.NewLoggingSeriesResolver(next, newLogger(&buf))

	series, name := r.Resolve(context.Background(), 1500)

	assert.Equal(t, 2, series)
	assert.Equal(t, "未命名", name)
	assert.Contains(t, buf.String(), "series resolution")
	assert.Contains(t, buf.String(), "num=1500")
}
