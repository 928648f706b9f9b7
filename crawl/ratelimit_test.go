package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/Suixin04/scp-scraper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_nil_limiter_never_waits(t *testing.T) {
	t.Parallel()

	var l *crawl.Limiter

	require.NoError(t, l.Wait(context.Background()))
}

func TestLimiter_zero_rate_disables_throttling(t *testing.T) {
	t.Parallel()

	assert.Nil(t, crawl.NewLimiter(0))
	assert.Nil(t, crawl.NewLimiter(-1))
}

func TestLimiter_enforces_rate(t *testing.T) {
	t.Parallel()

	l := crawl.NewLimiter(100) // 10ms between requests

	begin := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, l.Wait(context.Background()))
	}

	// First token is immediate; the next two wait ~10ms each.
	assert.GreaterOrEqual(t, time.Since(begin), 15*time.Millisecond)
}

func TestLimiter_respects_context_cancellation(t *testing.T) {
	t.Parallel()

	l := crawl.NewLimiter(0.001)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, l.Wait(ctx)) // consumes the initial token
	cancel()

	assert.Error(t, l.Wait(ctx))
}
