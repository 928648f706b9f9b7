package crawl_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Suixin04/scp-scraper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_populates_once_per_key(t *testing.T) {
	t.Parallel()

	cache := crawl.NewPageCache(4)
	var calls atomic.Int64

	populate := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "listing", nil
	}

	content, err := cache.Get(context.Background(), 1, populate)
	require.NoError(t, err)
	assert.Equal(t, "listing", content)

	content, err = cache.Get(context.Background(), 1, populate)
	require.NoError(t, err)
	assert.Equal(t, "listing", content)

	assert.Equal(t, int64(1), calls.Load())
}

func TestPageCache_concurrent_first_access_fetches_once(t *testing.T) {
	t.Parallel()

	cache := crawl.NewPageCache(4)
	var calls atomic.Int64
	release := make(chan struct{})

	populate := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "listing", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content, err := cache.Get(context.Background(), 2, populate)
			assert.NoError(t, err)
			results[i] = content
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load(), "concurrent first access must trigger exactly one fetch")
	for _, content := range results {
		assert.Equal(t, "listing", content)
	}
}

func TestPageCache_failed_population_is_not_cached(t *testing.T) {
	t.Parallel()

	cache := crawl.NewPageCache(4)
	var calls atomic.Int64

	_, err := cache.Get(context.Background(), 3, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", fmt.Errorf("boom")
	})
	require.Error(t, err)

	content, err := cache.Get(context.Background(), 3, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "second try", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "second try", content)
	assert.Equal(t, int64(2), calls.Load())
}

func TestPageCache_evicts_least_recently_used(t *testing.T) {
	t.Parallel()

	cache := crawl.NewPageCache(2)
	var populated []int

	get := func(key int) {
		_, err := cache.Get(context.Background(), key, func(ctx context.Context) (string, error) {
			populated = append(populated, key)
			return fmt.Sprintf("page-%d", key), nil
		})
		require.NoError(t, err)
	}

	get(1)
	get(2)
	get(1) // refresh key 1 so key 2 is now the oldest
	get(3) // evicts key 2
	get(1) // still cached
	get(2) // must repopulate

	assert.Equal(t, []int{1, 2, 3, 2}, populated)
	assert.Equal(t, 2, cache.Len())
}
