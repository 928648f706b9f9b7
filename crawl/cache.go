package crawl

import (
	"container/list"
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// PageCache is a capacity-bounded cache of shared listing pages keyed by
// series number. Population is exactly-once per key even under concurrent
// first access: later accessors either join the in-flight population or
// reuse its result. Eviction is least-recently-used once the capacity is
// exceeded.
type PageCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[int]*list.Element
	order    *list.List // front is most recently used
	group    singleflight.Group
}

type cacheEntry struct {
	key     int
	content string
}

// DefaultCacheCapacity bounds the cache to the realistic series range with
// headroom.
const DefaultCacheCapacity = 16

// NewPageCache creates a PageCache holding at most capacity entries.
func NewPageCache(capacity int) *PageCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &PageCache{
		capacity: capacity,
		entries:  make(map[int]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached content for key, populating it with populate on
// first access. Population failures are not cached, so a later access
// retries.
func (c *PageCache) Get(ctx context.Context, key int, populate func(ctx context.Context) (string, error)) (string, error) {
	if content, ok := c.lookup(key); ok {
		return content, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(key), func() (any, error) {
		// A concurrent flight may have stored the entry between the miss
		// and acquiring the flight.
		if content, ok := c.lookup(key); ok {
			return content, nil
		}
		content, err := populate(ctx)
		if err != nil {
			return "", err
		}
		c.store(key, content)
		return content, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *PageCache) lookup(key int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).content, true
}

func (c *PageCache) store(key int, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*cacheEntry).content = content
		return
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, content: content})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

// Len returns the number of cached entries.
func (c *PageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
