package memory

import (
	"context"
	"sync"
	"time"

	"github.com/farism/mfe-host/service"
)

type cacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

// minSweepSize is the item count below which writes never sweep.
const minSweepSize = 64

type cache[T any] struct {
	mu      sync.Mutex
	items   map[string]cacheItem[T]
	now     func() time.Time
	sweepAt int
}

// NewCache creates an in-memory implementation of the generic cache interface.
// Expired items are dropped on read, and by a sweep on write once the map doubles in size.
func NewCache[T any]() *cache[T] {
	return &cache[T]{
		items:   make(map[string]cacheItem[T]),
		now:     time.Now,
		sweepAt: minSweepSize,
	}
}

func (c *cache[T]) ReadValue(_ context.Context, key string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if ok && !item.expiresAt.IsZero() && !c.now().Before(item.expiresAt) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		var zero T
		return zero, service.NewEntityNotFoundError("Entity not found", nil)
	}
	return item.value, nil
}

// WriteValue stores item; a non-positive ttlMs keeps it until deleted.
func (c *cache[T]) WriteValue(_ context.Context, key string, item T, ttlMs int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheItem[T]{value: item}
	if ttlMs > 0 {
		entry.expiresAt = c.now().Add(time.Duration(ttlMs) * time.Millisecond)
	}
	c.items[key] = entry

	if len(c.items) >= c.sweepAt {
		c.sweep()
	}
	return nil
}

// sweep drops expired items and moves the next sweep to twice the surviving size.
func (c *cache[T]) sweep() {
	now := c.now()
	for key, item := range c.items {
		if !item.expiresAt.IsZero() && !now.Before(item.expiresAt) {
			delete(c.items, key)
		}
	}
	c.sweepAt = max(2*len(c.items), minSweepSize)
}

func (c *cache[T]) DeleteValue(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}
