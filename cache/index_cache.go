package cache

import (
	"context"
	"sync"
	"time"
)

const indexKey = "index:listing"

// IndexCache memoizes the serialized global index listing for a bounded
// window. There is a single logical entry: the whole listing, not one entry
// per page, so one clear or expiry affects every page uniformly.
//
// Writes to the store never invalidate it; staleness up to one window is the
// deliberate trade-off. Clear is the only way to force freshness early.
//
// When redis is configured the entry lives there with a native TTL.
// Otherwise it is an in-process snapshot guarded for concurrent readers and
// a concurrent invalidator; expiry is a wall-clock comparison at read time,
// no background evictor runs.
type IndexCache struct {
	ttl time.Duration

	mu       sync.RWMutex
	payload  []byte
	storedAt time.Time
}

func NewIndexCache(ttl time.Duration) *IndexCache {
	return &IndexCache{ttl: ttl}
}

// Get returns the cached listing and whether it is still live.
func (c *IndexCache) Get(ctx context.Context) ([]byte, bool) {
	if Ready() {
		raw, err := Get(ctx, indexKey)
		if err != nil || raw == "" {
			return nil, false
		}
		return []byte(raw), true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.payload == nil || time.Since(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.payload, true
}

// Set stores a freshly computed listing, restarting the expiry window.
func (c *IndexCache) Set(ctx context.Context, payload []byte) {
	if Ready() {
		_ = Set(ctx, indexKey, payload, c.ttl)
		return
	}

	c.mu.Lock()
	c.payload = payload
	c.storedAt = time.Now()
	c.mu.Unlock()
}

// Clear drops the entry immediately; the next Get misses regardless of the
// remaining window.
func (c *IndexCache) Clear(ctx context.Context) {
	if Ready() {
		_ = Delete(ctx, indexKey)
		return
	}

	c.mu.Lock()
	c.payload = nil
	c.mu.Unlock()
}
