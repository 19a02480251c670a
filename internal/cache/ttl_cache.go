package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTTL is the entry lifetime used when Options.TTL is not set.
// Resolution documents change rarely; 15 minutes keeps repeat lookups
// cheap without serving stale documents for long.
const DefaultTTL = 15 * time.Minute

// ErrNegativeTTL is returned by New when Options.TTL is negative.
var ErrNegativeTTL = errors.New("cache: ttl must be non-negative")

// entry stores a cached value and its absolute expiration timestamp.
// The expiration is fixed at insertion; overwriting a key replaces the
// whole entry with a fresh one.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Options controls construction of a TTLCache.
type Options struct {
	// TTL is the lifetime applied to every entry. Zero means DefaultTTL.
	TTL time.Duration

	// SweepInterval enables a background goroutine that prunes expired
	// entries periodically. Zero (the default) disables it; expired
	// entries are then removed only when next accessed, deleted, or
	// cleared, and may otherwise accumulate in memory.
	SweepInterval time.Duration
}

// TTLCache is a map-backed cache whose entries all share one TTL fixed at
// construction. Expired entries are evicted lazily: a Get that observes an
// expired entry removes it and reports a miss in the same critical section,
// so no caller ever sees a logically-expired value.
type TTLCache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]entry[V]
	ttl   time.Duration

	// Sweeper goroutine ownership, GoCache-style: nil ctx when disabled.
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed bool
}

// now is a small indirection to allow test stubbing.
var now = time.Now

// New constructs an empty TTLCache. It returns ErrNegativeTTL if
// opts.TTL is negative.
func New[K comparable, V any](opts Options) (*TTLCache[K, V], error) {
	if opts.TTL < 0 {
		return nil, ErrNegativeTTL
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	c := &TTLCache[K, V]{
		items: make(map[K]entry[V]),
		ttl:   ttl,
	}

	if opts.SweepInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.wg.Add(1)
		go c.sweepLoop(ctx, opts.SweepInterval)
	}

	return c, nil
}

// TTL returns the entry lifetime this cache was constructed with.
func (c *TTLCache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get implements Cache.Get. An expired entry is deleted under the same
// lock acquisition that observed it, so an immediately-following call
// cannot see the expired-but-present state.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if !e.expiresAt.After(now()) {
		// Expired at or before this instant; evict and report a miss.
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

// Set implements Cache.Set.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[V]{
		value:     value,
		expiresAt: now().Add(c.ttl),
	}
}

// Delete implements Cache.Delete. Deleting an absent key is a no-op.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear implements Cache.Clear. It removes live and expired entries alike.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]entry[V])
}

// Len implements Cache.Len.
//
// Note: Len includes entries that have expired but haven't been collected
// yet. Lazy eviction removes them on access; the optional sweeper removes
// them over time.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// PurgeExpired implements Cache.PurgeExpired.
func (c *TTLCache[K, V]) PurgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return
	}
	nowTs := now()
	for k, e := range c.items {
		if !e.expiresAt.After(nowTs) {
			delete(c.items, k)
		}
	}
}

// Close implements Cache.Close. It stops the sweeper goroutine if one was
// started and waits for it to exit.
func (c *TTLCache[K, V]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		// Cancel outside the lock so shutdown doesn't block other callers.
		cancel()
		c.wg.Wait()
	}
}

func (c *TTLCache[K, V]) sweepLoop(ctx context.Context, every time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.PurgeExpired()
		}
	}
}

// Ensure TTLCache implements Cache at compile time.
var _ Cache[string, any] = (*TTLCache[string, any])(nil)
