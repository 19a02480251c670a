package resolver

import (
	"context"

	"github.com/JijoBose/web5-wallet/internal/cache"
	"github.com/JijoBose/web5-wallet/internal/did"
)

// MemoryCache is the in-memory Cache backend. All work happens
// synchronously under the TTL cache's lock; the context parameters exist
// for interface compatibility with store-backed backends and are not
// consulted.
type MemoryCache struct {
	c *cache.TTLCache[string, *did.ResolutionResult]
}

// NewMemoryCache constructs an in-memory backend. Options follow
// cache.New: a zero TTL means cache.DefaultTTL, a negative TTL is an
// error, and a positive SweepInterval enables background pruning.
func NewMemoryCache(opts cache.Options) (*MemoryCache, error) {
	c, err := cache.New[string, *did.ResolutionResult](opts)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{c: c}, nil
}

// Get implements Cache.Get. An empty identifier fails with ErrEmptyDID
// before the table is consulted.
func (m *MemoryCache) Get(_ context.Context, didURI string) (*did.ResolutionResult, error) {
	if didURI == "" {
		return nil, ErrEmptyDID
	}
	result, ok := m.c.Get(didURI)
	if !ok {
		return nil, nil
	}
	return result, nil
}

// Set implements Cache.Set with a fresh expiration of now + TTL.
func (m *MemoryCache) Set(_ context.Context, didURI string, result *did.ResolutionResult) error {
	if didURI == "" {
		return ErrEmptyDID
	}
	m.c.Set(didURI, result)
	return nil
}

// Delete implements Cache.Delete. Deleting an absent identifier succeeds.
func (m *MemoryCache) Delete(_ context.Context, didURI string) error {
	if didURI == "" {
		return ErrEmptyDID
	}
	m.c.Delete(didURI)
	return nil
}

// Clear implements Cache.Clear.
func (m *MemoryCache) Clear(_ context.Context) error {
	m.c.Clear()
	return nil
}

// Close implements Cache.Close. The in-memory backend holds no external
// resource; this only stops the optional sweeper.
func (m *MemoryCache) Close() error {
	m.c.Close()
	return nil
}

// Len reports the number of stored entries, including expired ones not
// yet collected.
func (m *MemoryCache) Len() int {
	return m.c.Len()
}

var _ Cache = (*MemoryCache)(nil)
