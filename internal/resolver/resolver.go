package resolver

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/JijoBose/web5-wallet/internal/did"
)

// ErrNotResolved is returned when the upstream resolver has no document
// for the identifier.
var ErrNotResolved = errors.New("resolver: DID could not be resolved")

// Resolver resolves a DID to its resolution result.
type Resolver interface {
	Resolve(ctx context.Context, didURI string) (*did.ResolutionResult, error)
}

// CachedResolver serves resolutions cache-first and falls back to an
// upstream resolver on a miss. Concurrent misses for the same identifier
// are collapsed into one upstream call via singleflight.
type CachedResolver struct {
	upstream Resolver
	cache    Cache
	sf       singleflight.Group
}

// NewCachedResolver wraps upstream with the given cache backend.
func NewCachedResolver(upstream Resolver, c Cache) *CachedResolver {
	return &CachedResolver{upstream: upstream, cache: c}
}

// Resolve implements Resolver.
func (r *CachedResolver) Resolve(ctx context.Context, didURI string) (*did.ResolutionResult, error) {
	result, _, err := r.ResolveWithSource(ctx, didURI)
	return result, err
}

// ResolveWithSource resolves the identifier and additionally reports
// whether the result was served from the cache.
func (r *CachedResolver) ResolveWithSource(ctx context.Context, didURI string) (*did.ResolutionResult, bool, error) {
	// Syntax is validated before the cache or the network is touched.
	if _, err := did.Parse(didURI); err != nil {
		return nil, false, err
	}

	cached, err := r.cache.Get(ctx, didURI)
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		return cached, true, nil
	}

	// Collapse concurrent upstream lookups for the same DID.
	v, err, _ := r.sf.Do(didURI, func() (any, error) {
		result, err := r.upstream.Resolve(ctx, didURI)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(ctx, didURI, result); err != nil {
			return nil, fmt.Errorf("caching resolution for %s: %w", didURI, err)
		}
		return result, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*did.ResolutionResult), false, nil
}

var _ Resolver = (*CachedResolver)(nil)
