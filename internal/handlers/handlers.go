package handlers

import (
	"github.com/JijoBose/web5-wallet/internal/resolver"
)

// Wiring assigned by main (and by tests) before routes are served,
// mirroring how the database package exposes its connection.
var (
	// DIDResolver serves resolutions cache-first.
	DIDResolver *resolver.CachedResolver

	// ResolverCache is the cache backend behind DIDResolver, exposed for
	// the cache-admin endpoints.
	ResolverCache resolver.Cache

	// ClientSecret is the shared secret checked at login.
	ClientSecret string
)
