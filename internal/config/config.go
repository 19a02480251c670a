package config

import (
	"log"
	"os"
	"time"
)

// Config holds the environment-driven settings of the service.
type Config struct {
	// Port the HTTP server listens on, e.g. ":8008".
	Port string

	// CacheBackend selects the resolver-cache backend: "memory" or "bolt".
	CacheBackend string

	// CacheTTL is the lifetime of cached resolutions. Zero means the
	// cache package default (15 minutes).
	CacheTTL time.Duration

	// CacheSweepInterval enables periodic pruning of expired entries in
	// the memory backend when positive.
	CacheSweepInterval time.Duration

	// CacheDBPath is the bolt database file for the "bolt" backend.
	CacheDBPath string

	// DBPath is the SQLite file for the resolution audit log.
	DBPath string

	// ResolverURL is the upstream universal-resolver base URL.
	ResolverURL string

	// ClientSecret is the shared secret API clients present at login.
	ClientSecret string
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() Config {
	return Config{
		Port:               getEnv("PORT", ":8008"),
		CacheBackend:       getEnv("CACHE_BACKEND", "memory"),
		CacheTTL:           getDuration("CACHE_TTL", 0),
		CacheSweepInterval: getDuration("CACHE_SWEEP_INTERVAL", 0),
		CacheDBPath:        getEnv("CACHE_DB_PATH", "resolution-cache.db"),
		DBPath:             getEnv("DB_PATH", "web5-wallet.db"),
		ResolverURL:        getEnv("RESOLVER_URL", "https://dev.uniresolver.io"),
		ClientSecret:       getEnv("CLIENT_SECRET", "development-insecure-client-secret"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return d
}
