package cache

// Cache defines a minimal key-value cache API with a fixed per-cache TTL.
// Implementations are safe for concurrent use unless documented otherwise.
type Cache[K comparable, V any] interface {
	// Get returns the value and whether it was present and not expired.
	Get(key K) (V, bool)

	// Set stores the value with a fresh expiration of now + TTL,
	// overwriting any existing entry for the key.
	Set(key K, value V)

	// Delete removes a key if present, expired or not.
	Delete(key K)

	// Clear removes all entries.
	Clear()

	// Len returns the number of entries currently stored, including
	// expired entries that have not been collected yet.
	Len() int

	// PurgeExpired scans and removes expired entries.
	PurgeExpired()

	// Close stops any background maintenance. Safe to call multiple times.
	Close()
}
