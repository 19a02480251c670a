package resolver

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/JijoBose/web5-wallet/internal/cache"
	"github.com/JijoBose/web5-wallet/internal/did"
)

var boltBucket = []byte("resolutions")

// BoltCache is a bbolt-backed Cache backend: cached resolutions survive
// process restarts. Values are stored as an 8-byte big-endian expiry
// (unix nanoseconds) followed by the JSON-encoded resolution result.
// Expired keys are deleted lazily inside the read path, like the
// in-memory backend.
type BoltCache struct {
	db  *bolt.DB
	ttl time.Duration
}

// OpenBolt opens or creates a persistent cache at path. TTL semantics
// match cache.New: zero means cache.DefaultTTL, negative is an error.
func OpenBolt(path string, ttl time.Duration) (*BoltCache, error) {
	if ttl < 0 {
		return nil, cache.ErrNegativeTTL
	}
	if ttl == 0 {
		ttl = cache.DefaultTTL
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltCache{db: db, ttl: ttl}, nil
}

// Get implements Cache.Get. It runs in a write transaction so an expired
// entry can be removed in the same step that observes it.
func (s *BoltCache) Get(_ context.Context, didURI string) (*did.ResolutionResult, error) {
	if didURI == "" {
		return nil, ErrEmptyDID
	}

	var out *did.ResolutionResult
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(boltBucket)
		v := b.Get([]byte(didURI))
		if v == nil {
			return nil
		}
		if len(v) < 8 {
			// Corrupt record; drop it rather than fail every read.
			return b.Delete([]byte(didURI))
		}
		expiresAt := int64(binary.BigEndian.Uint64(v[:8]))
		if time.Now().UnixNano() >= expiresAt {
			return b.Delete([]byte(didURI))
		}
		var result did.ResolutionResult
		if err := json.Unmarshal(v[8:], &result); err != nil {
			return b.Delete([]byte(didURI))
		}
		out = &result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set implements Cache.Set.
func (s *BoltCache) Set(_ context.Context, didURI string, result *did.ResolutionResult) error {
	if didURI == "" {
		return ErrEmptyDID
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	buf := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint64(buf[:8], uint64(time.Now().Add(s.ttl).UnixNano()))
	copy(buf[8:], payload)

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(didURI), buf)
	})
}

// Delete implements Cache.Delete.
func (s *BoltCache) Delete(_ context.Context, didURI string) error {
	if didURI == "" {
		return ErrEmptyDID
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(didURI))
	})
}

// Clear implements Cache.Clear by dropping and recreating the bucket in
// one transaction.
func (s *BoltCache) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(boltBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(boltBucket)
		return err
	})
}

// Close implements Cache.Close by closing the underlying database.
func (s *BoltCache) Close() error {
	return s.db.Close()
}

var _ Cache = (*BoltCache)(nil)
