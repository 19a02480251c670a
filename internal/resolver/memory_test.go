package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JijoBose/web5-wallet/internal/cache"
	"github.com/JijoBose/web5-wallet/internal/did"
)

func sampleResult(didURI string) *did.ResolutionResult {
	return &did.ResolutionResult{
		Document: &did.Document{
			ID: didURI,
			VerificationMethod: []did.VerificationMethod{
				{ID: didURI + "#key-1", Type: "JsonWebKey2020", Controller: didURI},
			},
		},
		ResolutionMetadata: did.ResolutionMetadata{ContentType: "application/did+json"},
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(cache.Options{TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	uri := "did:web:example.com"
	require.NoError(t, c.Set(ctx, uri, sampleResult(uri)))

	got, err := c.Get(ctx, uri)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uri, got.Document.ID)
}

func TestMemoryCache_AbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(cache.Options{TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	got, err := c.Get(ctx, "did:web:missing.example")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryCache_EmptyDIDRejected(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(cache.Options{TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	uri := "did:web:example.com"
	require.NoError(t, c.Set(ctx, uri, sampleResult(uri)))

	_, err = c.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyDID)
	require.ErrorIs(t, c.Set(ctx, "", sampleResult(uri)), ErrEmptyDID)
	require.ErrorIs(t, c.Delete(ctx, ""), ErrEmptyDID)

	// The rejected calls must not have altered cache state.
	require.Equal(t, 1, c.Len())
	got, err := c.Get(ctx, uri)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(cache.Options{TTL: 30 * time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	uri := "did:web:example.com"
	require.NoError(t, c.Set(ctx, uri, sampleResult(uri)))

	time.Sleep(60 * time.Millisecond)

	got, err := c.Get(ctx, uri)
	require.NoError(t, err)
	require.Nil(t, got)

	// The expired read evicted the entry.
	require.Equal(t, 0, c.Len())
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(cache.Options{TTL: time.Minute})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Delete(ctx, "did:web:never-stored.example"))

	for _, uri := range []string{"did:web:a.example", "did:web:b.example"} {
		require.NoError(t, c.Set(ctx, uri, sampleResult(uri)))
	}
	require.NoError(t, c.Delete(ctx, "did:web:a.example"))
	got, err := c.Get(ctx, "did:web:a.example")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, c.Clear(ctx))
	require.Equal(t, 0, c.Len())
}

func TestMemoryCache_CloseIsIdempotent(t *testing.T) {
	c, err := NewMemoryCache(cache.Options{TTL: time.Minute, SweepInterval: time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
