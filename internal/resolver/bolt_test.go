package resolver

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T, ttl time.Duration) (*BoltCache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolutions.db")
	s, err := OpenBolt(path, ttl)
	require.NoError(t, err)
	return s, path
}

func TestBoltCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestBolt(t, time.Minute)
	defer s.Close()

	uri := "did:web:example.com"
	require.NoError(t, s.Set(ctx, uri, sampleResult(uri)))

	got, err := s.Get(ctx, uri)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uri, got.Document.ID)
	require.Len(t, got.Document.VerificationMethod, 1)
}

func TestBoltCache_EmptyDIDRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestBolt(t, time.Minute)
	defer s.Close()

	_, err := s.Get(ctx, "")
	require.ErrorIs(t, err, ErrEmptyDID)
	require.ErrorIs(t, s.Set(ctx, "", nil), ErrEmptyDID)
	require.ErrorIs(t, s.Delete(ctx, ""), ErrEmptyDID)
}

func TestBoltCache_Expiry(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestBolt(t, 30*time.Millisecond)
	defer s.Close()

	uri := "did:web:example.com"
	require.NoError(t, s.Set(ctx, uri, sampleResult(uri)))

	time.Sleep(60 * time.Millisecond)

	got, err := s.Get(ctx, uri)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestBoltCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := openTestBolt(t, time.Minute)

	uri := "did:web:example.com"
	require.NoError(t, s.Set(ctx, uri, sampleResult(uri)))
	require.NoError(t, s.Close())

	s2, err := OpenBolt(path, time.Minute)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, uri)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, uri, got.Document.ID)
}

func TestBoltCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s, _ := openTestBolt(t, time.Minute)
	defer s.Close()

	require.NoError(t, s.Delete(ctx, "did:web:never-stored.example"))

	for _, uri := range []string{"did:web:a.example", "did:web:b.example"} {
		require.NoError(t, s.Set(ctx, uri, sampleResult(uri)))
	}
	require.NoError(t, s.Delete(ctx, "did:web:a.example"))
	got, err := s.Get(ctx, "did:web:a.example")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Get(ctx, "did:web:b.example")
	require.NoError(t, err)
	require.Nil(t, got)
}
