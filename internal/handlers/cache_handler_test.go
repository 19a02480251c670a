package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCacheEndpoints_PeekInvalidateClear(t *testing.T) {
	upstream := &stubUpstream{}
	r, token := setupAPI(t, upstream)

	uri := "did:web:example.com"

	// Nothing cached yet.
	w := doRequest(r, http.MethodGet, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Resolve populates the cache.
	w = doRequest(r, http.MethodGet, "/api/resolve/"+uri, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Invalidate removes it; invalidating again still succeeds.
	w = doRequest(r, http.MethodDelete, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodDelete, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Repopulate, then clear everything.
	w = doRequest(r, http.MethodGet, "/api/resolve/"+uri, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(r, http.MethodDelete, "/api/cache", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/cache/"+uri, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
