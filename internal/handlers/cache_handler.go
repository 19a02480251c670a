package handlers

import (
	"errors"
	"net/http"

	"github.com/JijoBose/web5-wallet/internal/realtime"
	"github.com/JijoBose/web5-wallet/internal/resolver"

	"github.com/gin-gonic/gin"
)

// GetCachedDID handles GET /api/cache/:did
// Peeks at the cache without resolving; 404 when absent or expired.
func GetCachedDID(c *gin.Context) {
	didURI := c.Param("did")

	result, err := ResolverCache.Get(c.Request.Context(), didURI)
	if err != nil {
		if errors.Is(err, resolver.ErrEmptyDID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "DID is required"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cache"})
		}
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "DID not cached: " + didURI})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"did":    didURI,
		"result": result,
	})
}

// InvalidateDID handles DELETE /api/cache/:did
// Removes any cached entry for the DID; succeeds whether or not one existed.
func InvalidateDID(c *gin.Context) {
	clientID := c.GetString("client_id")
	didURI := c.Param("did")

	if err := ResolverCache.Delete(c.Request.Context(), didURI); err != nil {
		if errors.Is(err, resolver.ErrEmptyDID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "DID is required"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to invalidate cache entry"})
		}
		return
	}

	realtime.GetHub().Broadcast(realtime.Event{
		Type:     realtime.EventCacheInvalidated,
		DID:      didURI,
		ClientID: clientID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cache entry invalidated",
		"did":     didURI,
	})
}

// ClearCache handles DELETE /api/cache
// Empties the cache, expired and live entries alike.
func ClearCache(c *gin.Context) {
	clientID := c.GetString("client_id")

	if err := ResolverCache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
		return
	}

	realtime.GetHub().Broadcast(realtime.Event{
		Type:     realtime.EventCacheCleared,
		ClientID: clientID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cache cleared",
	})
}
