package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/JijoBose/web5-wallet/internal/database"
	"github.com/JijoBose/web5-wallet/internal/did"
	"github.com/JijoBose/web5-wallet/internal/models"
	"github.com/JijoBose/web5-wallet/internal/realtime"
	"github.com/JijoBose/web5-wallet/internal/resolver"

	"github.com/gin-gonic/gin"
)

/*
*
ResolveDID handles GET /api/resolve/:did
Serves the resolution result for a DID, cache-first. The response carries
a "cached" flag saying whether the upstream resolver was consulted.
*/
func ResolveDID(c *gin.Context) {
	clientID := c.GetString("client_id")
	if clientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Client ID not found in token",
		})
		return
	}

	didURI := c.Param("did")

	start := time.Now()
	result, cached, err := DIDResolver.ResolveWithSource(c.Request.Context(), didURI)
	if err != nil {
		switch {
		case errors.Is(err, did.ErrInvalidDID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid DID: " + didURI})
		case errors.Is(err, resolver.ErrNotResolved):
			c.JSON(http.StatusNotFound, gin.H{"error": "DID could not be resolved: " + didURI})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve DID"})
		}
		return
	}
	elapsed := time.Since(start)

	source := models.SourceUpstream
	if cached {
		source = models.SourceCache
	}

	// Audit log write is best-effort; a failure must not fail the resolve.
	parsed, _ := did.Parse(didURI)
	record := models.ResolutionRecord{
		ID:         fmt.Sprintf("res-%d", time.Now().UnixNano()),
		DID:        didURI,
		Method:     parsed.Method,
		Source:     source,
		ClientID:   clientID,
		DurationMs: elapsed.Milliseconds(),
	}
	if err := database.GetDB().Create(&record).Error; err != nil {
		log.Println("failed to record resolution:", err)
	}

	realtime.GetHub().Broadcast(realtime.Event{
		Type:     realtime.EventResolved,
		DID:      didURI,
		Source:   string(source),
		ClientID: clientID,
	})

	c.JSON(http.StatusOK, gin.H{
		"did":    didURI,
		"cached": cached,
		"result": result,
	})
}
