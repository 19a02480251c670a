package handlers

import (
	"net/http"

	"github.com/JijoBose/web5-wallet/internal/database"
	"github.com/JijoBose/web5-wallet/internal/models"

	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/stats
// Returns resolution counts grouped by DID method and by source
// (cache vs upstream) from the audit log.
func GetStats(c *gin.Context) {
	db := database.GetDB()

	type row struct {
		Key   string
		Count int64
	}

	var byMethod []row
	if err := db.Model(&models.ResolutionRecord{}).
		Select("method as key, COUNT(*) as count").
		Group("method").
		Scan(&byMethod).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	var bySource []row
	if err := db.Model(&models.ResolutionRecord{}).
		Select("source as key, COUNT(*) as count").
		Group("source").
		Scan(&bySource).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	methods := make(map[string]int64, len(byMethod))
	var total int64
	for _, r := range byMethod {
		methods[r.Key] = r.Count
		total += r.Count
	}

	// Initialize with zeros so both sources always appear
	sources := map[string]int64{
		string(models.SourceCache):    0,
		string(models.SourceUpstream): 0,
	}
	for _, r := range bySource {
		sources[r.Key] = r.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"byMethod": methods,
		"bySource": sources,
		"total":    total,
	})
}
