package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medassist/services/assistant"
	"medassist/utils"
)

// IndexerService is wired at startup before routes are registered.
var IndexerService *assistant.Indexer

// Reindex rebuilds the hospital and pharmacy vector indexes. The rebuild is
// synchronous; the response carries the per-collection counts.
func Reindex(c *gin.Context) {
	if IndexerService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "indexer is not available"})
		return
	}

	report, err := IndexerService.Reindex(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("reindex failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reindex failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
