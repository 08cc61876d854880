package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"JobOrganizer-backend/internal/stats"
	"JobOrganizer-backend/internal/utilities"
)

// GetStats serves aggregate job counts. Results are cached for the
// configured TTL, so repeated polling does not hit the database.
// @Summary Aggregate job counts by status and priority
// @Tags Stats
// @Produce json
// @Success 200 {object} stats.Stats
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/stats [get]
func (jc *JobController) GetStats(c *gin.Context) {
	result, err := jc.StatsCache.Get(func() (stats.Stats, error) {
		return stats.Compute(jc.DB.DB)
	})
	if err != nil {
		log.Printf("failed to compute stats: %s", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
