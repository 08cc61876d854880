package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"JobOrganizer-backend/internal/importer"
	"JobOrganizer-backend/internal/utilities"
)

// ImportResult is the response body of a successful import run.
type ImportResult struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// ImportJobs runs the import pipeline over the configured source document.
// @Summary Bulk-import jobs from the markdown source document
// @Description Deleted jobs are never re-imported; re-running with an unchanged document imports 0 jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} ImportResult "Import summary"
// @Failure 404 {object} utilities.ErrorResponse "Source document not found"
// @Failure 409 {object} utilities.ErrorResponse "Concurrent import inserted the same job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/import [post]
func (jc *JobController) ImportJobs(c *gin.Context) {
	count, err := jc.Importer.Run(jc.SourcePath)
	if err != nil {
		if errors.Is(err, importer.ErrSourceNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: fmt.Sprintf("%s file not found", jc.SourcePath),
			})
			return
		}
		if errors.Is(err, importer.ErrConflict) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "Import conflicted with a concurrent import, retry",
			})
			return
		}
		log.Printf("import failed: %s", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ImportResult{
		Message:  fmt.Sprintf("Successfully imported %d jobs", count),
		Imported: count,
	})
}
