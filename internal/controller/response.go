package controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"JobOrganizer-backend/internal/model"
	"JobOrganizer-backend/internal/utilities"
)

// CreateJobResponse attaches an interaction record to a job.
// @Summary Record a response event on a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path integer true "Job ID"
// @Param Response body model.JobResponseCreate true "Response fields"
// @Success 200 {object} model.JobResponse "Created response"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 422 {object} utilities.ValidationErrorResponse "Schema violation"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/{id}/responses [post]
func (jc *JobController) CreateJobResponse(c *gin.Context) {
	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		log.Printf("failed to retrieve job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	var payload model.JobResponseCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utilities.NewValidationErrorResponse(err))
		return
	}

	response := model.JobResponse{
		JobID:  job.ID,
		Date:   time.Now(),
		Status: payload.Status,
		Notes:  payload.Notes,
	}
	if err := jc.DB.Create(&response).Error; err != nil {
		log.Printf("failed to create response for job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, response)
}
