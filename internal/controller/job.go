package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"JobOrganizer-backend/internal/importer"
	"JobOrganizer-backend/internal/model"
	"JobOrganizer-backend/internal/utilities"
)

// sortColumns is the allow-list for the sort_by query parameter. Anything
// else falls back to date_added instead of erroring.
var sortColumns = map[string]string{
	"date_added":    "date_added",
	"date_modified": "date_modified",
	"priority":      "priority",
	"company":       "company",
	"score":         "score",
}

// GetJobs fetches jobs matching the optional status/priority filters,
// sorted and paginated.
// @Summary List jobs with filtering, sorting and pagination
// @Tags Jobs
// @Produce json
// @Param status query string false "Filter by exact status"
// @Param priority query string false "Filter by exact priority"
// @Param sort_by query string false "One of date_added, date_modified, priority, company, score; unknown values fall back to date_added" default(date_added)
// @Param sort_order query string false "desc or asc; anything but desc means asc" default(desc)
// @Param limit query integer false "Page size, at least 1" default(100)
// @Param offset query integer false "Rows to skip, at least 0" default(0)
// @Success 200 {array} model.Job "Matching jobs with their responses"
// @Failure 422 {object} utilities.ValidationErrorResponse "Invalid limit or offset"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusUnprocessableEntity, utilities.NewValidationErrorResponse(
			fmt.Errorf("limit must be an integer >= 1")))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusUnprocessableEntity, utilities.NewValidationErrorResponse(
			fmt.Errorf("offset must be an integer >= 0")))
		return
	}

	result := jc.DB.Preload("Responses").Model(&model.Job{})

	if status := c.Query("status"); status != "" {
		result = result.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		result = result.Where("priority = ?", priority)
	}

	column, ok := sortColumns[c.DefaultQuery("sort_by", "date_added")]
	if !ok {
		column = "date_added"
	}

	jobs := []model.Job{}
	err = result.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   c.DefaultQuery("sort_order", "desc") == "desc",
	}).Limit(limit).Offset(offset).Find(&jobs).Error

	if err != nil {
		log.Printf("failed to fetch jobs: %s", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	// jobs without responses serialize as [] rather than null
	for i := range jobs {
		if jobs[i].Responses == nil {
			jobs[i].Responses = []model.JobResponse{}
		}
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob fetches a single job with its responses.
// @Summary Get job by ID
// @Tags Jobs
// @Produce json
// @Param id path integer true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Preload("Responses").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		log.Printf("failed to retrieve job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	if job.Responses == nil {
		job.Responses = []model.JobResponse{}
	}

	c.JSON(http.StatusOK, job)
}

// CreateJob creates a job from the request body.
// @Summary Create job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param Job body model.EditableJobInfo true "Job fields"
// @Success 200 {object} model.Job "Created job"
// @Failure 409 {object} utilities.ErrorResponse "Job with same title, company and location exists"
// @Failure 422 {object} utilities.ValidationErrorResponse "Schema violation"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utilities.NewValidationErrorResponse(err))
		return
	}

	if info.Type == "" {
		info.Type = model.TypeFullTime
	}
	if info.Status == "" {
		info.Status = model.StatusWishlist
	}

	now := time.Now()
	job := model.Job{
		EditableJobInfo: info,
		Priority:        model.PriorityMedium,
		DateAdded:       now,
		DateModified:    now,
		Responses:       []model.JobResponse{},
	}

	if err := jc.DB.Omit("Responses").Create(&job).Error; err != nil {
		if importer.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "A job with the same title, company and location already exists",
			})
			return
		}
		log.Printf("failed to create job: %s", err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob applies a partial update. Only supplied fields change and every
// mutation bumps date_modified.
// @Summary Partially update job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path integer true "Job ID"
// @Param Job body model.JobUpdate true "Fields to change"
// @Success 200 {object} model.Job "Updated job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 409 {object} utilities.ErrorResponse "Identity change collides with an existing job"
// @Failure 422 {object} utilities.ValidationErrorResponse "Schema violation"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/{id} [patch]
func (jc *JobController) UpdateJob(c *gin.Context) {
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

	var update model.JobUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusUnprocessableEntity, utilities.NewValidationErrorResponse(err))
		return
	}

	update.ApplyTo(&job)
	job.DateModified = time.Now()

	if err := jc.DB.Omit("Responses").Save(&job).Error; err != nil {
		if importer.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{
				Error: "A job with the same title, company and location already exists",
			})
			return
		}
		log.Printf("failed to update job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	// Reload with responses to return the latest data
	if err := jc.DB.Preload("Responses").First(&job, job.ID).Error; err != nil {
		log.Printf("failed to reload job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	if job.Responses == nil {
		job.Responses = []model.JobResponse{}
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a job and writes its tombstone in one transaction, so a
// failure leaves neither a tombstone nor a half-deleted job. Responses go
// with the job via the cascade constraint.
// @Summary Delete job and record tombstone
// @Tags Jobs
// @Produce json
// @Param id path integer true "Job ID"
// @Success 200 {object} utilities.MessageResponse "Job deleted"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /api/jobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
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

	err := jc.DB.Transaction(func(tx *gorm.DB) error {
		tombstone := model.DeletedJob{
			Title:          job.Title,
			Company:        job.Company,
			Location:       job.Location,
			ContactWebsite: job.ContactWebsite,
			DeletedAt:      time.Now(),
		}
		if err := tx.Create(&tombstone).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		log.Printf("failed to delete job %s: %s", id, err)
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted successfully"})
}
