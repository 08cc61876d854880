// Package controller provides HTTP handlers for job tracking operations.
package controller

import (
	"os"

	"JobOrganizer-backend/internal/database"
	"JobOrganizer-backend/internal/importer"
	"JobOrganizer-backend/internal/stats"
)

// JobController struct holds the database connection and the collaborators
// for job-related operations.
type JobController struct {
	DB         *database.DBinstanceStruct
	Importer   *importer.Importer
	StatsCache *stats.Cache
	SourcePath string
}

// NewJobController creates a new instance of JobController with the provided database connection.
func NewJobController(db *database.DBinstanceStruct) *JobController {
	sourcePath := os.Getenv("JOBS_SOURCE_PATH")
	if sourcePath == "" {
		sourcePath = importer.DefaultSourcePath
	}

	return &JobController{
		DB:         db,
		Importer:   importer.New(db.DB),
		StatsCache: stats.NewCache(stats.DefaultTTL),
		SourcePath: sourcePath,
	}
}
