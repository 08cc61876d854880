package controller

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"JobOrganizer-backend/internal/database"
	"JobOrganizer-backend/internal/model"
	"JobOrganizer-backend/internal/stats"
	"JobOrganizer-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func newRouter() (*gin.Engine, *JobController) {
	r := gin.New()
	jc := NewJobController(testDB)

	r.GET("/api/jobs", jc.GetJobs)
	r.POST("/api/jobs", jc.CreateJob)
	r.POST("/api/jobs/import", jc.ImportJobs)
	r.GET("/api/jobs/:id", jc.GetJob)
	r.PATCH("/api/jobs/:id", jc.UpdateJob)
	r.DELETE("/api/jobs/:id", jc.DeleteJob)
	r.POST("/api/jobs/:id/responses", jc.CreateJobResponse)
	r.GET("/api/stats", jc.GetStats)

	return r, jc
}

func TestGetJob_success(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/jobs/%d", database.TestJob1.ID), http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(database.TestJob1.ID), resp["id"])
	assert.Equal(t, database.TestJob1.Title, resp["title"])

	// responses are eagerly included
	responses, ok := resp["responses"].([]interface{})
	require.True(t, ok)
	assert.Len(t, responses, 2)
}

func TestGetJob_notFound(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs/999999", http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Job not found", resp["error"])
}

func TestCreateJob_appliesDefaults(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":    "Created Job",
		"company":  "CreateCo",
		"location": "Berlin",
	}, r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "FULL_TIME", resp["type"])
	assert.Equal(t, "WISHLIST", resp["status"])
	assert.Equal(t, "MEDIUM", resp["priority"])
	assert.Equal(t, float64(0), resp["score"])

	var job model.Job
	require.NoError(t, testDB.First(&job, "title = ?", "Created Job").Error)
	assert.False(t, job.DateAdded.IsZero())
	assert.False(t, job.DateModified.Before(job.DateAdded))
}

func TestCreateJob_validationError(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"company": "NoTitleCo",
	}, r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error", resp["error"])
	details, ok := resp["details"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, details)
}

func TestCreateJob_invalidEnumRejected(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":    "Enum Job",
		"company":  "EnumCo",
		"location": "Berlin",
		"status":   "NOT_A_STATUS",
	}, r, "/api/jobs", http.MethodPost)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error", resp["error"])
}

func TestCreateJob_conflictOnIdentityTriple(t *testing.T) {
	r, _ := newRouter()

	body := gin.H{
		"title":    "Conflict Job",
		"company":  "ConflictCo",
		"location": "Remote",
	}

	rec, _ := testutil.MakeJSONRequest(body, r, "/api/jobs", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(body, r, "/api/jobs", http.MethodPost)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, resp["error"], "already exists")
}

func TestUpdateJob_partialUpdate(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	job := model.Job{
		EditableJobInfo: model.EditableJobInfo{
			Title:    "Patch Target",
			Company:  "PatchCo",
			Location: "Berlin",
			Type:     model.TypeFullTime,
			Status:   model.StatusWishlist,
		},
		Priority:     model.PriorityMedium,
		DateAdded:    created,
		DateModified: created,
	}
	require.NoError(t, testDB.Create(&job).Error)
	before := job.DateModified

	r, _ := newRouter()
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": "APPLIED",
	}, r, fmt.Sprintf("/api/jobs/%d", job.ID), http.MethodPatch)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "APPLIED", resp["status"])
	// untouched fields survive
	assert.Equal(t, "Patch Target", resp["title"])
	assert.Equal(t, "PatchCo", resp["company"])

	var reloaded model.Job
	require.NoError(t, testDB.First(&reloaded, job.ID).Error)
	assert.Equal(t, model.StatusApplied, reloaded.Status)
	assert.True(t, reloaded.DateModified.After(before))
	assert.Equal(t, job.DateAdded.Unix(), reloaded.DateAdded.Unix())
}

func TestUpdateJob_notFound(t *testing.T) {
	r, _ := newRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "APPLIED"}, r, "/api/jobs/999999", http.MethodPatch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteJob_cascadesAndWritesTombstone(t *testing.T) {
	job := model.Job{
		EditableJobInfo: model.EditableJobInfo{
			Title:    "Delete Target",
			Company:  "DeleteCo",
			Location: "Remote",
			Type:     model.TypeFullTime,
			Status:   model.StatusApplied,
		},
		Priority: model.PriorityMedium,
	}
	require.NoError(t, testDB.Create(&job).Error)
	responses := []model.JobResponse{
		{JobID: job.ID, Status: "phone screen"},
		{JobID: job.ID, Status: "onsite"},
	}
	require.NoError(t, testDB.Create(&responses).Error)

	r, _ := newRouter()
	rec, resp := testutil.MakeJSONRequest(nil, r, fmt.Sprintf("/api/jobs/%d", job.ID), http.MethodDelete)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Job deleted successfully", resp["message"])

	var jobCount int64
	require.NoError(t, testDB.Model(&model.Job{}).Where("id = ?", job.ID).Count(&jobCount).Error)
	assert.Equal(t, int64(0), jobCount)

	// no orphaned responses
	var respCount int64
	require.NoError(t, testDB.Model(&model.JobResponse{}).Where("job_id = ?", job.ID).Count(&respCount).Error)
	assert.Equal(t, int64(0), respCount)

	var tombstone model.DeletedJob
	require.NoError(t, testDB.Where("title = ? AND company = ? AND location = ?",
		"Delete Target", "DeleteCo", "Remote").First(&tombstone).Error)
	assert.False(t, tombstone.DeletedAt.IsZero())
}

func TestDeleteJob_notFound(t *testing.T) {
	r, _ := newRouter()

	rec, _ := testutil.MakeJSONRequest(nil, r, "/api/jobs/999999", http.MethodDelete)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetJobs_statusFilter(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?status=INTERVIEW", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp)
	for _, job := range resp {
		assert.Equal(t, "INTERVIEW", job["status"])
	}
}

func TestGetJobs_sortByBogusFieldFallsBack(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?sort_by=bogus_field", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, len(resp) >= 2)

	// fallback is date_added descending, never an error
	for i := 1; i < len(resp); i++ {
		prev, err1 := time.Parse(time.RFC3339Nano, resp[i-1]["date_added"].(string))
		cur, err2 := time.Parse(time.RFC3339Nano, resp[i]["date_added"].(string))
		if err1 != nil || err2 != nil {
			t.Skipf("unexpected timestamp format: %v %v", err1, err2)
		}
		assert.False(t, prev.Before(cur))
	}
}

func TestGetJobs_sortOrderAnythingElseMeansAsc(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONListRequest(r, "/api/jobs?sort_by=score&sort_order=sideways", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, len(resp) >= 2)
	for i := 1; i < len(resp); i++ {
		assert.LessOrEqual(t, resp[i-1]["score"].(float64), resp[i]["score"].(float64))
	}
}

func TestGetJobs_invalidLimitRejected(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs?limit=0", http.MethodGet)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error", resp["error"])

	rec, _ = testutil.MakeJSONRequest(nil, r, "/api/jobs?offset=-1", http.MethodGet)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetJobs_paginationSplitsWithoutGaps(t *testing.T) {
	// 150 jobs under a status no other test uses, with distinct date_added
	// values so the sort order is stable across the two page requests
	var existing int64
	require.NoError(t, testDB.Model(&model.Job{}).Where("status = ?", model.StatusAlpha).Count(&existing).Error)
	base := time.Now().Add(-200 * time.Hour)
	for i := existing; i < 150; i++ {
		stamp := base.Add(time.Duration(i) * time.Minute)
		job := model.Job{
			EditableJobInfo: model.EditableJobInfo{
				Title:    fmt.Sprintf("Paging Job %03d", i),
				Company:  "PagingCo",
				Location: "Remote",
				Type:     model.TypeFullTime,
				Status:   model.StatusAlpha,
			},
			Priority:     model.PriorityLow,
			DateAdded:    stamp,
			DateModified: stamp,
		}
		require.NoError(t, testDB.Create(&job).Error)
	}

	r, _ := newRouter()

	rec, page1 := testutil.MakeJSONListRequest(r, "/api/jobs?status=ALPHA&sort_by=date_added&limit=100&offset=0", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, page1, 100)

	rec, page2 := testutil.MakeJSONListRequest(r, "/api/jobs?status=ALPHA&sort_by=date_added&limit=100&offset=100", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, page2, 50)

	seen := map[float64]bool{}
	for _, job := range append(page1, page2...) {
		id := job["id"].(float64)
		assert.False(t, seen[id], "job %v appeared on both pages", id)
		seen[id] = true
	}
	assert.Len(t, seen, 150)
}

func TestCreateJobResponse_success(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": "offer received",
		"notes":  "they want an answer by Friday",
	}, r, fmt.Sprintf("/api/jobs/%d/responses", database.TestJob2.ID), http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "offer received", resp["status"])
	assert.Equal(t, float64(database.TestJob2.ID), resp["job_id"])
}

func TestCreateJobResponse_jobNotFound(t *testing.T) {
	r, _ := newRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "x"}, r, "/api/jobs/999999/responses", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateJobResponse_validationError(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{"notes": "no status"}, r,
		fmt.Sprintf("/api/jobs/%d/responses", database.TestJob2.ID), http.MethodPost)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error", resp["error"])
}

func TestGetStats_cachedWithinTTL(t *testing.T) {
	r, _ := newRouter()

	rec, first := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	// mutate the store between the two requests
	job := model.Job{
		EditableJobInfo: model.EditableJobInfo{
			Title:    "Stats Cache Job",
			Company:  "StatsCo",
			Location: "Remote",
			Type:     model.TypeFullTime,
			Status:   model.StatusWishlist,
		},
		Priority: model.PriorityMedium,
	}
	require.NoError(t, testDB.Create(&job).Error)

	rec, second := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	// same router, same cache, within TTL: identical payload
	assert.Equal(t, first, second)
}

func TestGetStats_reflectsStoreAfterExpiry(t *testing.T) {
	r, jc := newRouter()
	// zero TTL simulates an expired cache on every request
	jc.StatsCache = stats.NewCache(0)

	rec, before := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	job := model.Job{
		EditableJobInfo: model.EditableJobInfo{
			Title:    "Stats Expiry Job",
			Company:  "StatsCo",
			Location: "Berlin",
			Type:     model.TypeFullTime,
			Status:   model.StatusWishlist,
		},
		Priority: model.PriorityMedium,
	}
	require.NoError(t, testDB.Create(&job).Error)

	rec, after := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before["total_jobs"].(float64)+1, after["total_jobs"].(float64))
}

func TestGetStats_shape(t *testing.T) {
	r, _ := newRouter()

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/stats", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, resp, "total_jobs")
	assert.Contains(t, resp, "status_counts")
	assert.Contains(t, resp, "priority_counts")
}

func TestImportJobs_endpoint(t *testing.T) {
	doc := `## Endpoint Import Engineer
- Company: EndpointCo
- Location: Remote
- Technologies: Go, Docker
`
	path := filepath.Join(t.TempDir(), "JOBS_SOURCE.md")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r, jc := newRouter()
	jc.SourcePath = path

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs/import", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["imported"])
	assert.Equal(t, "Successfully imported 1 jobs", resp["message"])

	// unchanged document and store: idempotent
	rec, resp = testutil.MakeJSONRequest(nil, r, "/api/jobs/import", http.MethodPost)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["imported"])
}

func TestImportJobs_sourceMissing(t *testing.T) {
	r, jc := newRouter()
	jc.SourcePath = filepath.Join(t.TempDir(), "missing.md")

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/jobs/import", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp["error"], "not found")
}
