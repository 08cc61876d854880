package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "JobOrganizer-backend/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records for tests
var (
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	TestResponse1 m.JobResponse
	TestResponse2 m.JobResponse

	// TestTombstone1 blocks re-import of a previously deleted job
	TestTombstone1 m.DeletedJob
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample jobs, responses and a tombstone
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample jobs (3), responses on the first job (2) and
// one tombstone, if the tables are still empty.
func seedTestData(db *DBinstanceStruct) error {
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		return loadTestData(db)
	}

	site1 := "https://technova.example.com/careers"
	desc1 := "Build and operate Go microservices."
	desc2 := "Maintain data pipelines and dashboards."

	base := time.Now().Add(-72 * time.Hour)

	jobs := []m.Job{
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:          "Backend Engineer",
				Company:        "TechNova",
				Location:       "Remote",
				ContactWebsite: &site1,
				Description:    &desc1,
				Type:           m.TypeFullTime,
				Status:         m.StatusApplied,
				Technologies:   pq.StringArray{"Go", "PostgreSQL", "Docker"},
				Requirements:   pq.StringArray{"3y backend experience"},
				Benefits:       pq.StringArray{"Remote work"},
			},
			Priority:     m.PriorityHigh,
			Score:        80,
			DateAdded:    base,
			DateModified: base,
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:        "Data Analyst",
				Company:      "DataForge",
				Location:     "Bangkok",
				Description:  &desc2,
				Type:         m.TypeContract,
				Status:       m.StatusWishlist,
				Technologies: pq.StringArray{"SQL", "Python"},
			},
			Priority:     m.PriorityMedium,
			Score:        40,
			DateAdded:    base.Add(24 * time.Hour),
			DateModified: base.Add(24 * time.Hour),
		},
		{
			EditableJobInfo: m.EditableJobInfo{
				Title:    "Platform Engineer",
				Company:  "Acme Cloud",
				Location: "Berlin",
				Type:     m.TypeFullTime,
				Status:   m.StatusInterview,
			},
			Priority:     m.PriorityLow,
			Score:        15,
			DateAdded:    base.Add(48 * time.Hour),
			DateModified: base.Add(48 * time.Hour),
		},
	}

	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1 = jobs[0]
	TestJob2 = jobs[1]
	TestJob3 = jobs[2]

	notes := "Recruiter call went well"
	responses := []m.JobResponse{
		{JobID: TestJob1.ID, Status: "phone screen scheduled", Notes: &notes},
		{JobID: TestJob1.ID, Status: "technical interview"},
	}
	if err := db.Create(&responses).Error; err != nil {
		return err
	}
	TestResponse1 = responses[0]
	TestResponse2 = responses[1]

	tombstone := m.DeletedJob{
		Title:    "Frontend Developer",
		Company:  "OldCorp",
		Location: "Remote",
	}
	if err := db.Create(&tombstone).Error; err != nil {
		return err
	}
	TestTombstone1 = tombstone

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err != nil {
		return err
	}
	if len(jobs) > 0 {
		TestJob1 = jobs[0]
	}
	if len(jobs) > 1 {
		TestJob2 = jobs[1]
	}
	if len(jobs) > 2 {
		TestJob3 = jobs[2]
	}

	var responses []m.JobResponse
	if err := db.Order("id ASC").Limit(2).Find(&responses).Error; err == nil {
		if len(responses) > 0 {
			TestResponse1 = responses[0]
		}
		if len(responses) > 1 {
			TestResponse2 = responses[1]
		}
	}

	_ = db.Order("id ASC").First(&TestTombstone1).Error

	return nil
}
