package database

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "JobOrganizer-backend/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(tm *testing.M) {
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	tm.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateCreatedTables(t *testing.T) {
	for _, table := range []string{"jobs", "job_responses", "deleted_jobs"} {
		if !testDB.Migrator().HasTable(table) {
			t.Fatalf("expected table %q to exist after migration", table)
		}
	}
}

func TestSeededFixtures(t *testing.T) {
	var job m.Job
	if err := testDB.Preload("Responses").First(&job, TestJob1.ID).Error; err != nil {
		t.Fatalf("failed to load seeded job: %s", err)
	}
	if job.Title != TestJob1.Title {
		t.Fatalf("expected seeded job title %q, got %q", TestJob1.Title, job.Title)
	}
	if len(job.Responses) != 2 {
		t.Fatalf("expected 2 seeded responses, got %d", len(job.Responses))
	}

	var tombstoneCount int64
	if err := testDB.Model(&m.DeletedJob{}).Count(&tombstoneCount).Error; err != nil {
		t.Fatalf("failed to count tombstones: %s", err)
	}
	if tombstoneCount < 1 {
		t.Fatalf("expected at least one seeded tombstone")
	}
}
