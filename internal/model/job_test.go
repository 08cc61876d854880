package model

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestApplyToOnlyChangesSuppliedFields(t *testing.T) {
	desc := "original description"
	job := Job{
		EditableJobInfo: EditableJobInfo{
			Title:       "Backend Engineer",
			Company:     "TechNova",
			Location:    "Remote",
			Description: &desc,
			Type:        TypeFullTime,
			Status:      StatusWishlist,
		},
		Priority: PriorityMedium,
	}

	status := StatusApplied
	(&JobUpdate{Status: &status}).ApplyTo(&job)

	assert.Equal(t, StatusApplied, job.Status)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "TechNova", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, &desc, job.Description)
	assert.Equal(t, PriorityMedium, job.Priority)
}

func TestApplyToIgnoresEmptyRequiredFields(t *testing.T) {
	job := Job{
		EditableJobInfo: EditableJobInfo{
			Title:    "Backend Engineer",
			Company:  "TechNova",
			Location: "Remote",
		},
	}

	empty := ""
	(&JobUpdate{Title: &empty, Company: &empty}).ApplyTo(&job)

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "TechNova", job.Company)
}

func TestApplyToReplacesArrays(t *testing.T) {
	job := Job{
		EditableJobInfo: EditableJobInfo{
			Title:        "Backend Engineer",
			Company:      "TechNova",
			Location:     "Remote",
			Technologies: pq.StringArray{"Go"},
		},
	}

	techs := pq.StringArray{"Rust", "Kafka"}
	(&JobUpdate{Technologies: &techs}).ApplyTo(&job)

	assert.EqualValues(t, []string{"Rust", "Kafka"}, []string(job.Technologies))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusWishlist.Valid())
	assert.True(t, TypeOpenSource.Valid())
	assert.True(t, PriorityHigh.Valid())

	assert.False(t, JobStatus("NOPE").Valid())
	assert.False(t, JobType("NOPE").Valid())
	assert.False(t, Priority("NOPE").Valid())
}

func TestIdentityTriple(t *testing.T) {
	job := Job{EditableJobInfo: EditableJobInfo{Title: "T", Company: "C", Location: "L"}}
	tomb := DeletedJob{Title: "T", Company: "C", Location: "L"}

	assert.Equal(t, job.Identity(), tomb.Identity())
}
