package model

import (
	"time"

	"github.com/lib/pq"
)

// EditableJobInfo is the part of a job that clients can set on creation.
type EditableJobInfo struct {
	Title          string         `gorm:"type:text;not null;uniqueIndex:idx_jobs_identity" json:"title" binding:"required"`
	Company        string         `gorm:"type:text;not null;uniqueIndex:idx_jobs_identity" json:"company" binding:"required"`
	Location       string         `gorm:"type:text;not null;uniqueIndex:idx_jobs_identity" json:"location" binding:"required"`
	ContactWebsite *string        `gorm:"type:text" json:"contact_website"`
	Description    *string        `gorm:"type:text" json:"description"`
	Type           JobType        `gorm:"type:text;default:'FULL_TIME';index:ix_jobs_type" json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP FREELANCE OPEN_SOURCE PROPOSAL"`
	Status         JobStatus      `gorm:"type:text;default:'WISHLIST';index:ix_jobs_status" json:"status" binding:"omitempty,oneof=WISHLIST APPLIED INTERVIEW OFFER REJECTED DISCARDED ACTIVE ALPHA PRIMARY IDEA POTENTIAL"`
	Technologies   pq.StringArray `gorm:"type:text[]" json:"technologies"`
	Requirements   pq.StringArray `gorm:"type:text[]" json:"requirements"`
	Benefits       pq.StringArray `gorm:"type:text[]" json:"benefits"`
	Comments       *string        `gorm:"type:text" json:"comments"`
	Situation      *string        `gorm:"type:text" json:"situation"`
}

// Job is the gorm model for a tracked job opportunity.
type Job struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EditableJobInfo
	Priority     Priority  `gorm:"type:text;default:'MEDIUM';index:ix_jobs_priority" json:"priority"`
	Score        int       `gorm:"default:0" json:"score"`
	DateAdded    time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;<-:create;index:ix_jobs_date_added" json:"date_added"`
	DateModified time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"date_modified"`

	Responses []JobResponse `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"responses"`
}

// JobUpdate is the PATCH payload. Only non-nil fields are applied.
type JobUpdate struct {
	Title          *string         `json:"title"`
	Company        *string         `json:"company"`
	Location       *string         `json:"location"`
	ContactWebsite *string         `json:"contact_website"`
	Description    *string         `json:"description"`
	Type           *JobType        `json:"type" binding:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP FREELANCE OPEN_SOURCE PROPOSAL"`
	Status         *JobStatus      `json:"status" binding:"omitempty,oneof=WISHLIST APPLIED INTERVIEW OFFER REJECTED DISCARDED ACTIVE ALPHA PRIMARY IDEA POTENTIAL"`
	Priority       *Priority       `json:"priority" binding:"omitempty,oneof=HIGH MEDIUM LOW"`
	Technologies   *pq.StringArray `json:"technologies"`
	Requirements   *pq.StringArray `json:"requirements"`
	Benefits       *pq.StringArray `json:"benefits"`
	Comments       *string         `json:"comments"`
	Situation      *string         `json:"situation"`
}

// ApplyTo copies the supplied fields onto job. Empty required fields are
// ignored so a PATCH can never blank out title, company or location.
func (u *JobUpdate) ApplyTo(job *Job) {
	if u.Title != nil && *u.Title != "" {
		job.Title = *u.Title
	}
	if u.Company != nil && *u.Company != "" {
		job.Company = *u.Company
	}
	if u.Location != nil && *u.Location != "" {
		job.Location = *u.Location
	}
	if u.ContactWebsite != nil {
		job.ContactWebsite = u.ContactWebsite
	}
	if u.Description != nil {
		job.Description = u.Description
	}
	if u.Type != nil {
		job.Type = *u.Type
	}
	if u.Status != nil {
		job.Status = *u.Status
	}
	if u.Priority != nil {
		job.Priority = *u.Priority
	}
	if u.Technologies != nil {
		job.Technologies = *u.Technologies
	}
	if u.Requirements != nil {
		job.Requirements = *u.Requirements
	}
	if u.Benefits != nil {
		job.Benefits = *u.Benefits
	}
	if u.Comments != nil {
		job.Comments = u.Comments
	}
	if u.Situation != nil {
		job.Situation = u.Situation
	}
}

// Identity returns the (title, company, location) triple used as the
// de-facto natural key for import dedup.
func (j *Job) Identity() [3]string {
	return [3]string{j.Title, j.Company, j.Location}
}
