package model

import "time"

// JobResponse records an interaction on a job, e.g. "phone screen scheduled".
// It is owned by its job and removed with it.
type JobResponse struct {
	ID     uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID  uint      `gorm:"not null;index" json:"job_id"`
	Date   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"date"`
	Status string    `gorm:"type:text;not null" json:"status"`
	Notes  *string   `gorm:"type:text" json:"notes"`
}

// JobResponseCreate is the payload for attaching a response to a job.
type JobResponseCreate struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}
