package model

import "time"

// DeletedJob is a tombstone written when a job is deleted. Its
// (title, company, location) triple permanently excludes the job from
// future imports. Tombstones are never pruned.
type DeletedJob struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Company        string    `gorm:"type:text;not null" json:"company"`
	Location       string    `gorm:"type:text;not null" json:"location"`
	ContactWebsite *string   `gorm:"type:text" json:"contact_website"`
	DeletedAt      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"deleted_at"`
}

// Identity returns the tombstone's (title, company, location) triple.
func (d *DeletedJob) Identity() [3]string {
	return [3]string{d.Title, d.Company, d.Location}
}
