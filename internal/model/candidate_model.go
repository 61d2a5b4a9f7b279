package model

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a person, unique by email across the whole platform. A new
// application for a known email updates the profile in place.
type Candidate struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `gorm:"type:varchar(255)" json:"name"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone           string    `gorm:"type:varchar(50)" json:"phone"`
	City            string    `gorm:"type:varchar(100)" json:"city"`
	State           string    `gorm:"type:varchar(50)" json:"state"`
	LinkedinProfile string    `gorm:"type:varchar(255)" json:"linkedin_profile"`
	GithubProfile   string    `gorm:"type:varchar(255)" json:"github_profile"`
	ResumeURL       string    `gorm:"type:text" json:"resume_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
