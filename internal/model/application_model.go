package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Application links a candidate to a job. Benchmark rows are synthetic
// reference applications seeded at job creation; they are excluded from
// candidate listings, counts and plan caps.
type Application struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID      `gorm:"type:uuid;index;uniqueIndex:idx_applications_job_candidate" json:"job_id"`
	CandidateID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_applications_job_candidate" json:"candidate_id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;index" json:"tenant_id"`
	ResumeURL   string         `gorm:"type:text" json:"resume_url"`
	FormData    datatypes.JSON `gorm:"type:jsonb" json:"form_data"`
	IsHired     bool           `json:"is_hired"`
	HiredAt     *time.Time     `json:"hired_at"`
	IsBenchmark bool           `gorm:"index" json:"is_benchmark"`
	CreatedAt   time.Time      `json:"created_at"`

	Candidate Candidate `json:"candidate"`
	Job       Job       `json:"job"`
}

func (a *Application) TableName() string {
	return "applications"
}
