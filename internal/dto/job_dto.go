package dto

import (
	"time"

	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
)

type JobSummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	Type           string    `json:"type"`
	LocationType   string    `json:"location_type"`
	CandidateCount int64     `json:"candidate_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobListMeta rides along with the dashboard listing so the frontend can
// render the header without extra requests.
type JobListMeta struct {
	CompanyName string `json:"company_name"`
	UserName    string `json:"user_name"`
	PlanID      string `json:"plan_id"`
	IsAdmin     bool   `json:"is_admin"`
}

type JobDetailDTO struct {
	ID           uuid.UUID         `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Requirements string            `json:"requirements"`
	Type         string            `json:"type"`
	LocationType string            `json:"location_type"`
	Status       string            `json:"status"`
	Rubric       rubric.Definition `json:"rubric"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// PublicJobDTO is the unauthenticated view used by the application form.
type PublicJobDTO struct {
	Title          string `json:"title"`
	CandidateCount int64  `json:"candidate_count"`
	PlanID         string `json:"plan_id"`
}
