package dto

import (
	"time"

	"github.com/google/uuid"
)

// TenantSummaryDTO is the read-only admin view of a tenant account.
type TenantSummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	PlanID         string    `json:"plan_id"`
	PlanName       string    `json:"plan_name"`
	JobLimit       int       `json:"job_limit"`
	CandidateLimit int       `json:"candidate_limit"`
	CreatedAt      time.Time `json:"created_at"`
}
