package usecase

import (
	"errors"
	"fmt"

	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
)

// Actor is the authenticated recruiter on whose behalf a usecase runs.
// Authentication itself happens at the middleware boundary; usecases only
// enforce tenant ownership.
type Actor struct {
	UserID   uuid.UUID
	Name     string
	TenantID uuid.UUID
	IsAdmin  bool
}

var (
	// ErrNotFound: the record does not exist at all.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden: the record exists but belongs to another tenant.
	// Kept distinct from ErrNotFound on purpose.
	ErrForbidden = errors.New("record belongs to another tenant")

	ErrTitleRequired         = errors.New("job title is required")
	ErrJobLimitReached       = errors.New("active job limit reached for the current plan")
	ErrJobUnavailable        = errors.New("job is not accepting applications")
	ErrCandidateLimitReached = errors.New("candidate limit reached for this job")
	ErrAlreadyApplied        = errors.New("candidate already applied to this job")
	ErrMissingApplicantData  = errors.New("name and email are required")
	ErrResumeRequired        = errors.New("resume is required")
)

// RubricInvalidError carries the validator's findings back to the rubric
// editing surface.
type RubricInvalidError struct {
	Errors []rubric.ValidationError
}

func (e *RubricInvalidError) Error() string {
	return fmt.Sprintf("rubric failed validation with %d error(s)", len(e.Errors))
}
