package dto

import (
	"time"

	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
)

// ApplicantDTO is one row of the ranked applicant listing. Section scores
// are the mean across evaluators computed by the scoring engine; the final
// score averages the persisted per-evaluator overalls.
type ApplicantDTO struct {
	ApplicationID  uuid.UUID `json:"application_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	SubmissionDate time.Time `json:"submission_date"`
	IsHired        bool      `json:"is_hired"`
	Screening      float64   `json:"screening"`
	Culture        float64   `json:"culture"`
	Technical      float64   `json:"technical"`
	FinalScore     *float64  `json:"final_score"`
	EvaluatorCount int       `json:"evaluator_count"`
}

type EvaluationViewDTO struct {
	EvaluatorID   uuid.UUID          `json:"evaluator_id"`
	EvaluatorName string             `json:"evaluator_name"`
	Result        rubric.ScoreResult `json:"result"`
	Notes         string             `json:"notes"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

type ApplicationDetailDTO struct {
	ID             uuid.UUID           `json:"id"`
	JobID          uuid.UUID           `json:"job_id"`
	JobTitle       string              `json:"job_title"`
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail string              `json:"candidate_email"`
	ResumeURL      string              `json:"resume_url"`
	FormData       any                 `json:"form_data"`
	IsHired        bool                `json:"is_hired"`
	HiredAt        *time.Time          `json:"hired_at"`
	CreatedAt      time.Time           `json:"created_at"`
	Rubric         rubric.Definition   `json:"rubric"`
	Summary        rubric.Summary      `json:"summary"`
	Evaluations    []EvaluationViewDTO `json:"evaluations"`
	MyEvaluation   *MyEvaluationDTO    `json:"my_evaluation,omitempty"`
}

// MyEvaluationDTO returns the caller's own saved selections so the form can
// be re-opened for editing.
type MyEvaluationDTO struct {
	Scores rubric.AnswerSet   `json:"scores"`
	Notes  string             `json:"notes"`
	Result rubric.ScoreResult `json:"result"`
}

type HiredApplicantDTO struct {
	ApplicationID  uuid.UUID  `json:"application_id"`
	JobID          uuid.UUID  `json:"job_id"`
	JobTitle       string     `json:"job_title"`
	CandidateName  string     `json:"candidate_name"`
	CandidateEmail string     `json:"candidate_email"`
	HiredAt        *time.Time `json:"hired_at"`
}
