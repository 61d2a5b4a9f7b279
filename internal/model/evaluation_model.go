package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Evaluation is one evaluator's answer set for one application, at most one
// per (application, evaluator) pair. Overall caches the engine's result at
// save time so ranking reads never rescore against an edited rubric.
type Evaluation struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicationID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_evaluations_application_evaluator" json:"application_id"`
	EvaluatorID   uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_evaluations_application_evaluator" json:"evaluator_id"`
	EvaluatorName string         `gorm:"type:varchar(255)" json:"evaluator_name"`
	Scores        datatypes.JSON `gorm:"type:jsonb" json:"scores"` // AnswerSet, canonical wire shape
	Notes         string         `gorm:"type:text" json:"notes"`
	Overall       float64        `gorm:"type:float" json:"overall"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (e *Evaluation) TableName() string {
	return "evaluations"
}
