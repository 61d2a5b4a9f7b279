package repository

import (
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

// UpsertEvaluation keeps at most one evaluation per (application, evaluator)
// pair; a later save wins over an earlier one for the same evaluator.
func (r *EvaluationRepository) UpsertEvaluation(ev *model.Evaluation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "application_id"}, {Name: "evaluator_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"evaluator_name", "scores", "notes", "overall", "updated_at",
		}),
	}).Create(ev).Error
}

func (r *EvaluationRepository) ListByApplication(applicationID uuid.UUID) ([]model.Evaluation, error) {
	var evaluations []model.Evaluation
	err := r.db.Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&evaluations).Error
	return evaluations, err
}

func (r *EvaluationRepository) ListByApplications(applicationIDs []uuid.UUID) ([]model.Evaluation, error) {
	if len(applicationIDs) == 0 {
		return nil, nil
	}
	var evaluations []model.Evaluation
	err := r.db.Where("application_id IN ?", applicationIDs).Find(&evaluations).Error
	return evaluations, err
}

func (r *EvaluationRepository) FindByEvaluator(applicationID, evaluatorID uuid.UUID) (*model.Evaluation, error) {
	var ev model.Evaluation
	err := r.db.First(&ev, "application_id = ? AND evaluator_id = ?", applicationID, evaluatorID).Error
	return &ev, err
}
