package usecase

import (
	"encoding/json"
	"errors"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EvaluationUsecase struct {
	applicationRepo ApplicationStore
	evaluationRepo  EvaluationStore
}

func NewEvaluationUsecase(applicationRepo ApplicationStore, evaluationRepo EvaluationStore) *EvaluationUsecase {
	return &EvaluationUsecase{applicationRepo: applicationRepo, evaluationRepo: evaluationRepo}
}

// Save upserts the actor's evaluation of one application. The overall
// score is computed here, server-side, by the same engine the preview
// endpoint exposes, and cached on the row for ranking reads.
func (uc *EvaluationUsecase) Save(actor Actor, applicationID uuid.UUID, rawAnswers []byte, notes string) (*rubric.ScoreResult, error) {
	app, err := uc.applicationRepo.FindApplicationByID(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if app.TenantID != actor.TenantID {
		return nil, ErrForbidden
	}

	def := rubric.ParseDefinition(app.Job.Parameters)
	answers := rubric.ParseAnswerSet(rawAnswers)
	result := rubric.Score(def, answers)

	scores, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	if err := uc.evaluationRepo.UpsertEvaluation(&model.Evaluation{
		ApplicationID: app.ID,
		EvaluatorID:   actor.UserID,
		EvaluatorName: actor.Name,
		Scores:        scores,
		Notes:         notes,
		Overall:       result.Overall,
	}); err != nil {
		return nil, err
	}
	return &result, nil
}

// Preview scores a rubric/answers pair without persisting anything. The
// frontend's live preview calls this instead of carrying its own copy of
// the formula, so preview and authoritative score cannot drift.
func (uc *EvaluationUsecase) Preview(rawRubric, rawAnswers []byte) rubric.ScoreResult {
	return rubric.Score(rubric.ParseDefinition(rawRubric), rubric.ParseAnswerSet(rawAnswers))
}
