package repository

import (
	"github.com/eiderao/novva-recruit/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

// UpsertByEmail keeps a single candidate row per email, refreshing the
// profile fields on every new application. The candidate's id is filled in
// on conflict as well.
func (r *CandidateRepository) UpsertByEmail(candidate *model.Candidate) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "city", "state",
			"linkedin_profile", "github_profile", "resume_url", "updated_at",
		}),
	}).Create(candidate).Error
}

func (r *CandidateRepository) FindCandidateByEmail(email string) (*model.Candidate, error) {
	var c model.Candidate
	err := r.db.First(&c, "email = ?", email).Error
	return &c, err
}
