package repository

import (
	"time"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Candidate").Preload("Job").First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) Exists(jobID, candidateID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("job_id = ? AND candidate_id = ?", jobID, candidateID).
		Count(&count).Error
	return count > 0, err
}

// ListByJob returns real (non-benchmark) applications for a job, newest
// first, along with the total for pagination.
func (r *ApplicationRepository) ListByJob(jobID uuid.UUID, page, pageSize int) ([]model.Application, int64, error) {
	base := r.db.Model(&model.Application{}).
		Where("job_id = ? AND is_benchmark = ?", jobID, false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []model.Application
	err := base.Preload("Candidate").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepository) CountByJob(jobID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Application{}).
		Where("job_id = ? AND is_benchmark = ?", jobID, false).
		Count(&count).Error
	return count, err
}

// CountsByTenant aggregates non-benchmark application counts per job for
// the dashboard listing.
func (r *ApplicationRepository) CountsByTenant(tenantID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		JobID uuid.UUID
		Total int64
	}
	err := r.db.Model(&model.Application{}).
		Select("job_id, COUNT(*) AS total").
		Where("tenant_id = ? AND is_benchmark = ?", tenantID, false).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.JobID] = row.Total
	}
	return counts, nil
}

func (r *ApplicationRepository) ListHired(tenantID uuid.UUID) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Preload("Candidate").Preload("Job").
		Where("tenant_id = ? AND is_hired = ? AND is_benchmark = ?", tenantID, true, false).
		Order("hired_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) UpdateHired(id uuid.UUID, isHired bool, hiredAt *time.Time) error {
	return r.db.Model(&model.Application{}).Where("id = ?", id).
		Updates(map[string]any{"is_hired": isHired, "hired_at": hiredAt}).Error
}
