package repository

import (
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) UpdateJob(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindJobByID(id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) GetJobsByTenant(tenantID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) CountActiveJobs(tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Job{}).
		Where("tenant_id = ? AND status = ?", tenantID, model.JobStatusActive).
		Count(&count).Error
	return count, err
}

func (r *JobRepository) UpdateParameters(jobID uuid.UUID, parameters datatypes.JSON) error {
	return r.db.Model(&model.Job{}).Where("id = ?", jobID).
		Update("parameters", parameters).Error
}
