package usecase

import (
	"time"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Store interfaces cover exactly the repository methods the usecases call.
// The concrete repositories in internal/repository satisfy them.

type JobStore interface {
	CreateJob(job *model.Job) error
	FindJobByID(id uuid.UUID) (*model.Job, error)
	GetJobsByTenant(tenantID uuid.UUID) ([]model.Job, error)
	CountActiveJobs(tenantID uuid.UUID) (int64, error)
	UpdateParameters(jobID uuid.UUID, parameters datatypes.JSON) error
}

type ApplicationStore interface {
	CreateApplication(app *model.Application) error
	FindApplicationByID(id uuid.UUID) (*model.Application, error)
	Exists(jobID, candidateID uuid.UUID) (bool, error)
	ListByJob(jobID uuid.UUID, page, pageSize int) ([]model.Application, int64, error)
	CountByJob(jobID uuid.UUID) (int64, error)
	CountsByTenant(tenantID uuid.UUID) (map[uuid.UUID]int64, error)
	ListHired(tenantID uuid.UUID) ([]model.Application, error)
	UpdateHired(id uuid.UUID, isHired bool, hiredAt *time.Time) error
}

type CandidateStore interface {
	UpsertByEmail(candidate *model.Candidate) error
}

type EvaluationStore interface {
	UpsertEvaluation(ev *model.Evaluation) error
	ListByApplication(applicationID uuid.UUID) ([]model.Evaluation, error)
	ListByApplications(applicationIDs []uuid.UUID) ([]model.Evaluation, error)
}

type TenantStore interface {
	FindTenantByID(id uuid.UUID) (*model.Tenant, error)
	ListTenants() ([]model.Tenant, error)
}
