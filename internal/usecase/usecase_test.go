package usecase

import (
	"time"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// In-memory stand-ins for the stores, just enough behavior for the
// tenant-scope, cap and duplicate rules to run without a database.

type stubJobs struct {
	job     *model.Job
	findErr error
	active  int64
	created *model.Job
	params  datatypes.JSON
}

func (s *stubJobs) CreateJob(job *model.Job) error {
	job.ID = uuid.New()
	s.created = job
	return nil
}

func (s *stubJobs) FindJobByID(id uuid.UUID) (*model.Job, error) {
	return s.job, s.findErr
}

func (s *stubJobs) GetJobsByTenant(tenantID uuid.UUID) ([]model.Job, error) {
	if s.job == nil {
		return nil, nil
	}
	return []model.Job{*s.job}, nil
}

func (s *stubJobs) CountActiveJobs(tenantID uuid.UUID) (int64, error) {
	return s.active, nil
}

func (s *stubJobs) UpdateParameters(jobID uuid.UUID, parameters datatypes.JSON) error {
	s.params = parameters
	return nil
}

type stubApplications struct {
	app     *model.Application
	findErr error
	exists  bool
	count   int64
	created *model.Application
}

func (s *stubApplications) CreateApplication(app *model.Application) error {
	app.ID = uuid.New()
	s.created = app
	return nil
}

func (s *stubApplications) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	return s.app, s.findErr
}

func (s *stubApplications) Exists(jobID, candidateID uuid.UUID) (bool, error) {
	return s.exists, nil
}

func (s *stubApplications) ListByJob(jobID uuid.UUID, page, pageSize int) ([]model.Application, int64, error) {
	return nil, 0, nil
}

func (s *stubApplications) CountByJob(jobID uuid.UUID) (int64, error) {
	return s.count, nil
}

func (s *stubApplications) CountsByTenant(tenantID uuid.UUID) (map[uuid.UUID]int64, error) {
	return nil, nil
}

func (s *stubApplications) ListHired(tenantID uuid.UUID) ([]model.Application, error) {
	return nil, nil
}

func (s *stubApplications) UpdateHired(id uuid.UUID, isHired bool, hiredAt *time.Time) error {
	return nil
}

type stubCandidates struct {
	upserted *model.Candidate
}

func (s *stubCandidates) UpsertByEmail(candidate *model.Candidate) error {
	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	s.upserted = candidate
	return nil
}

type stubEvaluations struct {
	evaluations []model.Evaluation
	upserted    *model.Evaluation
}

func (s *stubEvaluations) UpsertEvaluation(ev *model.Evaluation) error {
	s.upserted = ev
	return nil
}

func (s *stubEvaluations) ListByApplication(applicationID uuid.UUID) ([]model.Evaluation, error) {
	return s.evaluations, nil
}

func (s *stubEvaluations) ListByApplications(applicationIDs []uuid.UUID) ([]model.Evaluation, error) {
	return s.evaluations, nil
}

type stubTenants struct {
	tenant  *model.Tenant
	tenants []model.Tenant
}

func (s *stubTenants) FindTenantByID(id uuid.UUID) (*model.Tenant, error) {
	return s.tenant, nil
}

func (s *stubTenants) ListTenants() ([]model.Tenant, error) {
	return s.tenants, nil
}
