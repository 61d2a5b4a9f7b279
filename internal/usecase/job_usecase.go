package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/eiderao/novva-recruit/internal/dto"
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// benchmarkEvaluatorName marks the synthetic evaluation seeded at job
// creation; uuid.Nil is the reserved evaluator id for it.
const benchmarkEvaluatorName = "Benchmark"

type JobUsecase struct {
	jobRepo         JobStore
	applicationRepo ApplicationStore
	candidateRepo   CandidateStore
	evaluationRepo  EvaluationStore
	tenantRepo      TenantStore
}

func NewJobUsecase(
	jobRepo JobStore,
	applicationRepo ApplicationStore,
	candidateRepo CandidateStore,
	evaluationRepo EvaluationStore,
	tenantRepo TenantStore,
) *JobUsecase {
	return &JobUsecase{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		evaluationRepo:  evaluationRepo,
		tenantRepo:      tenantRepo,
	}
}

type CreateJobInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Type         string `json:"type"`
	LocationType string `json:"location_type"`
}

// CreateJob creates an active job with the default rubric, enforcing the
// plan's active-job cap, then seeds the benchmark reference application.
func (uc *JobUsecase) CreateJob(actor Actor, input CreateJobInput) (*model.Job, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	tenant, err := uc.tenantRepo.FindTenantByID(actor.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Plan.JobLimit != model.Unlimited {
		count, err := uc.jobRepo.CountActiveJobs(actor.TenantID)
		if err != nil {
			return nil, err
		}
		if count >= int64(tenant.Plan.JobLimit) {
			return nil, ErrJobLimitReached
		}
	}

	if input.Type == "" {
		input.Type = "CLT"
	}
	if input.LocationType == "" {
		input.LocationType = "Híbrido"
	}

	parameters, err := json.Marshal(rubric.DefaultDefinition())
	if err != nil {
		return nil, err
	}

	job := &model.Job{
		TenantID:     actor.TenantID,
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		Type:         input.Type,
		LocationType: input.LocationType,
		Status:       model.JobStatusActive,
		Parameters:   parameters,
	}
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}

	// The job is usable even if seeding fails; the reference profile can
	// be recreated by support tooling.
	if err := uc.seedBenchmark(job); err != nil {
		log.Printf("benchmark seed failed for job %s: %v", job.ID, err)
	}
	return job, nil
}

// seedBenchmark inserts the synthetic "average expectations" application so
// every job carries at least one scored reference point for calibration.
func (uc *JobUsecase) seedBenchmark(job *model.Job) error {
	def := rubric.ParseDefinition(job.Parameters)
	answers := rubric.Benchmark(def)
	result := rubric.Score(def, answers)

	candidate := &model.Candidate{
		Name:  "Candidato Benchmark",
		Email: fmt.Sprintf("benchmark+%s@novva.internal", job.ID),
	}
	if err := uc.candidateRepo.UpsertByEmail(candidate); err != nil {
		return err
	}

	application := &model.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		TenantID:    job.TenantID,
		IsBenchmark: true,
	}
	if err := uc.applicationRepo.CreateApplication(application); err != nil {
		return err
	}

	scores, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	return uc.evaluationRepo.UpsertEvaluation(&model.Evaluation{
		ApplicationID: application.ID,
		EvaluatorID:   uuid.Nil,
		EvaluatorName: benchmarkEvaluatorName,
		Scores:        scores,
		Overall:       result.Overall,
	})
}

func (uc *JobUsecase) ListJobs(actor Actor) ([]dto.JobSummaryDTO, *dto.JobListMeta, error) {
	tenant, err := uc.tenantRepo.FindTenantByID(actor.TenantID)
	if err != nil {
		return nil, nil, err
	}

	jobs, err := uc.jobRepo.GetJobsByTenant(actor.TenantID)
	if err != nil {
		return nil, nil, err
	}
	counts, err := uc.applicationRepo.CountsByTenant(actor.TenantID)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]dto.JobSummaryDTO, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, dto.JobSummaryDTO{
			ID:             job.ID,
			Title:          job.Title,
			Status:         job.Status,
			Type:           job.Type,
			LocationType:   job.LocationType,
			CandidateCount: counts[job.ID],
			CreatedAt:      job.CreatedAt,
		})
	}

	meta := &dto.JobListMeta{
		CompanyName: tenant.CompanyName,
		UserName:    actor.Name,
		PlanID:      tenant.PlanID,
		IsAdmin:     actor.IsAdmin,
	}
	return summaries, meta, nil
}

// GetJob loads one job scoped to the actor's tenant. A job of another
// tenant surfaces ErrForbidden, never ErrNotFound.
func (uc *JobUsecase) GetJob(actor Actor, jobID uuid.UUID) (*dto.JobDetailDTO, error) {
	job, err := uc.findTenantJob(actor, jobID)
	if err != nil {
		return nil, err
	}

	return &dto.JobDetailDTO{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Type:         job.Type,
		LocationType: job.LocationType,
		Status:       job.Status,
		Rubric:       rubric.ParseDefinition(job.Parameters),
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}, nil
}

// UpdateRubric validates and saves a rubric edit, normalizing whatever
// legacy shape came in to the canonical one. Evaluations already stored
// against the previous rubric are not rescored.
func (uc *JobUsecase) UpdateRubric(actor Actor, jobID uuid.UUID, raw []byte) (*rubric.Definition, error) {
	if _, err := uc.findTenantJob(actor, jobID); err != nil {
		return nil, err
	}

	def := rubric.ParseDefinition(raw)
	if errs := rubric.Validate(def); len(errs) > 0 {
		return nil, &RubricInvalidError{Errors: errs}
	}

	encoded, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	if err := uc.jobRepo.UpdateParameters(jobID, encoded); err != nil {
		return nil, err
	}
	return &def, nil
}

func (uc *JobUsecase) findTenantJob(actor Actor, jobID uuid.UUID) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.TenantID != actor.TenantID {
		return nil, ErrForbidden
	}
	return job, nil
}
