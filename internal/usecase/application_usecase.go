package usecase

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/eiderao/novva-recruit/internal/dto"
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/eiderao/novva-recruit/internal/response"
	"github.com/eiderao/novva-recruit/internal/rubric"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationUsecase struct {
	applicationRepo ApplicationStore
	candidateRepo   CandidateStore
	evaluationRepo  EvaluationStore
	jobRepo         JobStore
	tenantRepo      TenantStore
}

func NewApplicationUsecase(
	applicationRepo ApplicationStore,
	candidateRepo CandidateStore,
	evaluationRepo EvaluationStore,
	jobRepo JobStore,
	tenantRepo TenantStore,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		evaluationRepo:  evaluationRepo,
		jobRepo:         jobRepo,
		tenantRepo:      tenantRepo,
	}
}

// PublicJobData is the unauthenticated read the application form uses to
// decide whether submissions are still accepted.
func (uc *ApplicationUsecase) PublicJobData(jobID uuid.UUID) (*dto.PublicJobDTO, error) {
	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	count, err := uc.applicationRepo.CountByJob(job.ID)
	if err != nil {
		return nil, err
	}
	tenant, err := uc.tenantRepo.FindTenantByID(job.TenantID)
	if err != nil {
		return nil, err
	}

	return &dto.PublicJobDTO{
		Title:          job.Title,
		CandidateCount: count,
		PlanID:         tenant.PlanID,
	}, nil
}

type ApplyInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	City            string `json:"city"`
	State           string `json:"state"`
	LinkedinProfile string `json:"linkedin_profile"`
	GithubProfile   string `json:"github_profile"`
	ResumeURL       string `json:"resume_url"`
	Motivation      string `json:"motivation"`
	EducationLevel  string `json:"education_level"`
	EducationStatus string `json:"education_status"`
	CourseName      string `json:"course_name"`
	Institution     string `json:"institution"`
	ConclusionDate  string `json:"conclusion_date"`
	CurrentPeriod   string `json:"current_period"`
}

// Apply handles the public intake path: active-job gate, freemium
// candidate cap, candidate upsert by email, one application per candidate
// per job.
func (uc *ApplicationUsecase) Apply(jobID uuid.UUID, input ApplyInput) error {
	if input.Name == "" || input.Email == "" {
		return ErrMissingApplicantData
	}
	if input.ResumeURL == "" {
		return ErrResumeRequired
	}

	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if job.Status != model.JobStatusActive {
		return ErrJobUnavailable
	}

	tenant, err := uc.tenantRepo.FindTenantByID(job.TenantID)
	if err != nil {
		return err
	}
	if tenant.Plan.CandidateLimit != model.Unlimited {
		count, err := uc.applicationRepo.CountByJob(job.ID)
		if err != nil {
			return err
		}
		if count >= int64(tenant.Plan.CandidateLimit) {
			return ErrCandidateLimitReached
		}
	}

	candidate := &model.Candidate{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		City:            input.City,
		State:           input.State,
		LinkedinProfile: input.LinkedinProfile,
		GithubProfile:   input.GithubProfile,
		ResumeURL:       input.ResumeURL,
	}
	if err := uc.candidateRepo.UpsertByEmail(candidate); err != nil {
		return err
	}

	exists, err := uc.applicationRepo.Exists(job.ID, candidate.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyApplied
	}

	formData, err := json.Marshal(map[string]string{
		"motivation":       input.Motivation,
		"education_level":  input.EducationLevel,
		"education_status": input.EducationStatus,
		"course_name":      input.CourseName,
		"institution":      input.Institution,
		"conclusion_date":  input.ConclusionDate,
		"current_period":   input.CurrentPeriod,
		"applied_at_date":  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	return uc.applicationRepo.CreateApplication(&model.Application{
		JobID:       job.ID,
		CandidateID: candidate.ID,
		TenantID:    job.TenantID,
		ResumeURL:   input.ResumeURL,
		FormData:    formData,
	})
}

// GetDetails returns one application with its consolidated evaluation
// summary, every evaluator's engine result, and the caller's own saved
// selections when present.
func (uc *ApplicationUsecase) GetDetails(actor Actor, applicationID uuid.UUID) (*dto.ApplicationDetailDTO, error) {
	app, err := uc.findTenantApplication(actor, applicationID)
	if err != nil {
		return nil, err
	}

	def := rubric.ParseDefinition(app.Job.Parameters)
	evaluations, err := uc.evaluationRepo.ListByApplication(app.ID)
	if err != nil {
		return nil, err
	}

	scores := make([]rubric.EvaluatorScore, 0, len(evaluations))
	views := make([]dto.EvaluationViewDTO, 0, len(evaluations))
	var mine *dto.MyEvaluationDTO
	for _, ev := range evaluations {
		scores = append(scores, rubric.EvaluatorScore{Name: ev.EvaluatorName, Overall: ev.Overall})

		answers := rubric.ParseAnswerSet(ev.Scores)
		result := rubric.Score(def, answers)
		views = append(views, dto.EvaluationViewDTO{
			EvaluatorID:   ev.EvaluatorID,
			EvaluatorName: ev.EvaluatorName,
			Result:        result,
			Notes:         ev.Notes,
			UpdatedAt:     ev.UpdatedAt,
		})
		if ev.EvaluatorID == actor.UserID {
			mine = &dto.MyEvaluationDTO{Scores: answers, Notes: ev.Notes, Result: result}
		}
	}

	var formData any
	if len(app.FormData) > 0 {
		_ = json.Unmarshal(app.FormData, &formData)
	}

	return &dto.ApplicationDetailDTO{
		ID:             app.ID,
		JobID:          app.JobID,
		JobTitle:       app.Job.Title,
		CandidateName:  app.Candidate.Name,
		CandidateEmail: app.Candidate.Email,
		ResumeURL:      app.ResumeURL,
		FormData:       formData,
		IsHired:        app.IsHired,
		HiredAt:        app.HiredAt,
		CreatedAt:      app.CreatedAt,
		Rubric:         def,
		Summary:        rubric.Summarize(scores),
		Evaluations:    views,
		MyEvaluation:   mine,
	}, nil
}

// ListApplicants returns the ranked listing for one job. Section columns
// are the mean of each evaluator's engine result; the final score averages
// the persisted overalls, so it survives rubric edits unchanged.
func (uc *ApplicationUsecase) ListApplicants(actor Actor, jobID uuid.UUID, page, pageSize int) ([]dto.ApplicantDTO, *response.Pagination, error) {
	job, err := uc.jobRepo.FindJobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if job.TenantID != actor.TenantID {
		return nil, nil, ErrForbidden
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	def := rubric.ParseDefinition(job.Parameters)
	apps, total, err := uc.applicationRepo.ListByJob(job.ID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uuid.UUID, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	evaluations, err := uc.evaluationRepo.ListByApplications(ids)
	if err != nil {
		return nil, nil, err
	}
	byApplication := make(map[uuid.UUID][]model.Evaluation, len(apps))
	for _, ev := range evaluations {
		byApplication[ev.ApplicationID] = append(byApplication[ev.ApplicationID], ev)
	}

	applicants := make([]dto.ApplicantDTO, 0, len(apps))
	for _, app := range apps {
		row := dto.ApplicantDTO{
			ApplicationID:  app.ID,
			CandidateName:  app.Candidate.Name,
			CandidateEmail: app.Candidate.Email,
			SubmissionDate: app.CreatedAt,
			IsHired:        app.IsHired,
		}

		evs := byApplication[app.ID]
		row.EvaluatorCount = len(evs)
		if len(evs) > 0 {
			var screening, culture, technical float64
			scores := make([]rubric.EvaluatorScore, 0, len(evs))
			for _, ev := range evs {
				result := rubric.Score(def, rubric.ParseAnswerSet(ev.Scores))
				screening += result.Screening
				culture += result.Culture
				technical += result.Technical
				scores = append(scores, rubric.EvaluatorScore{Name: ev.EvaluatorName, Overall: ev.Overall})
			}
			n := float64(len(evs))
			row.Screening = rubric.Round1(screening / n)
			row.Culture = rubric.Round1(culture / n)
			row.Technical = rubric.Round1(technical / n)
			row.FinalScore = rubric.Summarize(scores).FinalScore
		}
		applicants = append(applicants, row)
	}

	return applicants, response.NewPagination(page, pageSize, total), nil
}

// SetHired toggles the hired flag, stamping or clearing the hire date.
func (uc *ApplicationUsecase) SetHired(actor Actor, applicationID uuid.UUID, isHired bool) error {
	app, err := uc.findTenantApplication(actor, applicationID)
	if err != nil {
		return err
	}

	var hiredAt *time.Time
	if isHired {
		now := time.Now()
		hiredAt = &now
	}
	return uc.applicationRepo.UpdateHired(app.ID, isHired, hiredAt)
}

func (uc *ApplicationUsecase) ListHired(actor Actor) ([]dto.HiredApplicantDTO, error) {
	apps, err := uc.applicationRepo.ListHired(actor.TenantID)
	if err != nil {
		return nil, err
	}

	hired := make([]dto.HiredApplicantDTO, 0, len(apps))
	for _, app := range apps {
		hired = append(hired, dto.HiredApplicantDTO{
			ApplicationID:  app.ID,
			JobID:          app.JobID,
			JobTitle:       app.Job.Title,
			CandidateName:  app.Candidate.Name,
			CandidateEmail: app.Candidate.Email,
			HiredAt:        app.HiredAt,
		})
	}
	return hired, nil
}

func (uc *ApplicationUsecase) findTenantApplication(actor Actor, applicationID uuid.UUID) (*model.Application, error) {
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
	return app, nil
}
