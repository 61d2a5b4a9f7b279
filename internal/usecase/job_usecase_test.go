package usecase

import (
	"testing"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func freeTenant(id uuid.UUID, jobLimit, candidateLimit int) *model.Tenant {
	return &model.Tenant{
		ID:     id,
		PlanID: "free",
		Plan:   model.Plan{ID: "free", JobLimit: jobLimit, CandidateLimit: candidateLimit},
	}
}

func TestCreateJobPlanCap(t *testing.T) {
	tenantID := uuid.New()
	actor := Actor{UserID: uuid.New(), TenantID: tenantID}

	t.Run("cap reached on the free plan", func(t *testing.T) {
		jobs := &stubJobs{active: 3}
		uc := NewJobUsecase(jobs, &stubApplications{}, &stubCandidates{}, &stubEvaluations{}, &stubTenants{
			tenant: freeTenant(tenantID, 3, 50),
		})

		_, err := uc.CreateJob(actor, CreateJobInput{Title: "Backend Dev"})
		assert.ErrorIs(t, err, ErrJobLimitReached)
		assert.Nil(t, jobs.created)
	})

	t.Run("unlimited plan skips the count", func(t *testing.T) {
		jobs := &stubJobs{active: 999}
		apps := &stubApplications{}
		evals := &stubEvaluations{}
		uc := NewJobUsecase(jobs, apps, &stubCandidates{}, evals, &stubTenants{
			tenant: freeTenant(tenantID, model.Unlimited, model.Unlimited),
		})

		job, err := uc.CreateJob(actor, CreateJobInput{Title: "Backend Dev"})
		require.NoError(t, err)
		assert.Equal(t, model.JobStatusActive, job.Status)
		assert.NotEmpty(t, job.Parameters)

		// Job creation seeds the reference application under the
		// reserved evaluator.
		require.NotNil(t, apps.created)
		assert.True(t, apps.created.IsBenchmark)
		require.NotNil(t, evals.upserted)
		assert.Equal(t, uuid.Nil, evals.upserted.EvaluatorID)
	})

	t.Run("missing title", func(t *testing.T) {
		uc := NewJobUsecase(&stubJobs{}, &stubApplications{}, &stubCandidates{}, &stubEvaluations{}, &stubTenants{})
		_, err := uc.CreateJob(actor, CreateJobInput{})
		assert.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestGetJobTenantScope(t *testing.T) {
	tenantID := uuid.New()
	actor := Actor{UserID: uuid.New(), TenantID: tenantID}
	jobID := uuid.New()

	tests := []struct {
		name    string
		jobs    *stubJobs
		wantErr error
	}{
		{
			name:    "missing job",
			jobs:    &stubJobs{findErr: gorm.ErrRecordNotFound},
			wantErr: ErrNotFound,
		},
		{
			name:    "job of another tenant",
			jobs:    &stubJobs{job: &model.Job{ID: jobID, TenantID: uuid.New()}},
			wantErr: ErrForbidden,
		},
		{
			name: "owned job",
			jobs: &stubJobs{job: &model.Job{ID: jobID, TenantID: tenantID}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewJobUsecase(tt.jobs, &stubApplications{}, &stubCandidates{}, &stubEvaluations{}, &stubTenants{})
			detail, err := uc.GetJob(actor, jobID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, jobID, detail.ID)
		})
	}
}
