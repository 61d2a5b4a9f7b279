package usecase

import "github.com/eiderao/novva-recruit/internal/dto"

// AdminUsecase serves the read-only back-office surface. Tenant
// provisioning and plan changes happen outside this service.
type AdminUsecase struct {
	tenantRepo TenantStore
}

func NewAdminUsecase(tenantRepo TenantStore) *AdminUsecase {
	return &AdminUsecase{tenantRepo: tenantRepo}
}

// ListTenants returns every tenant account with its plan limits. Admins
// only; everyone else gets ErrForbidden.
func (uc *AdminUsecase) ListTenants(actor Actor) ([]dto.TenantSummaryDTO, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	tenants, err := uc.tenantRepo.ListTenants()
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.TenantSummaryDTO, 0, len(tenants))
	for _, tenant := range tenants {
		summaries = append(summaries, dto.TenantSummaryDTO{
			ID:             tenant.ID,
			CompanyName:    tenant.CompanyName,
			PlanID:         tenant.PlanID,
			PlanName:       tenant.Plan.Name,
			JobLimit:       tenant.Plan.JobLimit,
			CandidateLimit: tenant.Plan.CandidateLimit,
			CreatedAt:      tenant.CreatedAt,
		})
	}
	return summaries, nil
}
