package usecase

import (
	"testing"

	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTenants(t *testing.T) {
	tenants := &stubTenants{tenants: []model.Tenant{
		{
			ID:          uuid.New(),
			CompanyName: "Acme Ltda",
			PlanID:      "pro",
			Plan:        model.Plan{ID: "pro", Name: "Pro", JobLimit: model.Unlimited, CandidateLimit: model.Unlimited},
		},
	}}
	uc := NewAdminUsecase(tenants)

	t.Run("admins only", func(t *testing.T) {
		_, err := uc.ListTenants(Actor{UserID: uuid.New(), IsAdmin: false})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin listing", func(t *testing.T) {
		list, err := uc.ListTenants(Actor{UserID: uuid.New(), IsAdmin: true})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Acme Ltda", list[0].CompanyName)
		assert.Equal(t, "Pro", list[0].PlanName)
		assert.Equal(t, model.Unlimited, list[0].JobLimit)
	})
}
