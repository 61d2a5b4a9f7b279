package repository

import (
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db}
}

func (r *TenantRepository) FindTenantByID(id uuid.UUID) (*model.Tenant, error) {
	var t model.Tenant
	err := r.db.Preload("Plan").First(&t, "id = ?", id).Error
	return &t, err
}

func (r *TenantRepository) ListTenants() ([]model.Tenant, error) {
	var tenants []model.Tenant
	err := r.db.Preload("Plan").Order("company_name ASC").Find(&tenants).Error
	return tenants, err
}
