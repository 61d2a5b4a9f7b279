package model

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CompanyName string    `gorm:"type:varchar(255)" json:"company_name"`
	PlanID      string    `gorm:"type:varchar(50)" json:"plan_id"`
	Plan        Plan      `json:"plan"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Tenant) TableName() string {
	return "tenants"
}
