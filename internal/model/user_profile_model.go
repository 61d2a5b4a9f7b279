package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile mirrors one row per authenticated recruiter. The ID is the
// identity provider's user id, so there is no generated default here.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	TenantID  uuid.UUID `gorm:"type:uuid;index" json:"tenant_id"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *UserProfile) TableName() string {
	return "user_profiles"
}
