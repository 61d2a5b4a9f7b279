package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type Job struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;index" json:"tenant_id"`
	Title        string         `json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Requirements string         `gorm:"type:text" json:"requirements"`
	Type         string         `gorm:"type:varchar(50)" json:"type"` // e.g. "CLT", "PJ"
	LocationType string         `gorm:"type:varchar(50)" json:"location_type"`
	Status       string         `gorm:"type:varchar(20)" json:"status"`
	Parameters   datatypes.JSON `gorm:"type:jsonb" json:"parameters"` // rubric blob, canonical wire shape
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
