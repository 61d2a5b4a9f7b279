package model

// Plan defines the commercial limits applied to a tenant. A limit of -1
// means unlimited.
type Plan struct {
	ID             string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(100)" json:"name"`
	JobLimit       int    `json:"job_limit"`
	CandidateLimit int    `json:"candidate_limit"`
}

func (p *Plan) TableName() string {
	return "plans"
}

const Unlimited = -1
