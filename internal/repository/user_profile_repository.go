package repository

import (
	"github.com/eiderao/novva-recruit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db}
}

func (r *UserProfileRepository) FindProfileByID(id uuid.UUID) (*model.UserProfile, error) {
	var p model.UserProfile
	err := r.db.First(&p, "id = ?", id).Error
	return &p, err
}
