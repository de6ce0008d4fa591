package repository

import (
	"github.com/forumhub/forum-hub-backend/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create creates a new profile
func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetByName retrieves a profile by its role name
func (r *ProfileRepository) GetByName(name string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("name = ?", name).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
