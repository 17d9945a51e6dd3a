package repository

import (
	"github.com/jobpilot/resume-tracker/internal/model"
	"gorm.io/gorm"
)

// AIModelRepository is read-only: model configurations are maintained by
// operators and seeded out of band.
type AIModelRepository struct {
	db *gorm.DB
}

func NewAIModelRepository(db *gorm.DB) *AIModelRepository {
	return &AIModelRepository{db}
}

func (r *AIModelRepository) FindActive() ([]model.AIModel, error) {
	var models []model.AIModel
	err := r.db.Where("is_active = ?", true).Order("display_name asc").Find(&models).Error
	return models, err
}

// FindActiveByDisplayName resolves a model selector case-insensitively,
// restricted to active rows.
func (r *AIModelRepository) FindActiveByDisplayName(name string) (*model.AIModel, error) {
	var m model.AIModel
	err := r.db.Where("LOWER(display_name) = LOWER(?) AND is_active = ?", name, true).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}
