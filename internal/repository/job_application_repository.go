package repository

import (
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
	"gorm.io/gorm"
)

type JobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db}
}

func (r *JobApplicationRepository) Create(app *model.JobApplication) error {
	return r.db.Create(app).Error
}

// FindByUser lists the caller's applications, excluding soft-deleted rows.
func (r *JobApplicationRepository) FindByUser(userID uuid.UUID) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("date_applied desc").Find(&apps).Error
	return apps, err
}

// FindByIDAndUser looks up a single row by id and owner. Soft-deleted rows
// are still found here; only listings hide them.
func (r *JobApplicationRepository) FindByIDAndUser(id, userID uuid.UUID) (*model.JobApplication, error) {
	var app model.JobApplication
	err := r.db.First(&app, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *JobApplicationRepository) Update(app *model.JobApplication) error {
	return r.db.Save(app).Error
}

// SoftDelete flags the row instead of removing it.
func (r *JobApplicationRepository) SoftDelete(id, userID uuid.UUID) error {
	result := r.db.Model(&model.JobApplication{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindExamples returns the shared demo set shown to anonymous visitors.
func (r *JobApplicationRepository) FindExamples(limit int) ([]model.JobApplication, error) {
	var apps []model.JobApplication
	err := r.db.Where("is_example = ?", true).Limit(limit).Find(&apps).Error
	return apps, err
}
