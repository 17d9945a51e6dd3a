package repository

import (
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

func (r *ResumeRepository) Create(resume *model.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepository) FindByUser(userID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("updated_at desc").Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) FindByIDAndUser(id, userID uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.Preload("User").First(&resume, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepository) Update(resume *model.Resume) error {
	return r.db.Save(resume).Error
}

func (r *ResumeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Resume{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
