package repository

import (
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreateAnonymous returns the shared disabled account that owns
// anonymous generations. The insert is an ON CONFLICT DO NOTHING upsert on
// the username unique index, so concurrent callers never create a second
// row.
func (r *UserRepository) GetOrCreateAnonymous() (*model.User, error) {
	anon := model.User{
		Username: model.AnonymousUsername,
		IsActive: false,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&anon).Error
	if err != nil {
		return nil, err
	}
	return r.FindByUsername(model.AnonymousUsername)
}
