package model

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousUsername is the well-known username of the single shared account
// that owns resumes generated by unauthenticated callers. The row is
// disabled so it can never log in.
const AnonymousUsername = "anonymous_user"

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(254)" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
