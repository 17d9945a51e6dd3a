package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "Applied"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusOffer        ApplicationStatus = "Offer"
	StatusRejected     ApplicationStatus = "Rejected"
)

// JobApplication is one tracked application. Rows are never physically
// removed through the API: deletion flips IsDeleted and listings filter it
// out. Rows flagged IsExample form the shared public demo set.
type JobApplication struct {
	ID                     uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                 uuid.UUID         `gorm:"type:uuid;index" json:"user_id"`
	User                   *User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	JobTitle               string            `gorm:"type:varchar(255)" json:"job_title"`
	CompanyName            string            `gorm:"type:varchar(255)" json:"company_name"`
	OriginalJobDescription string            `gorm:"type:text" json:"original_job_description"`
	ResumeUsedID           *uuid.UUID        `gorm:"type:uuid" json:"resume_used_id"`
	ResumeUsed             *Resume           `gorm:"foreignKey:ResumeUsedID;constraint:OnDelete:SET NULL" json:"resume_used,omitempty"`
	DateApplied            time.Time         `gorm:"type:date" json:"date_applied"`
	Status                 ApplicationStatus `gorm:"type:varchar(20);default:Applied" json:"status"`
	Notes                  string            `gorm:"type:text" json:"notes"`
	IsDeleted              bool              `gorm:"default:false" json:"is_deleted"`
	IsExample              bool              `gorm:"default:false" json:"is_example"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}

func (j *JobApplication) TableName() string {
	return "job_applications"
}
