package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
)

// DateApplied travels as YYYY-MM-DD.
const DateLayout = "2006-01-02"

type JobApplicationRequest struct {
	JobTitle               string     `json:"job_title" validate:"required,max=255"`
	CompanyName            string     `json:"company_name" validate:"required,max=255"`
	OriginalJobDescription string     `json:"original_job_description" validate:"required"`
	ResumeUsedID           *uuid.UUID `json:"resume_used_id"`
	DateApplied            string     `json:"date_applied" validate:"required"`
	Status                 string     `json:"status" validate:"omitempty,oneof=Applied Interviewing Offer Rejected"`
	Notes                  string     `json:"notes"`
}

type JobApplicationDTO struct {
	ID                     uuid.UUID               `json:"id"`
	JobTitle               string                  `json:"job_title"`
	CompanyName            string                  `json:"company_name"`
	OriginalJobDescription string                  `json:"original_job_description"`
	ResumeUsedID           *uuid.UUID              `json:"resume_used_id"`
	DateApplied            string                  `json:"date_applied"`
	Status                 model.ApplicationStatus `json:"status"`
	Notes                  string                  `json:"notes"`
	CreatedAt              time.Time               `json:"created_at"`
	UpdatedAt              time.Time               `json:"updated_at"`
}

func NewJobApplicationDTO(a *model.JobApplication) JobApplicationDTO {
	return JobApplicationDTO{
		ID:                     a.ID,
		JobTitle:               a.JobTitle,
		CompanyName:            a.CompanyName,
		OriginalJobDescription: a.OriginalJobDescription,
		ResumeUsedID:           a.ResumeUsedID,
		DateApplied:            a.DateApplied.Format(DateLayout),
		Status:                 a.Status,
		Notes:                  a.Notes,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}
