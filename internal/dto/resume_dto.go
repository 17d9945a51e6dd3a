package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/model"
)

type ResumeRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type ResumeDTO struct {
	ID        uuid.UUID `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResumeDTO(r *model.Resume) ResumeDTO {
	d := ResumeDTO{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.User != nil {
		d.User = r.User.Username
	}
	return d
}
