package dto

import "github.com/google/uuid"

type GenerateResumeRequest struct {
	Model     string `json:"model" validate:"required"`
	UserInput string `json:"user_input" validate:"required,min=50"`
	Title     string `json:"title"`
}

type GenerateResumeResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Content  string    `json:"content"`
}

// AIModelDTO is the public projection of a model configuration. Credential
// and policy internals never leave the server.
type AIModelDTO struct {
	DisplayName      string `json:"display_name"`
	Description      string `json:"description"`
	ResponseTimeInfo string `json:"response_time_info"`
	LoginRequired    bool   `json:"login_required"`
}
