package model

import (
	"time"

	"github.com/google/uuid"
)

// APIProvider identifies which external service backs a model. The set is
// closed: dispatch rejects anything outside these two values.
type APIProvider string

const (
	ProviderGoogleGemini APIProvider = "google_gemini"
	ProviderOpenRouter   APIProvider = "open_router"
)

// AIModel is an operator-maintained configuration record describing one
// callable model and its access policy. The application only ever reads
// these rows.
type AIModel struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DisplayName string      `gorm:"type:varchar(100);uniqueIndex" json:"display_name"`
	ModelName   string      `gorm:"type:varchar(100)" json:"model_name"` // technical identifier for the API call
	APIProvider APIProvider `gorm:"type:varchar(50)" json:"api_provider"`
	APIKeyName  string      `gorm:"type:varchar(100)" json:"api_key_name"` // env var holding the credential

	IsActive      bool `gorm:"default:true" json:"is_active"`
	LoginRequired bool `gorm:"default:false" json:"login_required"`
	DailyLimit    int  `gorm:"default:0" json:"daily_limit"` // 0 means no limit

	ResponseTimeInfo string `gorm:"type:varchar(100)" json:"response_time_info"`
	Description      string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *AIModel) TableName() string {
	return "ai_models"
}
