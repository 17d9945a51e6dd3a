package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jobpilot/resume-tracker/internal/config"
	"github.com/jobpilot/resume-tracker/internal/model"
)

// Seeds the demo data served to anonymous visitors: a dedicated example
// account, five example job applications and two starter model
// configurations. Safe to run repeatedly.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	db := connectDB()

	user := exampleUser(db)
	seedExampleApplications(db, user)
	seedModels(db)

	log.Println("Seeding complete")
}

func connectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.AIModel{}, &model.Resume{}, &model.JobApplication{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

func exampleUser(db *gorm.DB) *model.User {
	user := model.User{
		Username: "example_user",
		IsActive: true,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		log.Fatal("could not create example user: ", err)
	}

	var existing model.User
	if err := db.First(&existing, "username = ?", user.Username).Error; err != nil {
		log.Fatal("could not load example user: ", err)
	}
	return &existing
}

func seedExampleApplications(db *gorm.DB, user *model.User) {
	date := func(value string) time.Time {
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			log.Fatal(err)
		}
		return t
	}

	examples := []model.JobApplication{
		{
			JobTitle:               "Senior Python Developer",
			CompanyName:            "TechCorp",
			OriginalJobDescription: "Seeking an experienced Python developer to work on our flagship data analysis platform.",
			Status:                 model.StatusApplied,
			DateApplied:            date("2025-07-10"),
		},
		{
			JobTitle:               "Frontend Engineer (React)",
			CompanyName:            "Innovate Inc.",
			OriginalJobDescription: "Join our dynamic frontend team to build beautiful and responsive user interfaces with React and TypeScript.",
			Status:                 model.StatusInterviewing,
			DateApplied:            date("2025-07-11"),
		},
		{
			JobTitle:               "UX/UI Designer",
			CompanyName:            "Creative Solutions",
			OriginalJobDescription: "We are looking for a talented designer to create intuitive and engaging user experiences for our mobile applications.",
			Status:                 model.StatusApplied,
			DateApplied:            date("2025-07-12"),
		},
		{
			JobTitle:               "DevOps Engineer",
			CompanyName:            "CloudNet",
			OriginalJobDescription: "Help us build and maintain our cloud infrastructure using AWS, Docker, and Kubernetes.",
			Status:                 model.StatusOffer,
			DateApplied:            date("2025-07-13"),
		},
		{
			JobTitle:               "Product Manager",
			CompanyName:            "Visionary Products",
			OriginalJobDescription: "Lead the development of our next-generation products from conception to launch.",
			Status:                 model.StatusRejected,
			DateApplied:            date("2025-07-14"),
		},
	}

	for _, example := range examples {
		example.UserID = user.ID
		example.IsExample = true

		var count int64
		db.Model(&model.JobApplication{}).
			Where("user_id = ? AND job_title = ? AND company_name = ?", user.ID, example.JobTitle, example.CompanyName).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&example).Error; err != nil {
			log.Fatal("could not create example job application: ", err)
		}
	}
	log.Println("Seeded example job applications")
}

func seedModels(db *gorm.DB) {
	models := []model.AIModel{
		{
			DisplayName:      "Gemini Flash",
			ModelName:        "gemini-2.5-flash",
			APIProvider:      model.ProviderGoogleGemini,
			APIKeyName:       "GEMINI_API_KEY",
			IsActive:         true,
			LoginRequired:    false,
			ResponseTimeInfo: "Fast",
			Description:      "Google's fast general-purpose model.",
		},
		{
			DisplayName:      "Deepseek",
			ModelName:        "deepseek/deepseek-r1-0528:free",
			APIProvider:      model.ProviderOpenRouter,
			APIKeyName:       "OPENROUTER_API_KEY",
			IsActive:         true,
			LoginRequired:    true,
			DailyLimit:       20,
			ResponseTimeInfo: "5-10 seconds",
			Description:      "Reasoning model served through OpenRouter. Requires an account.",
		},
	}

	for _, m := range models {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "display_name"}},
			DoNothing: true,
		}).Create(&m).Error
		if err != nil {
			log.Fatal("could not create model configuration: ", err)
		}
	}
	log.Println("Seeded model configurations")
}
