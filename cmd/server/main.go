package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobpilot/resume-tracker/internal/cache"
	"github.com/jobpilot/resume-tracker/internal/config"
	"github.com/jobpilot/resume-tracker/internal/domain/fiber/handler"
	"github.com/jobpilot/resume-tracker/internal/middleware"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/repository"
	"github.com/jobpilot/resume-tracker/internal/service"
	"github.com/jobpilot/resume-tracker/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()
	store := ConnectCache()

	modelRepo := repository.NewAIModelRepository(db)
	userRepo := repository.NewUserRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	appRepo := repository.NewJobApplicationRepository(db)

	gateway := service.NewGateway(service.DefaultProviders())

	generationUC := usecase.NewGenerationUsecase(modelRepo, userRepo, resumeRepo, gateway, store)
	jobAppUC := usecase.NewJobApplicationUsecase(appRepo, store)
	resumeUC := usecase.NewResumeUsecase(resumeRepo)
	authUC := usecase.NewAuthUsecase(userRepo, config.LoadAuthConfig())

	requireAuth := middleware.RequireAuth(userRepo)
	optionalAuth := middleware.OptionalAuth(userRepo)

	handler.NewAIHandler(generationUC).RegisterRoutes(app, optionalAuth)
	handler.NewJobApplicationHandler(jobAppUC).RegisterRoutes(app, requireAuth)
	handler.NewResumeHandler(resumeUC).RegisterRoutes(app, requireAuth)
	handler.NewAuthHandler(authUC).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

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
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(&model.User{}, &model.AIModel{}, &model.Resume{}, &model.JobApplication{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

// ConnectCache wires the Redis-backed store for the read-through caches and
// quota counters.
func ConnectCache() cache.Store {
	redisConfig := config.LoadRedisConfig()
	client := redis.NewClient(&redis.Options{
		Addr:     redisConfig.Addr,
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})
	return cache.NewRedisStore(client)
}
