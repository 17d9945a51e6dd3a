package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/middleware"
	"github.com/jobpilot/resume-tracker/internal/usecase"
	"github.com/jobpilot/resume-tracker/internal/util"
)

// AIHandler serves the model catalog and the generation endpoint.
type AIHandler struct {
	uc *usecase.GenerationUsecase
}

func NewAIHandler(uc *usecase.GenerationUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(app *fiber.App, optionalAuth fiber.Handler) {
	app.Get("/models/", h.ListModels)
	app.Post("/generate/", middleware.RateLimiter(10, 1*time.Minute), optionalAuth, h.Generate)
}

func (h *AIHandler) ListModels(c *fiber.Ctx) error {
	data, hit, err := h.uc.ListModels(c.Context())
	if err != nil {
		return err
	}
	return util.CachedListResponse(c, hit, data)
}

func (h *AIHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	result, formErr, err := h.uc.Generate(c.Context(), req, middleware.CurrentUser(c))
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		// Provider and persistence failures alike surface as a single
		// generic unavailable message; detail stays in the server log.
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
