package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/middleware"
	"github.com/jobpilot/resume-tracker/internal/usecase"
	"github.com/jobpilot/resume-tracker/internal/util"
	"gorm.io/gorm"
)

type JobApplicationHandler struct {
	uc *usecase.JobApplicationUsecase
}

func NewJobApplicationHandler(uc *usecase.JobApplicationUsecase) *JobApplicationHandler {
	return &JobApplicationHandler{uc: uc}
}

func (h *JobApplicationHandler) RegisterRoutes(app *fiber.App, requireAuth fiber.Handler) {
	app.Get("/example-job-applications/", h.ListExamples)

	group := app.Group("/job-applications", requireAuth)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}

func (h *JobApplicationHandler) ListExamples(c *fiber.Ctx) error {
	data, hit, err := h.uc.ListExamples(c.Context())
	if err != nil {
		return err
	}
	return util.CachedListResponse(c, hit, data)
}

func (h *JobApplicationHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	apps, err := h.uc.List(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

func (h *JobApplicationHandler) Create(c *fiber.Ctx) error {
	var req dto.JobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	user := middleware.CurrentUser(c)
	app, formErr, err := h.uc.Create(user.ID, req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(app)
}

func (h *JobApplicationHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NotFoundResponse(c)
	}

	user := middleware.CurrentUser(c)
	app, err := h.uc.Get(id, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundResponse(c)
		}
		return err
	}
	return c.JSON(app)
}

func (h *JobApplicationHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NotFoundResponse(c)
	}

	var req dto.JobApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	user := middleware.CurrentUser(c)
	app, formErr, err := h.uc.Update(id, user.ID, req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundResponse(c)
		}
		return err
	}
	return c.JSON(app)
}

func (h *JobApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NotFoundResponse(c)
	}

	user := middleware.CurrentUser(c)
	if err := h.uc.Delete(id, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundResponse(c)
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
