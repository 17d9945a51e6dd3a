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

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App, requireAuth fiber.Handler) {
	group := app.Group("/resumes", requireAuth)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	resumes, err := h.uc.List(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(resumes)
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	user := middleware.CurrentUser(c)
	resume, formErr, err := h.uc.Create(user, req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resume)
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NotFoundResponse(c)
	}

	user := middleware.CurrentUser(c)
	resume, err := h.uc.Get(id, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundResponse(c)
		}
		return err
	}
	return c.JSON(resume)
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.NotFoundResponse(c)
	}

	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	user := middleware.CurrentUser(c)
	resume, formErr, err := h.uc.Update(id, user.ID, req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundResponse(c)
		}
		return err
	}
	return c.JSON(resume)
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
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
