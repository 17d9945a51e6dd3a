package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobpilot/resume-tracker/internal/dto"
	"github.com/jobpilot/resume-tracker/internal/middleware"
	"github.com/jobpilot/resume-tracker/internal/usecase"
	"github.com/jobpilot/resume-tracker/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	group := app.Group("/auth", middleware.RateLimiter(20, 1*time.Minute))
	group.Post("/register/", h.Register)
	group.Post("/login/", h.Login)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	user, formErr, err := h.uc.Register(req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body."})
	}

	token, formErr, err := h.uc.Login(req)
	if formErr != nil {
		return util.ValidationErrorResponse(c, formErr)
	}
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid username or password."})
		}
		return err
	}
	return c.JSON(token)
}
