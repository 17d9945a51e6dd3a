package util

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// FormError carries field-level validation failures, rendered as a 400
// response whose body maps field names to messages.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// FieldError builds a FormError for a single failing field.
func FieldError(field, message string) *FormError {
	return NewFormError(message, map[string]string{field: message})
}

func ValidationErrorResponse(c *fiber.Ctx, formErr *FormError) error {
	return c.Status(fiber.StatusBadRequest).JSON(formErr.Errors)
}

func UnauthorizedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"detail": "Authentication credentials were not provided.",
	})
}

func NotFoundResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"detail": "Not found.",
	})
}

// CachedListResponse renders the body shape shared by the two cached
// listing endpoints: the hit/miss outcome rides in the body so clients and
// tests can observe it, plus a header for proxies.
func CachedListResponse(c *fiber.Ctx, hit bool, data any) error {
	status := "MISS (Response from database)"
	header := "MISS"
	if hit {
		status = "HIT (Response from Redis cache)"
		header = "HIT"
	}
	c.Set("X-Cache-Status", header)
	return c.JSON(fiber.Map{
		"cache_status": status,
		"data":         data,
	})
}
