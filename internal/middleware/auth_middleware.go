package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/auth"
	"github.com/jobpilot/resume-tracker/internal/config"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/util"
)

const userLocalsKey = "current_user"

// UserFinder loads the account a token refers to.
type UserFinder interface {
	FindByID(id uuid.UUID) (*model.User, error)
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := resolveUser(c, users)
		if user == nil {
			return util.UnauthorizedResponse(c)
		}
		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// OptionalAuth attaches the caller's account when a valid bearer token is
// present and lets anonymous requests through untouched.
func OptionalAuth(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user := resolveUser(c, users); user != nil {
			c.Locals(userLocalsKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil for anonymous
// requests.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(userLocalsKey).(*model.User)
	return user
}

func resolveUser(c *fiber.Ctx, users UserFinder) *model.User {
	header := c.Get(fiber.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil
	}

	userID, err := auth.ParseToken(tokenString, config.LoadAuthConfig().JWTSecret)
	if err != nil {
		return nil
	}

	user, err := users.FindByID(userID)
	if err != nil || !user.IsActive {
		return nil
	}
	return user
}
