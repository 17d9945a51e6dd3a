package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/auth"
	"github.com/jobpilot/resume-tracker/internal/config"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserFinder struct {
	user *model.User
}

func (f *fakeUserFinder) FindByID(id uuid.UUID) (*model.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func issueToken(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := auth.CreateToken(user, config.LoadAuthConfig().JWTSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func newProtectedApp(users UserFinder) *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireAuth(users), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": CurrentUser(c).Username})
	})
	app.Get("/open", OptionalAuth(users), func(c *fiber.Ctx) error {
		if user := CurrentUser(c); user != nil {
			return c.JSON(fiber.Map{"username": user.Username})
		}
		return c.JSON(fiber.Map{"username": nil})
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice", IsActive: true}
	app := newProtectedApp(&fakeUserFinder{user: user})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice", IsActive: true}
	app := newProtectedApp(&fakeUserFinder{user: user})

	for _, header := range []string{
		"Bearer garbage",
		"Token " + issueToken(t, user),
		"Bearer ",
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestRequireAuthRejectsDisabledAccount(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: model.AnonymousUsername, IsActive: false}
	app := newProtectedApp(&fakeUserFinder{user: user})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuth(t *testing.T) {
	user := &model.User{ID: uuid.New(), Username: "alice", IsActive: true}
	app := newProtectedApp(&fakeUserFinder{user: user})

	// Anonymous requests pass through.
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Authenticated requests carry the account.
	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, user))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
