package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jobpilot/resume-tracker/internal/cache"
	"github.com/jobpilot/resume-tracker/internal/model"
	"github.com/jobpilot/resume-tracker/internal/service"
	"github.com/jobpilot/resume-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRegistry struct {
	models []model.AIModel
}

func (s *stubRegistry) FindActive() ([]model.AIModel, error) {
	var out []model.AIModel
	for _, m := range s.models {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubRegistry) FindActiveByDisplayName(name string) (*model.AIModel, error) {
	for i := range s.models {
		if s.models[i].IsActive && strings.EqualFold(s.models[i].DisplayName, name) {
			return &s.models[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type stubUsers struct {
	anon *model.User
}

func (s *stubUsers) Create(user *model.User) error { return nil }

func (s *stubUsers) FindByUsername(username string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) FindByID(id uuid.UUID) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsers) GetOrCreateAnonymous() (*model.User, error) {
	if s.anon == nil {
		s.anon = &model.User{ID: uuid.New(), Username: model.AnonymousUsername}
	}
	return s.anon, nil
}

type stubResumes struct {
	created []*model.Resume
}

func (s *stubResumes) Create(resume *model.Resume) error {
	resume.ID = uuid.New()
	s.created = append(s.created, resume)
	return nil
}

func (s *stubResumes) FindByUser(userID uuid.UUID) ([]model.Resume, error) { return nil, nil }

func (s *stubResumes) FindByIDAndUser(id, userID uuid.UUID) (*model.Resume, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResumes) Update(resume *model.Resume) error { return nil }

func (s *stubResumes) Delete(id, userID uuid.UUID) error { return gorm.ErrRecordNotFound }

type stubGateway struct {
	content string
	err     error
}

func (s *stubGateway) GenerateResumeContent(_ context.Context, _ *model.AIModel, _ string) (string, error) {
	return s.content, s.err
}

func passthroughAuth(c *fiber.Ctx) error { return c.Next() }

func newGenerateApp(gateway usecase.ResumeGenerator) (*fiber.App, *stubResumes) {
	registry := &stubRegistry{models: []model.AIModel{
		{ID: uuid.New(), DisplayName: "Test Model", Description: "For tests", ResponseTimeInfo: "Fast", IsActive: true},
	}}
	resumes := &stubResumes{}
	uc := usecase.NewGenerationUsecase(registry, &stubUsers{}, resumes, gateway, cache.NewMemoryStore())

	app := fiber.New()
	NewAIHandler(uc).RegisterRoutes(app, passthroughAuth)
	return app, resumes
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGenerateEndpoint(t *testing.T) {
	app, resumes := newGenerateApp(&stubGateway{content: "# Jane Doe\n\nExperienced engineer."})

	resp := postJSON(t, app, "/generate/", map[string]string{
		"model":      "Test Model",
		"user_input": strings.Repeat("x", 60),
		"title":      "My Resume",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["resume_id"])
	assert.Equal(t, "# Jane Doe\n\nExperienced engineer.", body["content"])

	require.Len(t, resumes.created, 1)
	assert.Equal(t, "My Resume", resumes.created[0].Title)
}

func TestGenerateEndpointShortInput(t *testing.T) {
	app, resumes := newGenerateApp(&stubGateway{content: "# Resume"})

	resp := postJSON(t, app, "/generate/", map[string]string{
		"model":      "Test Model",
		"user_input": "ten chars!",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "user_input")
	assert.Empty(t, resumes.created)
}

func TestGenerateEndpointProviderFailure(t *testing.T) {
	app, resumes := newGenerateApp(&stubGateway{err: service.ErrServiceUnavailable})

	resp := postJSON(t, app, "/generate/", map[string]string{
		"model":      "Test Model",
		"user_input": strings.Repeat("x", 60),
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, service.ErrServiceUnavailable.Error(), body["error"])
	assert.Empty(t, resumes.created, "no resume row on a failed call")
}

func TestListModelsEndpointCacheRoundTrip(t *testing.T) {
	app, _ := newGenerateApp(&stubGateway{})

	get := func() (*http.Response, []byte) {
		req := httptest.NewRequest(http.MethodGet, "/models/", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, raw
	}

	first, firstBody := get()
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, "MISS", first.Header.Get("X-Cache-Status"))
	assert.Contains(t, string(firstBody), "MISS (Response from database)")
	assert.Contains(t, string(firstBody), "Test Model")

	second, secondBody := get()
	assert.Equal(t, "HIT", second.Header.Get("X-Cache-Status"))
	assert.Contains(t, string(secondBody), "HIT (Response from Redis cache)")

	// Payloads are identical apart from the cache status marker.
	var firstParsed, secondParsed map[string]any
	require.NoError(t, json.Unmarshal(firstBody, &firstParsed))
	require.NoError(t, json.Unmarshal(secondBody, &secondParsed))
	assert.Equal(t, firstParsed["data"], secondParsed["data"])
}
