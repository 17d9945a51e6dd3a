package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jobpilot/resume-tracker/internal/model"
)

// ErrServiceUnavailable is the only error the generation path ever exposes
// to callers. The underlying cause (missing credential, unknown provider,
// upstream failure) is logged server-side and never returned verbatim.
var ErrServiceUnavailable = errors.New("An error occurred while communicating with the AI service.")

var (
	errUnsupportedProvider = errors.New("provider not supported")
	errMissingCredential   = errors.New("credential not configured")
)

// ProviderClient is implemented once per external AI service. Dispatch is a
// closed map keyed by the model configuration's provider tag; unknown tags
// are rejected rather than falling through.
type ProviderClient interface {
	Generate(ctx context.Context, apiKey, modelName, prompt string) (string, error)
}

type Gateway struct {
	providers map[model.APIProvider]ProviderClient
	timeout   time.Duration
}

func NewGateway(providers map[model.APIProvider]ProviderClient) *Gateway {
	return &Gateway{
		providers: providers,
		timeout:   90 * time.Second,
	}
}

// DefaultProviders wires the two supported backends.
func DefaultProviders() map[model.APIProvider]ProviderClient {
	return map[model.APIProvider]ProviderClient{
		model.ProviderGoogleGemini: NewGeminiClient(),
		model.ProviderOpenRouter:   NewOpenRouterClient(),
	}
}

// GenerateResumeContent resolves the model's credential, builds the resume
// prompt and dispatches to the configured provider. One request, one
// response, no retries; a slow upstream is bounded by the gateway timeout
// and by cancellation of the request context.
func (g *Gateway) GenerateResumeContent(ctx context.Context, cfg *model.AIModel, userInput string) (string, error) {
	apiKey, err := resolveAPIKey(cfg.APIKeyName)
	if err != nil {
		log.Printf("AI_SERVICE_ERROR: %s: %v", cfg.DisplayName, err)
		return "", ErrServiceUnavailable
	}

	client, ok := g.providers[cfg.APIProvider]
	if !ok {
		log.Printf("AI_SERVICE_ERROR: %s: %v: %q", cfg.DisplayName, errUnsupportedProvider, cfg.APIProvider)
		return "", ErrServiceUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := client.Generate(callCtx, apiKey, cfg.ModelName, BuildResumePrompt(userInput))
	if err != nil {
		log.Printf("AI_SERVICE_ERROR: failed to call %s: %v", cfg.DisplayName, err)
		return "", ErrServiceUnavailable
	}
	return content, nil
}

// resolveAPIKey reads the credential named by the model configuration from
// the process environment. Values left at a "placeholder" default by the
// deployment are treated the same as absent ones.
func resolveAPIKey(keyName string) (string, error) {
	apiKey := os.Getenv(keyName)
	if apiKey == "" || strings.HasPrefix(apiKey, "placeholder") {
		return "", fmt.Errorf("%w: API key %q is not set in the environment", errMissingCredential, keyName)
	}
	return apiKey, nil
}
