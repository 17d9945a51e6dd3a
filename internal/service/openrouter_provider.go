package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient calls OpenRouter's chat completion endpoint with the
// prompt as a single user-role message.
type OpenRouterClient struct {
	BaseURL string
	http    *resty.Client
}

func NewOpenRouterClient() *OpenRouterClient {
	return &OpenRouterClient{
		BaseURL: openRouterBaseURL,
		http:    resty.New(),
	}
}

func (c *OpenRouterClient) Generate(ctx context.Context, apiKey, modelName, prompt string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": modelName,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(c.BaseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter: request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter: unexpected status %s: %s", resp.Status(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("openrouter: no completion in response")
	}
	return content, nil
}
