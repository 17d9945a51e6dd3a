package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRouterTestClient(t *testing.T, handler http.HandlerFunc) *OpenRouterClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOpenRouterClient()
	client.BaseURL = server.URL
	return client
}

func TestOpenRouterGenerate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	client := openRouterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/chat/completions", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"# John Doe\nResume body"}}]}`))
	})

	content, err := client.Generate(context.Background(), "sk-or-key", "deepseek/deepseek-r1", "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "# John Doe\nResume body", content)
	assert.Equal(t, "Bearer sk-or-key", gotAuth)
	assert.Equal(t, "deepseek/deepseek-r1", gotBody["model"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	message := messages[0].(map[string]any)
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "the prompt", message["content"])
}

func TestOpenRouterGenerateErrorStatus(t *testing.T) {
	client := openRouterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := client.Generate(context.Background(), "sk-or-key", "deepseek/deepseek-r1", "the prompt")
	assert.ErrorContains(t, err, "unexpected status")
}

func TestOpenRouterGenerateEmptyCompletion(t *testing.T) {
	client := openRouterTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Generate(context.Background(), "sk-or-key", "deepseek/deepseek-r1", "the prompt")
	assert.ErrorContains(t, err, "no completion")
}
