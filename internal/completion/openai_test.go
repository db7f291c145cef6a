package completion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgard/fitbot/internal/config"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewOpenAIClient(config.CompletionConfig{
		APIKey:        "sk-test",
		OpenAIModel:   config.DefaultOpenAIModel,
		OpenAIBaseURL: srv.URL + "/v1",
	}, discardLogger)
	require.NoError(t, err)
	return c
}

func TestOpenAIClientComplete(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)
	c := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"cmpl-1","object":"text_completion","choices":[{"text":" Plan O\n","index":0,"finish_reason":"stop"}]}`)
	})

	text, err := c.Complete(context.Background(), Request{Prompt: "plan", MaxTokens: 500, Temperature: 0.5})
	require.NoError(t, err)
	assert.Equal(t, " Plan O\n", text)

	assert.Equal(t, "/v1/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, config.DefaultOpenAIModel, gotBody["model"])
	assert.Equal(t, "plan", gotBody["prompt"])
	assert.Equal(t, float64(500), gotBody["max_tokens"])
	assert.Equal(t, 0.5, gotBody["temperature"])
}

func TestOpenAIClientFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"message":"boom","type":"server_error"}}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":{"message":"bad key","type":"invalid_request_error"}}`},
		{name: "no choices", status: http.StatusOK, body: `{"id":"cmpl-1","choices":[]}`},
		{name: "malformed json", status: http.StatusOK, body: `{"choices":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			text, err := c.Complete(context.Background(), Request{Prompt: "plan", MaxTokens: 10})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrServiceUnavailable)
			assert.Empty(t, text)
		})
	}
}

func TestNewOpenAIClientValidation(t *testing.T) {
	t.Parallel()

	_, err := NewOpenAIClient(config.CompletionConfig{OpenAIModel: "m"}, discardLogger)
	assert.Error(t, err)

	_, err = NewOpenAIClient(config.CompletionConfig{APIKey: "k"}, discardLogger)
	assert.Error(t, err)
}
