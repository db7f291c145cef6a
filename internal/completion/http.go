package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/edgard/fitbot/internal/config"
)

// textPath is the gjson path of the generated text in a completion response.
const textPath = "choices.0.text"

// maxResponseBytes caps the response body size. Larger bodies are rejected.
const maxResponseBytes = 4 << 20

// HTTPClient calls a completions endpoint that accepts
// {prompt, max_tokens, temperature} and answers {choices: [{text}]}.
type HTTPClient struct {
	httpClient *http.Client
	url        string
	token      string
	maxBody    int64
	log        *slog.Logger
}

// NewHTTPClient creates an HTTPClient for cfg.URL authenticated with cfg.APIKey.
func NewHTTPClient(cfg config.CompletionConfig, log *slog.Logger) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("completion URL is required")
	}
	if log == nil {
		log = slog.Default()
	}

	return &HTTPClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		token:      cfg.APIKey,
		maxBody:    maxResponseBytes,
		log:        log.With("component", "completion_http"),
	}, nil
}

// Complete posts req and returns choices[0].text unchanged.
func (c *HTTPClient) Complete(ctx context.Context, req Request) (string, error) {
	c.log.DebugContext(ctx, "Sending completion request", "max_tokens", req.MaxTokens, "temperature", req.Temperature)

	body, err := c.doRequest(ctx, req)
	if err != nil {
		return "", unavailable(err)
	}

	if !gjson.ValidBytes(body) {
		return "", unavailable(errors.New("response is not valid JSON"))
	}

	text := gjson.GetBytes(body, textPath)
	if text.Type != gjson.String {
		return "", unavailable(fmt.Errorf("response has no string at %s", textPath))
	}

	c.log.DebugContext(ctx, "Completion received", "text_length", len(text.Str))
	return text.Str, nil
}

// doRequest handles the HTTP request/response cycle and returns the raw body
// of a 2xx response.
func (c *HTTPClient) doRequest(ctx context.Context, body Request) ([]byte, error) {
	req, err := c.buildRequest(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// One byte past the cap tells an oversized body from one that fits exactly.
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	tooLarge := int64(len(data)) > c.maxBody

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if msg := gjson.GetBytes(data, "error.message"); !tooLarge && msg.Exists() {
			return nil, fmt.Errorf("API error with status %d: %s", resp.StatusCode, msg.String())
		}
		return nil, fmt.Errorf("API error with status %d", resp.StatusCode)
	}

	if tooLarge {
		return nil, fmt.Errorf("response too large: exceeds %d bytes", c.maxBody)
	}

	return data, nil
}

// buildRequest creates a new HTTP request with proper headers
func (c *HTTPClient) buildRequest(ctx context.Context, body Request) (*http.Request, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	return req, nil
}
