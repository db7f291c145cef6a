package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"

	"github.com/edgard/fitbot/internal/config"
)

// GeminiClient serves completion requests with Google's Gemini API.
type GeminiClient struct {
	genaiClient *genai.Client
	model       string
	log         *slog.Logger
}

// NewGeminiClient creates a GeminiClient for cfg.Model authenticated with cfg.APIKey.
func NewGeminiClient(ctx context.Context, cfg config.CompletionConfig, log *slog.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini model is required")
	}
	if log == nil {
		log = slog.Default()
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.GeminiBaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL}
	}

	gi, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger := log.With("component", "completion_gemini")
	logger.Info("Gemini client initialized successfully", "model", cfg.Model)
	return &GeminiClient{
		genaiClient: gi,
		model:       cfg.Model,
		log:         logger,
	}, nil
}

// Complete sends req as a single user turn and returns the first candidate's text.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	c.log.DebugContext(ctx, "Sending completion request", "model", c.model, "max_tokens", req.MaxTokens, "temperature", req.Temperature)

	temperature := float32(req.Temperature)
	contentCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxTokens),
	}
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, contentCfg)
	if err != nil {
		return "", unavailable(fmt.Errorf("gemini API call failed: %w", err))
	}

	text, err := extractText(resp)
	if err != nil {
		return "", unavailable(err)
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", errors.New("gemini returned no response")
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		reason := string(fb.BlockReason)
		if fb.BlockReasonMessage != "" {
			reason = fb.BlockReasonMessage
		}
		return "", fmt.Errorf("gemini blocked the prompt: %s", reason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		finishReason := "unknown"
		if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason != "" {
			finishReason = string(resp.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("gemini returned no content, finish reason: %s", finishReason)
	}

	return resp.Text(), nil
}
