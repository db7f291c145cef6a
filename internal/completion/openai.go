package completion

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/edgard/fitbot/internal/config"
)

// OpenAIClient calls the OpenAI legacy completions API through the go-openai SDK.
type OpenAIClient struct {
	openAIClient *openai.Client
	model        string
	log          *slog.Logger
}

// NewOpenAIClient creates an OpenAIClient for cfg.OpenAIModel authenticated with cfg.APIKey.
func NewOpenAIClient(cfg config.CompletionConfig, log *slog.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	if cfg.OpenAIModel == "" {
		return nil, errors.New("openai model is required")
	}
	if log == nil {
		log = slog.Default()
	}

	openAICfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.OpenAIBaseURL != "" {
		openAICfg.BaseURL = cfg.OpenAIBaseURL
	}
	openAICfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIClient{
		openAIClient: openai.NewClientWithConfig(openAICfg),
		model:        cfg.OpenAIModel,
		log:          log.With("component", "completion_openai"),
	}, nil
}

// Complete returns the text of the first choice unchanged.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	c.log.DebugContext(ctx, "Sending completion request", "model", c.model, "max_tokens", req.MaxTokens)

	resp, err := c.openAIClient.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", unavailable(err)
	}
	if len(resp.Choices) == 0 {
		return "", unavailable(errors.New("response has no choices"))
	}

	return resp.Choices[0].Text, nil
}
