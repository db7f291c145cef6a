// Package completion sends prompts to a remote text-generation service and
// returns the generated text. Every failure is reported as an error wrapping
// ErrServiceUnavailable; callers decide what the user sees.
package completion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/edgard/fitbot/internal/config"
)

// ErrServiceUnavailable is wrapped by every error a Client returns:
// transport failures, non-2xx statuses and malformed responses alike.
var ErrServiceUnavailable = errors.New("completion service unavailable")

// Kind selects which prompt, token limit and temperature a call uses.
type Kind int

const (
	// TrainingPlan asks for a full training plan.
	TrainingPlan Kind = iota + 1
	// ExerciseSuggestion asks for a few upper-body exercises.
	ExerciseSuggestion
)

func (k Kind) String() string {
	switch k {
	case TrainingPlan:
		return "training_plan"
	case ExerciseSuggestion:
		return "exercise_suggestion"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request is the body of one completion call.
type Request struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// Prompts maps each Kind to the Request sent for it.
type Prompts map[Kind]Request

// NewPrompts builds the prompt table from configuration.
func NewPrompts(cfg config.PromptsConfig) Prompts {
	return Prompts{
		TrainingPlan:       fromConfig(cfg.TrainingPlan),
		ExerciseSuggestion: fromConfig(cfg.ExerciseSuggestion),
	}
}

func fromConfig(p config.PromptConfig) Request {
	return Request{Prompt: p.Text, MaxTokens: p.MaxTokens, Temperature: p.Temperature}
}

// Lookup returns the Request for kind.
func (p Prompts) Lookup(kind Kind) (Request, bool) {
	req, ok := p[kind]
	return req, ok
}

// Client performs a single completion call.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New creates the Client selected by cfg.Provider.
func New(ctx context.Context, cfg config.CompletionConfig, log *slog.Logger) (Client, error) {
	var (
		client Client
		err    error
	)
	switch cfg.Provider {
	case "", "http":
		client, err = NewHTTPClient(cfg, log)
	case "gemini":
		client, err = NewGeminiClient(ctx, cfg, log)
	case "openai":
		client, err = NewOpenAIClient(cfg, log)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
