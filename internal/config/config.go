// Package config provides configuration loading, validation, and defaults
// for the fitness bot. Values come from built-in defaults, an optional YAML
// file, a .env file and the process environment, in that order of precedence.
package config

import (
	"errors"
	"time"

	"github.com/go-telegram/bot/models"
)

// ErrConfiguration is wrapped by every error returned from LoadConfig.
var ErrConfiguration = errors.New("configuration error")

// Config holds the complete application configuration.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Completion CompletionConfig `mapstructure:"completion"`
	Messages   MessagesConfig   `mapstructure:"messages"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
}

// LoggerConfig controls the slog handler built at startup.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds Telegram bot settings.
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`

	// BotInfo is filled from getMe at startup, never from the file.
	BotInfo *models.User `mapstructure:"-"`
}

// CompletionConfig describes the remote text-generation backend.
type CompletionConfig struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=http gemini openai"`
	URL      string `mapstructure:"url"      validate:"required_if=Provider http,omitempty,url"`
	APIKey   string `mapstructure:"api_key"  validate:"required"`

	// Model and GeminiBaseURL are only read by the gemini provider.
	Model         string `mapstructure:"model"           validate:"required_if=Provider gemini"`
	GeminiBaseURL string `mapstructure:"gemini_base_url" validate:"omitempty,url"`

	// OpenAIModel and OpenAIBaseURL are only read by the openai provider.
	// An empty base URL keeps the SDK default.
	OpenAIModel   string `mapstructure:"openai_model"    validate:"required_if=Provider openai"`
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`

	// Timeout bounds one completion call. Zero leaves the transport default.
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0,max=10m"`

	Prompts PromptsConfig `mapstructure:"prompts"`
}

// PromptsConfig holds one prompt definition per prompt kind.
type PromptsConfig struct {
	TrainingPlan       PromptConfig `mapstructure:"training_plan"`
	ExerciseSuggestion PromptConfig `mapstructure:"exercise_suggestion"`
}

// PromptConfig is the text and sampling parameters sent for one prompt kind.
type PromptConfig struct {
	Text        string  `mapstructure:"text"        validate:"required"`
	MaxTokens   int     `mapstructure:"max_tokens"  validate:"min=1,max=4096"`
	Temperature float64 `mapstructure:"temperature" validate:"min=0,max=2"`
}

// MessagesConfig holds every fixed reply the bot can send.
type MessagesConfig struct {
	Start         string `mapstructure:"start"          validate:"required"`
	Help          string `mapstructure:"help"           validate:"required"`
	Food          string `mapstructure:"food"           validate:"required"`
	Greeting      string `mapstructure:"greeting"       validate:"required"`
	NotUnderstood string `mapstructure:"not_understood" validate:"required"`
	Fallback      string `mapstructure:"fallback"       validate:"required"`
}

// SchedulerConfig lists scheduled tasks by registry name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a task and sets its six-field cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
