package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123456:telegram-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "123456:telegram-token", cfg.Telegram.Token)
	assert.Equal(t, "sk-test", cfg.Completion.APIKey)
	assert.Equal(t, DefaultLogLevel, cfg.Logger.Level)
	assert.Equal(t, DefaultCompletionProvider, cfg.Completion.Provider)
	assert.Equal(t, DefaultCompletionURL, cfg.Completion.URL)
	assert.Equal(t, DefaultCompletionTimeout, cfg.Completion.Timeout)

	assert.Equal(t, PromptConfig{
		Text:        DefaultTrainingPlanPrompt,
		MaxTokens:   500,
		Temperature: 0.7,
	}, cfg.Completion.Prompts.TrainingPlan)
	assert.Equal(t, PromptConfig{
		Text:        DefaultExercisePrompt,
		MaxTokens:   200,
		Temperature: 0.8,
	}, cfg.Completion.Prompts.ExerciseSuggestion)

	assert.Equal(t, DefaultMessages, cfg.Messages)

	require.Contains(t, cfg.Scheduler.Tasks, "commands_sync")
	assert.True(t, cfg.Scheduler.Tasks["commands_sync"].Enabled)
	assert.Equal(t, DefaultCommandsSyncSchedule, cfg.Scheduler.Tasks["commands_sync"].Schedule)
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("OPENAI_API_KEY", "")

	path := writeFile(t, "config.yaml", `
logger:
  level: debug
  json: true
telegram:
  token: file-token
completion:
  api_key: file-key
  url: http://localhost:8080/v1/completions
  timeout: 15s
  prompts:
    training_plan:
      text: Plan for a beginner.
      max_tokens: 300
      temperature: 0.5
messages:
  fallback: Try again later.
scheduler:
  tasks:
    commands_sync:
      enabled: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	assert.Equal(t, "file-token", cfg.Telegram.Token)
	assert.Equal(t, "file-key", cfg.Completion.APIKey)
	assert.Equal(t, "http://localhost:8080/v1/completions", cfg.Completion.URL)
	assert.Equal(t, 15*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, PromptConfig{Text: "Plan for a beginner.", MaxTokens: 300, Temperature: 0.5}, cfg.Completion.Prompts.TrainingPlan)
	assert.Equal(t, DefaultExercisePrompt, cfg.Completion.Prompts.ExerciseSuggestion.Text)
	assert.Equal(t, "Try again later.", cfg.Messages.Fallback)
	assert.Equal(t, DefaultMessages.Greeting, cfg.Messages.Greeting)
	assert.False(t, cfg.Scheduler.Tasks["commands_sync"].Enabled)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "env-token")
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("BOT_LOGGER_LEVEL", "warn")

	path := writeFile(t, "config.yaml", `
logger:
  level: debug
telegram:
  token: file-token
completion:
  api_key: file-key
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.Token)
	assert.Equal(t, "env-key", cfg.Completion.APIKey)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		yaml  string
		field string
	}{
		{
			name:  "missing bot token",
			env:   map[string]string{"TELEGRAM_TOKEN": "", "OPENAI_API_KEY": "key"},
			field: "Token",
		},
		{
			name:  "missing api key",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": ""},
			field: "APIKey",
		},
		{
			name:  "unknown provider",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": "key"},
			yaml:  "completion:\n  provider: carrier-pigeon\n",
			field: "Provider",
		},
		{
			name:  "temperature out of range",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": "key"},
			yaml:  "completion:\n  prompts:\n    exercise_suggestion:\n      temperature: 3.5\n",
			field: "Temperature",
		},
		{
			name:  "empty url for http provider",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": "key"},
			yaml:  "completion:\n  provider: http\n  url: \"\"\n",
			field: "URL",
		},
		{
			name:  "malformed url",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": "key"},
			yaml:  "completion:\n  provider: gemini\n  model: gemini-2.0-flash\n  url: not-a-url\n",
			field: "URL",
		},
		{
			name:  "invalid log level",
			env:   map[string]string{"TELEGRAM_TOKEN": "token", "OPENAI_API_KEY": "key"},
			yaml:  "logger:\n  level: verbose\n",
			field: "Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tt.yaml != "" {
				path = writeFile(t, "config.yaml", tt.yaml)
			}

			cfg, err := LoadConfig(path)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrConfiguration)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfigURLOnlyRequiredForHTTPProvider(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "gemini", yaml: "completion:\n  provider: gemini\n  model: gemini-2.0-flash\n  url: \"\"\n"},
		{name: "openai", yaml: "completion:\n  provider: openai\n  openai_model: gpt-4o-mini\n  url: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TELEGRAM_TOKEN", "token")
			t.Setenv("OPENAI_API_KEY", "key")

			cfg, err := LoadConfig(writeFile(t, "config.yaml", tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.name, cfg.Completion.Provider)
			assert.Empty(t, cfg.Completion.URL)
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("OPENAI_API_KEY", "key")

	path := writeFile(t, "config.yaml", "logger: [unterminated\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "FITBOT_DOTENV_PROBE"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	path := writeFile(t, ".env", key+"=from-dotenv\n")
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))

	// Existing variables win over the file.
	t.Setenv(key, "from-env")
	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-env", os.Getenv(key))

	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
