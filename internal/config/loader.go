package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// EnvPrefix is prepended to every config key read from the environment,
// e.g. BOT_LOGGER_LEVEL for logger.level.
const EnvPrefix = "BOT"

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// envAliases maps config keys to the plain variable names operators already use.
var envAliases = map[string][]string{
	"telegram.token":     {"TELEGRAM_TOKEN", EnvPrefix + "_TELEGRAM_TOKEN"},
	"completion.api_key": {"OPENAI_API_KEY", EnvPrefix + "_COMPLETION_API_KEY"},
}

// LoadConfig loads and validates configuration from:
// 1. Default values
// 2. the YAML file at path (optional)
// 3. a .env file in the working directory (optional)
// 4. environment variables
func LoadConfig(path string) (*Config, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %w", ErrConfiguration, dotEnvFile, err)
	}

	v, err := newViper(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	slog.Debug("Configuration loaded",
		"path", path,
		"provider", cfg.Completion.Provider,
		"log_level", cfg.Logger.Level,
		"scheduled_tasks", len(cfg.Scheduler.Tasks))
	return cfg, nil
}

// Validate checks struct tags on the whole configuration tree.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// newViper builds a viper instance with defaults, the optional file at path,
// and environment bindings applied.
func newViper(path string) (*viper.Viper, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay, we'll use defaults
		slog.Info("Configuration file not found, using defaults and environment", "path", path)
	}

	return v, nil
}

// loadDotEnv exports variables from a dotenv file without overriding ones
// already set in the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return gotenv.Load(path)
}
