// Package config loads flashdeck settings from defaults, an optional YAML
// file and FLASHDECK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (FLASHDECK_ADAPTER, ...).
const EnvPrefix = "FLASHDECK"

// Config holds runtime settings.
type Config struct {
	// Adapter selects the slot implementation.
	Adapter string `mapstructure:"adapter" json:"adapter" validate:"required,oneof=fs sqlite memory"`
	// Path is the data directory (fs), database file or directory (sqlite).
	// Empty means the platform default.
	Path string `mapstructure:"path" json:"path"`
	// Key names the slot holding the collection.
	Key      string `mapstructure:"key" json:"key" validate:"required,excludesall=/\\"`
	LogLevel string `mapstructure:"log_level" json:"log_level" validate:"required,oneof=debug info warn error"`
	// DevSafety redirects writes to a temp dir under go run / go test.
	DevSafety bool `mapstructure:"dev_safety" json:"dev_safety"`
	ReadOnly  bool `mapstructure:"read_only" json:"read_only"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Adapter:   "fs",
		Key:       "flashcards",
		LogLevel:  "info",
		DevSafety: true,
	}
}

var validate = validator.New()

// Load reads configuration. When file is empty, flashdeck.yaml is looked
// up in the working directory and in $XDG_CONFIG_HOME/flashdeck (or
// ~/.config/flashdeck); a missing file is not an error. An explicit file
// must exist.
func Load(file string) (*Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("adapter", d.Adapter)
	v.SetDefault("path", d.Path)
	v.SetDefault("key", d.Key)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("dev_safety", d.DevSafety)
	v.SetDefault("read_only", d.ReadOnly)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("flashdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level. Unknown values mean info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flashdeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "flashdeck")
}
