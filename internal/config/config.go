// Package config loads runtime settings from an optional config file and
// FAMILYHUB_* environment variables, with environment winning.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type StorageConfig struct {
	// Path of the SQLite preference database. Empty selects the in-memory
	// store, which forgets everything on exit.
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads familyhub.yaml from the working directory when present, then
// applies FAMILYHUB_* overrides (FAMILYHUB_API_BASE_URL, FAMILYHUB_LOG_LEVEL,
// ...).
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("familyhub")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("storage.path", "familyhub.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("FAMILYHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.API.BaseURL == "" {
		return Config{}, fmt.Errorf("api.base_url must not be empty")
	}
	return cfg, nil
}
