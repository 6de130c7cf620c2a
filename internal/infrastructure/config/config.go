package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Logging  LogConfig
	Pipeline PipelineConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// PipelineConfig holds pipeline demo configuration.
type PipelineConfig struct {
	FetchLatency time.Duration `envconfig:"PIPELINE_FETCH_LATENCY" default:"100ms"`
	LogCapacity  int           `envconfig:"PIPELINE_LOG_CAPACITY" default:"100"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Pipeline: PipelineConfig{
			FetchLatency: 100 * time.Millisecond,
			LogCapacity:  100,
		},
	}
}
