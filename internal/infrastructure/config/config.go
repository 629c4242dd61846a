package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Chat      ChatConfig
	Timeline  TimelineConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// CatalogConfig holds remote catalog service configuration.
type CatalogConfig struct {
	BaseURL  string        `envconfig:"CATALOG_URL" default:"https://pokeapi.co/api/v2/pokemon"`
	Timeout  time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	MaxNames int           `envconfig:"CATALOG_MAX_NAMES" default:"1000"`
}

// ChatConfig holds chat responder configuration.
type ChatConfig struct {
	ReplyDelay  time.Duration `envconfig:"CHAT_REPLY_DELAY" default:"1s"`
	RepliesFile string        `envconfig:"CHAT_REPLIES_FILE" default:""`
}

// TimelineConfig holds timeline store configuration.
type TimelineConfig struct {
	SeedFile string `envconfig:"TIMELINE_SEED_FILE" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
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
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Catalog: CatalogConfig{
			BaseURL:  "https://pokeapi.co/api/v2/pokemon",
			Timeout:  10 * time.Second,
			MaxNames: 1000,
		},
		Chat: ChatConfig{
			ReplyDelay: time.Second,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
