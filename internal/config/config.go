// Package config handles gateway configuration from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the gateway process.
type Config struct {
	Port          string
	Env           string
	UpstreamURL   string
	UpstreamKey   string
	AllowedOrigin string
	RedisAddr     string
	DatabaseURL   string

	AssistantURL   string
	AssistantKey   string
	AssistantModel string
}

// FromEnv reads configuration from the environment, loading a .env file
// first if one is present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:           envOrDefault("PORT", "5000"),
		Env:            envOrDefault("ENV", "development"),
		UpstreamURL:    envOrDefault("UPSTREAM_URL", "https://ai-hub.cryptobriefing.com"),
		UpstreamKey:    os.Getenv("CRYPTO_API_KEY"),
		AllowedOrigin:  os.Getenv("ALLOWED_ORIGIN"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AssistantURL:   envOrDefault("ASSISTANT_URL", "https://api.perplexity.ai"),
		AssistantKey:   os.Getenv("ASSISTANT_API_KEY"),
		AssistantModel: envOrDefault("ASSISTANT_MODEL", "llama-3.1-sonar-small-128k-online"),
	}

	if cfg.UpstreamKey == "" {
		return Config{}, fmt.Errorf("CRYPTO_API_KEY is required")
	}

	// Browser origin differs between development and production deployments.
	if cfg.AllowedOrigin == "" {
		if cfg.Env == "production" {
			cfg.AllowedOrigin = "https://gloria.news"
		} else {
			cfg.AllowedOrigin = "http://localhost:5173"
		}
	}

	return cfg, nil
}

func envOrDefault(key, d string) string {
	v := os.Getenv(key)
	if v == "" {
		return d
	}
	return v
}
