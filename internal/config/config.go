package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL        string
	APIVersion     string
	RequestTimeout time.Duration
	LogLevel       string
	SessionPath    string
	SessionKey     string
	PollInterval   time.Duration
}

func Load() (Config, error) {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:        getenvDefault("EVF_BASE_URL", "http://localhost:5000"),
		APIVersion:     getenvDefault("EVF_API_VERSION", "v2"),
		RequestTimeout: getenvDuration("EVF_REQUEST_TIMEOUT", 10*time.Second),
		LogLevel:       getenvDefault("EVF_LOG_LEVEL", "info"),
		SessionPath:    getenvDefault("EVF_SESSION_PATH", defaultSessionPath()),
		SessionKey:     strings.TrimSpace(os.Getenv("EVF_SESSION_KEY")),
		PollInterval:   getenvDuration("EVF_POLL_INTERVAL", time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base url is required")
	}
	switch c.APIVersion {
	case "v1", "v2":
	default:
		return fmt.Errorf("invalid api version: %s", c.APIVersion)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be > 0")
	}
	if c.PollInterval <= 0 {
		return errors.New("poll interval must be > 0")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventify-session"
	}
	return filepath.Join(home, ".eventify", "session")
}

func getenvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
