package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Provider exposes application configuration to the rest of the codebase.
// Handlers and modules depend on this interface rather than on the concrete
// environment-backed implementation, which keeps them trivial to test.
type Provider interface {
	// GetAPIBaseURL returns the base URL of the upstream franchise API.
	GetAPIBaseURL() string
	// GetAddr returns the listen address for the web server.
	GetAddr() string
	// GetSessionSecret returns the secret used to sign session cookies.
	GetSessionSecret() string
	// GetStateDir returns the directory holding the durable preference store.
	GetStateDir() string
	// GetLogFormat returns "text" or "json".
	GetLogFormat() string
}

// Config holds all configuration for the application, loaded from the
// environment.
type Config struct {
	APIBaseURL    string
	Addr          string
	SessionSecret string
	StateDir      string
	LogFormat     string
}

// New loads configuration from environment variables. A .env file is
// honoured when present so local development does not need exported vars.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
		Addr:          getEnv("APP_ADDR", ":3000"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StateDir:      getEnv("STATE_DIR", "data/state"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAPIBaseURL() string    { return c.APIBaseURL }
func (c *Config) GetAddr() string          { return c.Addr }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetStateDir() string      { return c.StateDir }
func (c *Config) GetLogFormat() string     { return c.LogFormat }
