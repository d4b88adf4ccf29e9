package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes read-only access to the application configuration.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetPublicDir() string
	GetLogFormat() string
	GetLogLevel() string
	GetRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	Addr       string `validate:"required"`
	AppBaseURL string `validate:"required,url"`
	PublicDir  string `validate:"required"`
	LogFormat  string `validate:"oneof=text json"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	RateLimit  int    `validate:"gte=0"`
}

// Load reads configuration from the environment, applying defaults for unset
// variables, and validates the result.
func Load() (*Config, error) {
	rateLimit := 10
	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", raw, err)
		}
		rateLimit = n
	}

	cfg := &Config{
		Addr:       getEnv("APP_ADDR", ":8080"),
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:8080"),
		PublicDir:  getEnv("PUBLIC_DIR", "web/public"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		LogLevel:   getEnv("LOG_LEVEL", "debug"),
		RateLimit:  rateLimit,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// New loads configuration from a .env file (if any) and the environment.
// It terminates the process when the configuration is invalid.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAddr() string       { return c.Addr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetPublicDir() string  { return c.PublicDir }
func (c *Config) GetLogFormat() string  { return c.LogFormat }
func (c *Config) GetLogLevel() string   { return c.LogLevel }
func (c *Config) GetRateLimit() int     { return c.RateLimit }
