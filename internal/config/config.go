package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultLanguages is the language list queried when none is configured.
var DefaultLanguages = []string{
	"Python",
	"Java",
	"C#",
	"PHP",
	"Go",
	"JavaScript",
	"VBA",
	"1С",
	"SQL",
}

// Config holds all configuration for the application.
type Config struct {
	Languages  []string `validate:"required,min=1,dive,required"`
	HeadHunter HeadHunterConfig
	SuperJob   SuperJobConfig
	PageSize   int           `validate:"required,min=1,max=100"`
	Timeout    time.Duration `validate:"required"`
}

// HeadHunterConfig holds HeadHunter API configuration.
type HeadHunterConfig struct {
	BaseURL string `validate:"required,url"`
	Area    int    `validate:"min=0"`
}

// SuperJobConfig holds SuperJob API configuration. The secret is required:
// SuperJob rejects unauthenticated search calls, so an empty credential is
// a configuration error rather than something to discover mid-run.
type SuperJobConfig struct {
	BaseURL string `validate:"required,url"`
	Secret  string `validate:"required"`
	Town    int    `validate:"min=0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Languages: getListEnv("LANGUAGES", DefaultLanguages),
		HeadHunter: HeadHunterConfig{
			BaseURL: getEnv("HH_BASE_URL", "https://api.hh.ru/vacancies"),
			Area:    getIntEnv("HH_AREA", 1),
		},
		SuperJob: SuperJobConfig{
			BaseURL: getEnv("SJ_BASE_URL", "https://api.superjob.ru/2.0/vacancies/"),
			Secret:  getEnv("SJ_SECRET", ""),
			Town:    getIntEnv("SJ_TOWN", 4),
		},
		PageSize: getIntEnv("PAGE_SIZE", 100),
		Timeout:  getDurationEnv("HTTP_TIMEOUT_SEC", 30) * time.Second,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate checks that required configuration fields are set.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Helper functions to get environment variables with defaults

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid duration value, using default", "key", key, "value", valueStr, "default", defaultValue)
		return time.Duration(defaultValue)
	}

	return time.Duration(value)
}

func getListEnv(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
