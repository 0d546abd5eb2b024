package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	DatabaseDriver string
	DatabaseURL    string

	RedisURL     string
	CacheEnabled bool
	CacheTTL     time.Duration

	QuestionBankPath string
	SuggestionsPath  string
	StaticDir        string
	CORSOrigins      []string

	Events EventConfig
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getEnv("DATABASE_URL", "assessment.db"),

		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		CacheEnabled: getBoolEnv("CACHE_ENABLED", false),
		CacheTTL:     getDurationEnv("CACHE_TTL", 5*time.Minute),

		QuestionBankPath: getEnv("QUESTION_BANK_PATH", ""),
		SuggestionsPath:  getEnv("SUGGESTIONS_PATH", ""),
		StaticDir:        getEnv("STATIC_DIR", ""),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),

		Events: EventConfig{
			Enabled:      getBoolEnv("EVENTS_ENABLED", false),
			Publisher:    getEnv("EVENTS_PUBLISHER", "channel"),
			KafkaBrokers: getEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:        getEnv("EVENTS_TOPIC", "assessment_events"),
		},
	}, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
