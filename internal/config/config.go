package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the catalog service.
type Config struct {
	DB             DBConfig
	Redis          RedisConfig
	Gemini         GeminiConfig
	Recommendation RecommendationConfig
	RateLimit      RateLimitConfig
	Port           string
	LogLevel       slog.Level
}

// DBConfig holds PostgreSQL configuration for the recommendation audit log.
type DBConfig struct {
	Enabled     bool
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SSLRootCert string
}

// DSN returns the PostgreSQL connection string.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.SSLRootCert != "" {
		dsn += fmt.Sprintf(" sslrootcert=%s", d.SSLRootCert)
	}
	return dsn
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GeminiConfig holds the generative API configuration.
// An empty APIKey puts the recommendation gateway in degraded mode.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RecommendationConfig tunes the recommendation gateway.
type RecommendationConfig struct {
	CacheTTL                time.Duration
	BreakerFailureThreshold uint32
	BreakerTimeout          time.Duration
}

// RateLimitConfig limits calls to the recommendation routes per client IP.
type RateLimitConfig struct {
	Max           int
	WindowSeconds int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	dbPort, err := getInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	geminiTimeout, err := getDuration("GEMINI_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("RECOMMENDATION_CACHE_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	breakerThreshold, err := getInt("BREAKER_FAILURE_THRESHOLD", 5)
	if err != nil {
		return nil, err
	}
	if breakerThreshold < 1 {
		return nil, fmt.Errorf("BREAKER_FAILURE_THRESHOLD must be positive, got %d", breakerThreshold)
	}
	breakerTimeout, err := getDuration("BREAKER_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	rateLimitMax, err := getInt("RATE_LIMIT_MAX", 30)
	if err != nil {
		return nil, err
	}
	rateLimitWindow, err := getInt("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	logLevel, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}

	cfg := &Config{
		DB: DBConfig{
			Enabled:     os.Getenv("DB_HOST") != "",
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        dbPort,
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "sflix_catalog"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SSLRootCert: getEnv("DB_SSLROOTCERT", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Gemini: GeminiConfig{
			APIKey:  apiKey,
			BaseURL: strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"), "/"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout: geminiTimeout,
		},
		Recommendation: RecommendationConfig{
			CacheTTL:                cacheTTL,
			BreakerFailureThreshold: uint32(breakerThreshold),
			BreakerTimeout:          breakerTimeout,
		},
		RateLimit: RateLimitConfig{
			Max:           rateLimitMax,
			WindowSeconds: rateLimitWindow,
		},
		Port:     getEnv("SERVER_PORT", "8080"),
		LogLevel: logLevel,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
