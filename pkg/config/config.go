package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Redis
	Redis RedisConfig

	// External APIs
	WB     WBConfig
	Gemini GeminiConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// WBConfig holds Wildberries seller API configuration.
// Each API family lives on its own host, so every base URL is
// configurable separately (and pointable at a stub server in tests).
type WBConfig struct {
	APIKey string

	StatisticsBaseURL string // statistics-api: stocks (v1), realization report (v5)
	ContentBaseURL    string // content-api: card details
	AdsBaseURL        string // advert-api: campaign list
	FeedbacksBaseURL  string // feedbacks-api: active + archived reviews
	SuppliersBaseURL  string // suppliers-api: category characteristics

	Timeout time.Duration

	// Pacing between paginated/batched statistics calls. The WB
	// statistics API throttles hard; 50/min ≈ one request per 1.2s.
	RequestsPerMinute int
}

// GeminiConfig holds the narration LLM configuration
type GeminiConfig struct {
	APIKey  string
	Model   string
	Enabled bool
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8090"),
		Env:  getEnv("ENV", "development"),

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
		},

		// External APIs
		WB: WBConfig{
			APIKey:            getEnv("WB_API_KEY", ""),
			StatisticsBaseURL: getEnv("WB_STATISTICS_BASE_URL", "https://statistics-api.wildberries.ru"),
			ContentBaseURL:    getEnv("WB_CONTENT_BASE_URL", "https://content-api.wildberries.ru"),
			AdsBaseURL:        getEnv("WB_ADS_BASE_URL", "https://advert-api.wildberries.ru"),
			FeedbacksBaseURL:  getEnv("WB_FEEDBACKS_BASE_URL", "https://feedbacks-api.wildberries.ru"),
			SuppliersBaseURL:  getEnv("WB_SUPPLIERS_BASE_URL", "https://suppliers-api.wildberries.ru"),
			Timeout:           getEnvAsDuration("WB_TIMEOUT", "60s"),
			RequestsPerMinute: getEnvAsInt("WB_REQUESTS_PER_MINUTE", 50),
		},

		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
			Enabled: getEnvAsBool("GEMINI_ENABLED", true),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.WB.RequestsPerMinute <= 0 {
		return fmt.Errorf("WB_REQUESTS_PER_MINUTE must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
			filepath.Join(exeDir, "..", "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
