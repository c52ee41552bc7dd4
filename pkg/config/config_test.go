package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.WB.StatisticsBaseURL != "https://statistics-api.wildberries.ru" {
		t.Errorf("Unexpected statistics base URL: %s", cfg.WB.StatisticsBaseURL)
	}

	if cfg.WB.Timeout != 60*time.Second {
		t.Errorf("Expected WB timeout 60s, got %v", cfg.WB.Timeout)
	}

	if cfg.WB.RequestsPerMinute != 50 {
		t.Errorf("Expected 50 requests per minute, got %d", cfg.WB.RequestsPerMinute)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("WB_API_KEY", "token-123")
	os.Setenv("WB_STATISTICS_BASE_URL", "http://localhost:9999")
	os.Setenv("WB_REQUESTS_PER_MINUTE", "120")
	os.Setenv("LOG_LEVEL", "info")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("WB_API_KEY")
		os.Unsetenv("WB_STATISTICS_BASE_URL")
		os.Unsetenv("WB_REQUESTS_PER_MINUTE")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.WB.APIKey != "token-123" {
		t.Errorf("Expected WB API key to be token-123, got %s", cfg.WB.APIKey)
	}

	if cfg.WB.StatisticsBaseURL != "http://localhost:9999" {
		t.Errorf("Unexpected statistics base URL: %s", cfg.WB.StatisticsBaseURL)
	}

	if cfg.WB.RequestsPerMinute != 120 {
		t.Errorf("Expected 120 requests per minute, got %d", cfg.WB.RequestsPerMinute)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}
}

func TestValidateEnv(t *testing.T) {
	os.Setenv("ENV", "invalid-env")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for invalid ENV")
	}
}

func TestValidateRequestsPerMinute(t *testing.T) {
	os.Setenv("WB_REQUESTS_PER_MINUTE", "-5")
	defer os.Unsetenv("WB_REQUESTS_PER_MINUTE")

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for negative WB_REQUESTS_PER_MINUTE")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "90s")
	defer os.Unsetenv("TEST_DURATION")

	if got := getEnvAsDuration("TEST_DURATION", "60s"); got != 90*time.Second {
		t.Errorf("Expected 90s, got %v", got)
	}

	if got := getEnvAsDuration("TEST_DURATION_MISSING", "60s"); got != 60*time.Second {
		t.Errorf("Expected default 60s, got %v", got)
	}

	os.Setenv("TEST_DURATION", "not-a-duration")
	if got := getEnvAsDuration("TEST_DURATION", "60s"); got != 60*time.Second {
		t.Errorf("Expected fallback 60s for malformed value, got %v", got)
	}
}
