package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.DB.Enabled)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Recommendation.CacheTTL)
	assert.Equal(t, uint32(5), cfg.Recommendation.BreakerFailureThreshold)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_BASE_URL", "http://127.0.0.1:9999/v1beta/")
	t.Setenv("GEMINI_TIMEOUT", "3s")
	t.Setenv("RECOMMENDATION_CACHE_TTL", "0s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.DB.Enabled)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal port=6543")
	assert.Equal(t, "legacy-key", cfg.Gemini.APIKey)
	assert.Equal(t, "http://127.0.0.1:9999/v1beta", cfg.Gemini.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Gemini.Timeout)
	assert.Zero(t, cfg.Recommendation.CacheTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_GeminiKeyTakesPrecedence(t *testing.T) {
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Gemini.APIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "DB_PORT", "five"},
		{"bad timeout", "GEMINI_TIMEOUT", "soon"},
		{"bad ttl", "RECOMMENDATION_CACHE_TTL", "10"},
		{"zero threshold", "BREAKER_FAILURE_THRESHOLD", "0"},
		{"bad level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestDSN_WithRootCert(t *testing.T) {
	d := DBConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "verify-ca", SSLRootCert: "/ca.pem"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=verify-ca sslrootcert=/ca.pem", d.DSN())
}
