package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "APP_BASE_URL", "PUBLIC_DIR", "LOG_FORMAT", "LOG_LEVEL", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetAddr())
	assert.Equal(t, "http://localhost:8080", cfg.GetAppBaseURL())
	assert.Equal(t, "web/public", cfg.GetPublicDir())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, 10, cfg.GetRateLimit())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("APP_BASE_URL", "https://foodgram.example")
	t.Setenv("PUBLIC_DIR", "/srv/public")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "https://foodgram.example", cfg.AppBaseURL)
	assert.Equal(t, "/srv/public", cfg.PublicDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 0, cfg.RateLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown log format", key: "LOG_FORMAT", val: "xml"},
		{name: "unknown log level", key: "LOG_LEVEL", val: "trace"},
		{name: "base url is not a url", key: "APP_BASE_URL", val: "not a url"},
		{name: "negative rate limit", key: "RATE_LIMIT", val: "-1"},
		{name: "non-numeric rate limit", key: "RATE_LIMIT", val: "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
