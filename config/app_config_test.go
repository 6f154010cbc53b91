package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
)

func TestGetValueFromEnvironmentVariable(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", GetValueFromEnvironmentVariable("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetValueFromEnvironmentVariable("SOME_MISSING_KEY", "fallback"))
}

func TestNewAppConfigDefaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestNewAppConfigOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "https://waitlist.example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "50")
	t.Setenv("RATE_LIMIT_WINDOW", "5m")
	t.Setenv("REQUEST_TIMEOUT", "10s")

	cfg := NewAppConfig()

	assert.Equal(t, "https://waitlist.example.com", cfg.BaseURL)
	assert.Equal(t, 50, cfg.RateLimitRequests)
	assert.Equal(t, 5*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestNewAppConfigIgnoresInvalidOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")
	t.Setenv("RATE_LIMIT_WINDOW", "-1m")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := NewAppConfig()

	assert.Equal(t, 100, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestNewMailerRequiresCredentials(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("missing credentials fail fast", func(t *testing.T) {
		t.Setenv("SMTP_USER", "")
		t.Setenv("SMTP_PASSWORD", "")

		_, err := NewMailer(logger)
		require.Error(t, err)
	})

	t.Run("complete credentials succeed with defaulted host and port", func(t *testing.T) {
		t.Setenv("SMTP_USER", "sender@example.com")
		t.Setenv("SMTP_PASSWORD", "app-password")

		mailer, err := NewMailer(logger)
		require.NoError(t, err)
		assert.NotNil(t, mailer)
	})
}

func TestMirrorConfig(t *testing.T) {
	t.Run("unset host means not configured", func(t *testing.T) {
		t.Setenv("REDIS_HOST", "")
		cfg := NewMirrorConfig()
		assert.False(t, cfg.IsConfigured())
	})

	t.Run("host from env", func(t *testing.T) {
		t.Setenv("REDIS_HOST", "redis.internal")
		t.Setenv("REDIS_PORT", "6380")

		cfg := NewMirrorConfig()
		assert.True(t, cfg.IsConfigured())
		assert.Equal(t, "redis.internal", cfg.Host)
		assert.Equal(t, "6380", cfg.Port)
	})

	t.Run("unconfigured mirror falls back to disabled", func(t *testing.T) {
		t.Setenv("REDIS_HOST", "")

		m := NewMirrorConfig().NewMirrorOrDisabled(log.NewLoggerWithJSONOutput())
		require.NotNil(t, m)
		assert.False(t, m.Enabled())
	})
}
