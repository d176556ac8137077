package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "ASSETS_DIR", "METRICS_ENABLED", "DATABASE_PATH",
	"ADMIN_TOKEN", "HASH_SALT", "SESSION_TTL", "SESSION_SWEEP_INTERVAL",
	"SESSION_MAX", "COOKIE_SECURE", "SHUTDOWN_TIMEOUT",
}

// clearConfigEnv unsets every config key for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "./public", cfg.AssetsDir)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "portfolio.db", cfg.DatabasePath)
	assert.Empty(t, cfg.AdminToken)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 10000, cfg.MaxSessions)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ADMIN_TOKEN", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, "secret", cfg.AdminToken)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"GIN_MODE":        "loud",
		"SESSION_TTL":     "soon",
		"METRICS_ENABLED": "maybe",
		"SESSION_MAX":     "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(key, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:          "8080",
		GinMode:       "test",
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
		MaxSessions:   10,
		DatabasePath:  "x.db",
	}
	require.NoError(t, valid.validate())

	noTTL := valid
	noTTL.SessionTTL = 0
	assert.Error(t, noTTL.validate())

	noCap := valid
	noCap.MaxSessions = 0
	assert.Error(t, noCap.validate())

	noDB := valid
	noDB.MetricsEnabled = true
	noDB.DatabasePath = ""
	assert.Error(t, noDB.validate())

	noDB.MetricsEnabled = false
	assert.NoError(t, noDB.validate())
}
