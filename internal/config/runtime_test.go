package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	assert.Equal(t, time.Second, cfg.Timer.TickInterval)
	assert.Equal(t, 5*time.Minute, cfg.Timer.SleepThreshold)
	assert.Equal(t, 20*time.Second, cfg.Timer.RestDuration)
	assert.Equal(t, DefaultManifestURL, cfg.Update.ManifestURL)
	assert.Equal(t, 6*time.Hour, cfg.Update.CheckInterval)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Len(t, cfg.HTTP.RetryDelays, 3)
	assert.Equal(t, 500*time.Millisecond, cfg.Daemon.StartupWait)
	assert.Equal(t, 5*time.Second, cfg.Daemon.KillTimeout)
}

func TestGlobalInitialized(t *testing.T) {
	assert.NotNil(t, Global)
	assert.NotZero(t, Global.Timer.TickInterval)
}

func TestEnvOverrides(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	t.Setenv("RESTUP_TICK_INTERVAL", "100ms")
	t.Setenv("RESTUP_MANIFEST_URL", "https://example.com/latest.json")
	t.Setenv("RESTUP_HTTP_MAX_RETRIES", "5")
	t.Setenv("RESTUP_REST_DURATION", "45s")
	cfg.ReloadFromEnv()

	assert.Equal(t, 100*time.Millisecond, cfg.Timer.TickInterval)
	assert.Equal(t, "https://example.com/latest.json", cfg.Update.ManifestURL)
	assert.Equal(t, 5, cfg.HTTP.MaxRetries)
	assert.Equal(t, 45*time.Second, cfg.Timer.RestDuration)
}

func TestEnvOverridesIgnoreInvalid(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	t.Setenv("RESTUP_TICK_INTERVAL", "not-a-duration")
	t.Setenv("RESTUP_HTTP_MAX_RETRIES", "-2")
	t.Setenv("RESTUP_UPDATE_CHECK_INTERVAL", "0s")
	cfg.ReloadFromEnv()

	assert.Equal(t, time.Second, cfg.Timer.TickInterval)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
	assert.Equal(t, 6*time.Hour, cfg.Update.CheckInterval)
}

func TestReset(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.Timer.TickInterval = time.Minute
	cfg.HTTP.MaxRetries = 99

	cfg.Reset()

	assert.Equal(t, time.Second, cfg.Timer.TickInterval)
	assert.Equal(t, 3, cfg.HTTP.MaxRetries)
}
