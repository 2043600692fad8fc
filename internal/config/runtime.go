// Package config provides centralized configuration for restup runtime values.
package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultManifestURL is the release manifest polled by the update checker.
const DefaultManifestURL = "https://restup.dev/releases/latest.json"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Timer configuration
	Timer TimerConfig

	// Update checker configuration
	Update UpdateConfig

	// HTTP client configuration
	HTTP HTTPConfig

	// Daemon configuration
	Daemon DaemonConfig
}

// TimerConfig holds reminder timer configuration.
type TimerConfig struct {
	// TickInterval is how often running timers are decremented.
	// Default: 1s
	TickInterval time.Duration

	// SleepThreshold is the wall-clock gap between ticks that indicates the
	// system was asleep. Running timers restart instead of fast-forwarding.
	// Default: 5m
	SleepThreshold time.Duration

	// RestDuration is how long the full-screen overlay stays up before
	// auto-dismissing.
	// Default: 20s
	RestDuration time.Duration
}

// UpdateConfig holds update checker configuration.
type UpdateConfig struct {
	// ManifestURL is the release manifest location.
	ManifestURL string

	// CheckInterval is how often the daemon checks for updates.
	// Default: 6h
	CheckInterval time.Duration
}

// HTTPConfig holds HTTP client configuration.
type HTTPConfig struct {
	// Timeout is the default HTTP request timeout.
	// Default: 30s
	Timeout time.Duration

	// MaxRetries is the maximum number of webhook retry attempts.
	// Default: 3
	MaxRetries int

	// RetryDelays are the delays between webhook retry attempts.
	// Default: [0s, 5s, 30s]
	RetryDelays []time.Duration
}

// DaemonConfig holds daemon-related configuration.
type DaemonConfig struct {
	// StartupWait is the time to wait for the daemon to start before checking status.
	// Default: 500ms
	StartupWait time.Duration

	// KillTimeout is the timeout for graceful shutdown before force kill.
	// Default: 5s
	KillTimeout time.Duration
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Timer: TimerConfig{
			TickInterval:   time.Second,
			SleepThreshold: 5 * time.Minute,
			RestDuration:   20 * time.Second,
		},
		Update: UpdateConfig{
			ManifestURL:   DefaultManifestURL,
			CheckInterval: 6 * time.Hour,
		},
		HTTP: HTTPConfig{
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			RetryDelays: []time.Duration{
				0,                // Immediate first attempt
				5 * time.Second,  // Retry after 5s
				30 * time.Second, // Retry after 30s
			},
		},
		Daemon: DaemonConfig{
			StartupWait: 500 * time.Millisecond,
			KillTimeout: 5 * time.Second,
		},
	}
}

// Global holds the global runtime configuration instance.
// It is initialized with defaults and can be overridden via environment variables.
var Global = initGlobal()

// initGlobal initializes the global config with defaults and environment overrides.
func initGlobal() *RuntimeConfig {
	cfg := DefaultRuntimeConfig()
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Timer configuration
	if v := os.Getenv("RESTUP_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timer.TickInterval = d
		}
	}
	if v := os.Getenv("RESTUP_SLEEP_THRESHOLD"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timer.SleepThreshold = d
		}
	}
	if v := os.Getenv("RESTUP_REST_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timer.RestDuration = d
		}
	}

	// Update checker configuration
	if v := os.Getenv("RESTUP_MANIFEST_URL"); v != "" {
		c.Update.ManifestURL = v
	}
	if v := os.Getenv("RESTUP_UPDATE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Update.CheckInterval = d
		}
	}

	// HTTP configuration
	if v := os.Getenv("RESTUP_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.HTTP.Timeout = d
		}
	}
	if v := os.Getenv("RESTUP_HTTP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.HTTP.MaxRetries = n
		}
	}

	// Daemon configuration
	if v := os.Getenv("RESTUP_DAEMON_STARTUP_WAIT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Daemon.StartupWait = d
		}
	}
	if v := os.Getenv("RESTUP_DAEMON_KILL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Daemon.KillTimeout = d
		}
	}
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
