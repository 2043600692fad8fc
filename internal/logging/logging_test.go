package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestLogger(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestTextOutput(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelInfo})

	Info("reminder fired", "kind", "water")

	out := buf.String()
	assert.Contains(t, out, "reminder fired")
	assert.Contains(t, out, "kind=water")
}

func TestJSONOutput(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelInfo, JSON: true})

	Warn("notification delivery failed", "target", "slack")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "notification delivery failed", entry["msg"])
	assert.Equal(t, "slack", entry["target"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestLevelFiltering(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelInfo})

	Debug("tick")
	assert.Empty(t, buf.String())

	Info("started")
	assert.Contains(t, buf.String(), "started")
}

func TestDebugConfigEnablesDebug(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelDebug, JSON: true})

	Debug("tick", "remaining", 42)
	assert.Contains(t, buf.String(), "tick")
}

func TestWith(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelInfo})

	With("component", "scheduler").Info("job added")

	out := buf.String()
	assert.Contains(t, out, "component=scheduler")
	assert.Contains(t, out, "job added")
}

func TestErrorLevel(t *testing.T) {
	buf := initTestLogger(t, Config{Level: slog.LevelError})

	Warn("ignored")
	Error("boom")

	out := buf.String()
	assert.False(t, strings.Contains(out, "ignored"))
	assert.Contains(t, out, "boom")
}
