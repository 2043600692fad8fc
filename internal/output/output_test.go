package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/timer"
)

func newTestFormatter() (*Formatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := NewFormatter()
	f.Writer = &buf
	f.ColorMode = ColorNever
	return f, &buf
}

func sampleStatuses() []timer.Status {
	return []timer.Status{
		{Kind: model.KindEyeRest, Label: "Eye Rest", Enabled: true, State: "RUNNING", Remaining: 1200, Interval: 20},
		{Kind: model.KindWater, Label: "Drink Water", Enabled: true, State: "PAUSED", Remaining: 900, Interval: 30},
		{Kind: model.KindStandUp, Label: "Stand Up", Enabled: false, State: "STOPPED", Remaining: 0, Interval: 60},
	}
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestFormatterDefaults(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestIsColorEnabled(t *testing.T) {
	f, _ := newTestFormatter()

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto with a non-file writer is never a terminal.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestFormatterPrint(t *testing.T) {
	f, buf := newTestFormatter()

	f.Print("a")
	f.Println("b")
	f.Printf("%d\n", 3)

	assert.Equal(t, "ab\n3\n", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	f, buf := newTestFormatter()

	require.NoError(t, f.JSON(map[string]int{"n": 1}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded["n"])
}

// =============================================================================
// CLIFormatter Tests
// =============================================================================

func TestCLIPrintStatuses(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	cli.PrintStatuses(sampleStatuses(), time.Time{})

	out := buf.String()
	assert.Contains(t, out, "Eye Rest")
	assert.Contains(t, out, "RUNNING")
	assert.Contains(t, out, "20:00 left")
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "DISABLED")
	assert.Contains(t, out, "(every 20m)")
	assert.NotContains(t, out, "Paused until")
}

func TestCLIPrintStatusesPaused(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	until := time.Now().Add(time.Hour)
	cli.PrintStatuses(sampleStatuses(), until)

	assert.Contains(t, buf.String(), "Paused until "+until.Format("15:04"))
}

func TestCLIPrintSettings(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	settings := []*model.ReminderSettings{
		model.DefaultSettings(model.KindEyeRest),
	}
	disabled := model.DefaultSettings(model.KindWater)
	disabled.Enabled = false
	settings = append(settings, disabled)

	cli.PrintSettings(settings)

	out := buf.String()
	assert.Contains(t, out, "Eye Rest")
	assert.Contains(t, out, "on")
	assert.Contains(t, out, "off")
	assert.Contains(t, out, "every 20m")
}

func TestCLIPrintEvents(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	cli.PrintEvents(nil)
	assert.Contains(t, buf.String(), "No reminders fired yet.")

	buf.Reset()
	cli.PrintEvents([]*model.ReminderEvent{model.NewReminderEvent(model.KindWater)})
	assert.Contains(t, buf.String(), "Drink Water")
}

func TestCLIPrintEventCounts(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	counts := map[model.ReminderKind]int{model.KindWater: 4}
	cli.PrintEventCounts(counts, time.Now().AddDate(0, 0, -7))

	out := buf.String()
	assert.Contains(t, out, "Drink Water")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "Stand Up")
}

func TestCLIPrintError(t *testing.T) {
	f, buf := newTestFormatter()
	cli := NewCLIFormatter(f)

	cli.PrintError(errors.New("boom"), "try again")

	out := buf.String()
	assert.Contains(t, out, "Error: boom")
	assert.Contains(t, out, "Hint: try again")
}

// =============================================================================
// JSONFormatter Tests
// =============================================================================

func TestJSONPrintStatuses(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintStatuses(sampleStatuses(), time.Time{}))

	var doc struct {
		Timers      []timer.Status `json:"timers"`
		PausedUntil *time.Time     `json:"paused_until"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Timers, 3)
	assert.Equal(t, model.KindEyeRest, doc.Timers[0].Kind)
	assert.Equal(t, 1200, doc.Timers[0].Remaining)
	assert.Nil(t, doc.PausedUntil)
}

func TestJSONPrintStatusesPaused(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	until := time.Now().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, j.PrintStatuses(sampleStatuses(), until))

	var doc struct {
		PausedUntil *time.Time `json:"paused_until"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.NotNil(t, doc.PausedUntil)
	assert.True(t, doc.PausedUntil.Equal(until))
}

func TestJSONPrintSettings(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintSettings([]*model.ReminderSettings{
		model.DefaultSettings(model.KindStandUp),
	}))

	var doc map[string][]model.ReminderSettings
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc["settings"], 1)
	assert.Equal(t, model.KindStandUp, doc["settings"][0].Kind)
}

func TestJSONPrintError(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintError("error", "bad input", "fix it"))

	var doc map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "bad input", doc["message"])
	assert.Equal(t, "fix it", doc["suggestion"])
}
