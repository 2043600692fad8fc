package output

import (
	"time"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/timer"
)

// JSONFormatter renders machine-readable JSON output.
type JSONFormatter struct {
	f *Formatter
}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{f: f}
}

// statusDocument is the JSON shape for timer status output.
type statusDocument struct {
	Timers      []timer.Status `json:"timers"`
	PausedUntil *time.Time     `json:"paused_until,omitempty"`
}

// PrintStatuses prints the timer statuses as JSON.
func (j *JSONFormatter) PrintStatuses(statuses []timer.Status, pausedUntil time.Time) error {
	doc := statusDocument{Timers: statuses}
	if !pausedUntil.IsZero() {
		doc.PausedUntil = &pausedUntil
	}
	return j.f.JSON(doc)
}

// PrintSettings prints the settings as JSON.
func (j *JSONFormatter) PrintSettings(settings []*model.ReminderSettings) error {
	return j.f.JSON(map[string]interface{}{"settings": settings})
}

// PrintEvents prints events as JSON.
func (j *JSONFormatter) PrintEvents(events []*model.ReminderEvent) error {
	return j.f.JSON(map[string]interface{}{"events": events})
}

// PrintError prints an error document as JSON.
func (j *JSONFormatter) PrintError(code, message, suggestion string) error {
	return j.f.JSON(map[string]string{
		"error":      code,
		"message":    message,
		"suggestion": suggestion,
	})
}
