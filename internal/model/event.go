package model

import (
	"fmt"
	"time"
)

// PrefixEvent is the database key prefix for reminder events.
const PrefixEvent = "event"

// ReminderEvent records a single fired reminder.
type ReminderEvent struct {
	Key     string       `json:"key"`
	Kind    ReminderKind `json:"kind"`
	FiredAt time.Time    `json:"fired_at"`
	// Acknowledged is true if the user dismissed the overlay rather than
	// letting it time out.
	Acknowledged bool `json:"acknowledged"`
}

// SetKey sets the database key for this event.
func (e *ReminderEvent) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this event.
func (e *ReminderEvent) GetKey() string {
	return e.Key
}

// GenerateEventKey generates a database key for an event using UUID.
func GenerateEventKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixEvent, uuid)
}

// NewReminderEvent creates an event for a fired reminder.
func NewReminderEvent(kind ReminderKind) *ReminderEvent {
	return &ReminderEvent{
		Kind:    kind,
		FiredAt: time.Now(),
	}
}
