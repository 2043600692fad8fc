package model

import (
	"time"
)

// NotificationType defines the type of notification.
type NotificationType string

// Notification types.
const (
	NotifyReminder NotificationType = "reminder"
	NotifyUpdate   NotificationType = "update"
	NotifyTest     NotificationType = "test"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type      NotificationType  `json:"type"`
	Kind      ReminderKind      `json:"kind,omitempty"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Color     int               `json:"color,omitempty"` // Hex color for embeds
}

// NewNotification creates a new notification.
func NewNotification(t NotificationType, title, message string) *Notification {
	return &Notification{
		Type:      t,
		Title:     title,
		Message:   message,
		Fields:    make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewReminderNotification creates the notification for a fired reminder kind.
func NewReminderNotification(kind ReminderKind) *Notification {
	n := NewNotification(NotifyReminder, kind.Label(), kind.Message())
	n.Kind = kind
	n.Color = ColorForKind(kind)
	return n
}

// NewTestNotification creates the notification used by webhook tests.
func NewTestNotification() *Notification {
	n := NewNotification(NotifyTest, "Restup test", "This is a test notification from restup.")
	n.Color = ColorInfo
	return n
}

// NewUpdateNotification creates the notification announcing a new release.
func NewUpdateNotification(version string) *Notification {
	n := NewNotification(NotifyUpdate, "Restup update available",
		"Version "+version+" is available.")
	n.Color = ColorInfo
	return n
}

// WithField adds a field to the notification.
func (n *Notification) WithField(key, value string) *Notification {
	if n.Fields == nil {
		n.Fields = make(map[string]string)
	}
	n.Fields[key] = value
	return n
}

// WithColor sets the embed color.
func (n *Notification) WithColor(color int) *Notification {
	n.Color = color
	return n
}

// Notification colors (Discord-compatible hex values).
const (
	ColorSuccess = 0x57F287 // Green
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x5865F2 // Blurple
	ColorPrimary = 0x3498DB // Blue
)

// ColorForKind returns the embed color for a reminder kind.
func ColorForKind(kind ReminderKind) int {
	switch kind {
	case KindEyeRest:
		return ColorWarning
	case KindWater:
		return ColorPrimary
	case KindStandUp:
		return ColorSuccess
	default:
		return ColorInfo
	}
}
