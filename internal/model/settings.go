package model

import (
	"fmt"
	"time"
)

// PrefixSettings is the database key prefix for reminder settings.
const PrefixSettings = "settings"

// Default intervals in minutes per reminder kind.
const (
	DefaultEyeRestInterval = 20
	DefaultWaterInterval   = 30
	DefaultStandUpInterval = 60
)

// MaxIntervalMinutes caps reminder intervals at eight hours. Longer
// intervals would never fire during a working day.
const MaxIntervalMinutes = 480

// ReminderSettings holds the persisted configuration for one reminder kind.
type ReminderSettings struct {
	Key             string       `json:"key"`
	Kind            ReminderKind `json:"kind"`
	Enabled         bool         `json:"enabled"`
	IntervalMinutes int          `json:"interval_minutes"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// SetKey sets the database key for these settings.
func (s *ReminderSettings) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for these settings.
func (s *ReminderSettings) GetKey() string {
	return s.Key
}

// Interval returns the reminder interval as a duration.
func (s *ReminderSettings) Interval() time.Duration {
	return time.Duration(s.IntervalMinutes) * time.Minute
}

// SettingsKey returns the database key for a kind's settings.
func SettingsKey(kind ReminderKind) string {
	return fmt.Sprintf("%s:%s", PrefixSettings, kind)
}

// DefaultSettings returns the default settings for a kind.
func DefaultSettings(kind ReminderKind) *ReminderSettings {
	s := &ReminderSettings{
		Key:     SettingsKey(kind),
		Kind:    kind,
		Enabled: true,
	}
	switch kind {
	case KindEyeRest:
		s.IntervalMinutes = DefaultEyeRestInterval
	case KindWater:
		s.IntervalMinutes = DefaultWaterInterval
	case KindStandUp:
		s.IntervalMinutes = DefaultStandUpInterval
	default:
		s.IntervalMinutes = DefaultStandUpInterval
	}
	return s
}
