package storage

import (
	"strconv"
	"time"

	"github.com/restup/restup/internal/errors"
	"github.com/restup/restup/internal/model"
)

// SettingsRepo provides operations for ReminderSettings entities.
type SettingsRepo struct {
	db *DB
}

// NewSettingsRepo creates a new settings repository.
func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get retrieves the settings for a reminder kind, falling back to defaults
// if none are stored yet.
func (r *SettingsRepo) Get(kind model.ReminderKind) (*model.ReminderSettings, error) {
	settings := &model.ReminderSettings{}
	err := r.db.Get(model.SettingsKey(kind), settings)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return model.DefaultSettings(kind), nil
		}
		return nil, err
	}
	return settings, nil
}

// GetAll retrieves settings for all reminder kinds.
func (r *SettingsRepo) GetAll() ([]*model.ReminderSettings, error) {
	var all []*model.ReminderSettings
	for _, kind := range model.AllKinds() {
		settings, err := r.Get(kind)
		if err != nil {
			return nil, err
		}
		all = append(all, settings)
	}
	return all, nil
}

// Save persists the settings for a reminder kind.
func (r *SettingsRepo) Save(settings *model.ReminderSettings) error {
	if settings.Key == "" {
		settings.Key = model.SettingsKey(settings.Kind)
	}
	settings.UpdatedAt = time.Now()
	return r.db.Set(settings)
}

// SetInterval updates the interval for a kind.
func (r *SettingsRepo) SetInterval(kind model.ReminderKind, minutes int) (*model.ReminderSettings, error) {
	if minutes < 1 {
		return nil, errors.NewUserErrorWithField("interval", strconv.Itoa(minutes),
			"interval must be at least one minute",
			"Use a value like 20 or '45m'")
	}
	if minutes > model.MaxIntervalMinutes {
		return nil, errors.NewUserErrorWithField("interval", strconv.Itoa(minutes),
			"interval must be at most eight hours",
			"Use a value of 480 minutes or less")
	}
	settings, err := r.Get(kind)
	if err != nil {
		return nil, err
	}
	settings.IntervalMinutes = minutes
	if err := r.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// SetEnabled updates the enabled flag for a kind.
func (r *SettingsRepo) SetEnabled(kind model.ReminderKind, enabled bool) (*model.ReminderSettings, error) {
	settings, err := r.Get(kind)
	if err != nil {
		return nil, err
	}
	settings.Enabled = enabled
	if err := r.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Reset removes stored settings for a kind, reverting it to defaults.
func (r *SettingsRepo) Reset(kind model.ReminderKind) error {
	err := r.db.Delete(model.SettingsKey(kind))
	if err != nil && !IsErrKeyNotFound(err) {
		return err
	}
	return nil
}
