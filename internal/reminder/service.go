// Package reminder wires the countdown timers to notifications and
// persistence.
package reminder

import (
	"context"

	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/notify"
	"github.com/restup/restup/internal/storage"
	"github.com/restup/restup/internal/timer"
)

// Service runs the reminder timers, dispatches notifications on expiry and
// records fired events.
type Service struct {
	manager      *timer.Manager
	dispatcher   *notify.Dispatcher
	settingsRepo *storage.SettingsRepo
	eventRepo    *storage.EventRepo
	stateRepo    *storage.StateRepo

	// OnFire, if set, is called after a reminder fires. The TUI uses it to
	// raise the overlay.
	OnFire func(kind model.ReminderKind)
}

// NewService creates the reminder service from the database.
func NewService(db *storage.DB) (*Service, error) {
	settingsRepo := storage.NewSettingsRepo(db)
	settings, err := settingsRepo.GetAll()
	if err != nil {
		return nil, err
	}

	s := &Service{
		manager:      timer.NewManager(settings),
		dispatcher:   notify.NewDispatcher(storage.NewWebhookRepo(db)),
		settingsRepo: settingsRepo,
		eventRepo:    storage.NewEventRepo(db),
		stateRepo:    storage.NewStateRepo(db),
	}
	s.manager.SetExpireFunc(s.handleExpiry)
	return s, nil
}

// Manager returns the underlying timer manager.
func (s *Service) Manager() *timer.Manager {
	return s.manager
}

// Dispatcher returns the notification dispatcher.
func (s *Service) Dispatcher() *notify.Dispatcher {
	return s.dispatcher
}

// Start starts all enabled timers, honoring a persisted pause window.
func (s *Service) Start() error {
	s.manager.StartAll()

	state, err := s.stateRepo.GetPause()
	if err != nil {
		return err
	}
	if state.Active() {
		s.manager.PauseUntil(state.Until)
		logging.Info("reminders paused from saved state", "until", state.Until)
	}
	return nil
}

// Run starts the timers and drives them until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	return s.manager.Run(ctx)
}

// handleExpiry fires the notification and records the event for one kind.
func (s *Service) handleExpiry(kind model.ReminderKind) {
	logging.Info("reminder fired", "kind", kind)

	results := s.dispatcher.Dispatch(context.Background(), model.NewReminderNotification(kind))
	for _, r := range results {
		if r.Error != nil {
			logging.Warn("notification delivery failed", "target", r.Target, "error", r.Error)
		}
	}

	if err := s.eventRepo.Record(model.NewReminderEvent(kind)); err != nil {
		logging.Warn("failed to record reminder event", "error", err)
	}

	if s.OnFire != nil {
		s.OnFire(kind)
	}
}

// Acknowledge marks the most recent event for a kind as dismissed by the
// user. Called when the overlay is closed with a key press rather than
// timing out.
func (s *Service) Acknowledge(kind model.ReminderKind) {
	if _, err := s.eventRepo.Acknowledge(kind); err != nil {
		logging.Warn("failed to acknowledge reminder event", "kind", kind, "error", err)
	}
}

// ReloadSettings re-reads persisted settings and applies them to the timers.
func (s *Service) ReloadSettings() error {
	settings, err := s.settingsRepo.GetAll()
	if err != nil {
		return err
	}
	s.manager.Configure(settings)
	return nil
}

// Refresh reapplies persisted settings and pause state to the timers. The
// daemon calls this periodically so changes made through the CLI take
// effect without a restart.
func (s *Service) Refresh() error {
	if err := s.ReloadSettings(); err != nil {
		return err
	}

	state, err := s.stateRepo.GetPause()
	if err != nil {
		return err
	}
	if state.Active() {
		if !s.manager.Paused() || !s.manager.PausedUntil().Equal(state.Until) {
			s.manager.PauseUntil(state.Until)
		}
	} else if s.manager.Paused() {
		s.manager.ResumeAll()
	}
	return nil
}

// Snapshot returns the current timer statuses.
func (s *Service) Snapshot() []timer.Status {
	return s.manager.Snapshot()
}
