// Package scheduler provides cron-based background jobs for the daemon.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/restup/restup/internal/config"
	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/notify"
	"github.com/restup/restup/internal/storage"
	"github.com/restup/restup/internal/update"
)

// EventRetention is how long fired reminder events are kept.
const EventRetention = 90 * 24 * time.Hour

// Scheduler manages periodic background jobs using cron.
type Scheduler struct {
	cron           *cron.Cron
	eventRepo      *storage.EventRepo
	dispatcher     *notify.Dispatcher
	updateChecker  *update.Checker
	currentVersion string
	notifiedAbout  string
}

// NewScheduler creates a new scheduler.
func NewScheduler(db *storage.DB) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		eventRepo:  storage.NewEventRepo(db),
		dispatcher: notify.NewDispatcher(storage.NewWebhookRepo(db)),
	}
}

// SetUpdateChecker configures the background update check.
func (s *Scheduler) SetUpdateChecker(checker *update.Checker, currentVersion string) {
	s.updateChecker = checker
	s.currentVersion = currentVersion
}

// Start registers all jobs and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if s.updateChecker != nil {
		spec := fmt.Sprintf("@every %s", config.Global.Update.CheckInterval)
		_, err := s.cron.AddFunc(spec, func() {
			s.checkForUpdate()
		})
		if err != nil {
			return fmt.Errorf("failed to add update check job: %w", err)
		}
	}

	// Nightly event prune
	_, err := s.cron.AddFunc("0 0 3 * * *", func() {
		s.pruneEvents()
	})
	if err != nil {
		return fmt.Errorf("failed to add prune job: %w", err)
	}

	s.cron.Start()
	logging.Debug("scheduler started")
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	logging.Debug("scheduler stopped")
}

// checkForUpdate checks the release manifest and announces a newer
// applicable release once per version.
func (s *Scheduler) checkForUpdate() {
	result, err := s.updateChecker.Check(context.Background(), s.currentVersion)
	if err != nil {
		logging.Warn("update check failed", "error", err)
		return
	}
	if !result.Available || !result.Applicable {
		return
	}
	logging.Info("update available",
		"current", s.currentVersion, "latest", result.Manifest.Version)

	if s.notifiedAbout == result.Manifest.Version {
		return
	}
	n := model.NewUpdateNotification(result.Manifest.Version)
	n.WithField("download_url", result.Manifest.DownloadURL)
	for _, r := range s.dispatcher.Dispatch(context.Background(), n) {
		if r.Error != nil {
			logging.Warn("update notification failed", "target", r.Target, "error", r.Error)
		}
	}
	s.notifiedAbout = result.Manifest.Version
}

// pruneEvents removes reminder events past the retention window.
func (s *Scheduler) pruneEvents() {
	pruned, err := s.eventRepo.Prune(time.Now().Add(-EventRetention))
	if err != nil {
		logging.Warn("event prune failed", "error", err)
		return
	}
	if pruned > 0 {
		logging.Info("pruned old reminder events", "count", pruned)
	}
}

// AddJob adds a custom job to the scheduler.
func (s *Scheduler) AddJob(spec string, job func()) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, job)
}

// RemoveJob removes a job from the scheduler.
func (s *Scheduler) RemoveJob(id cron.EntryID) {
	s.cron.Remove(id)
}

// Entries returns all scheduled entries.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRun returns the next scheduled run time for any job.
func (s *Scheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}

	next := entries[0].Next
	for _, e := range entries[1:] {
		if e.Next.Before(next) {
			next = e.Next
		}
	}
	return next
}
