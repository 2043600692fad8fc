package timer

import (
	"context"
	"sync"
	"time"

	"github.com/restup/restup/internal/config"
	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/model"
)

// Status is a read-only snapshot of one countdown.
type Status struct {
	Kind      model.ReminderKind `json:"kind"`
	Label     string             `json:"label"`
	Enabled   bool               `json:"enabled"`
	State     string             `json:"state"`
	Remaining int                `json:"remaining_seconds"`
	Interval  int                `json:"interval_minutes"`
}

// Manager aggregates the three reminder countdowns and drives them from a
// single ticker goroutine. All timers tick cooperatively on that one
// goroutine; external readers get mutex-guarded snapshots.
type Manager struct {
	mu         sync.Mutex
	timers     map[model.ReminderKind]*Countdown
	order      []model.ReminderKind
	onExpire   ExpireFunc
	pauseUntil time.Time
	lastTick   time.Time

	tickInterval   time.Duration
	sleepThreshold time.Duration
}

// NewManager creates a manager with one countdown per reminder kind,
// configured from the given settings.
func NewManager(settings []*model.ReminderSettings) *Manager {
	m := &Manager{
		timers:         make(map[model.ReminderKind]*Countdown),
		tickInterval:   config.Global.Timer.TickInterval,
		sleepThreshold: config.Global.Timer.SleepThreshold,
	}
	for _, kind := range model.AllKinds() {
		m.timers[kind] = NewCountdown(kind, model.DefaultSettings(kind).Interval())
		m.order = append(m.order, kind)
	}
	m.Configure(settings)
	return m
}

// SetExpireFunc sets the callback fired when any countdown expires.
// Callbacks run on the ticker goroutine, outside the manager lock.
func (m *Manager) SetExpireFunc(fn ExpireFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = fn
}

// Configure applies persisted settings to the countdowns.
func (m *Manager) Configure(settings []*model.ReminderSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range settings {
		c, ok := m.timers[s.Kind]
		if !ok {
			continue
		}
		if c.Interval() != s.Interval() {
			c.SetInterval(s.Interval())
		}
		if c.Enabled() != s.Enabled {
			c.SetEnabled(s.Enabled)
			if s.Enabled && m.anyRunningLocked() {
				c.Start()
			}
		}
	}
}

// Run drives the countdowns until the context is cancelled. One tick per
// tick interval; each tick decrements every running countdown by one second.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()

	m.mu.Lock()
	m.lastTick = time.Now()
	m.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.tick()
		}
	}
}

// tick advances all running countdowns by one second.
func (m *Manager) tick() {
	m.mu.Lock()

	now := time.Now()
	var gap time.Duration
	// lastTick is zero until the first tick, which is not a sleep gap.
	if !m.lastTick.IsZero() {
		gap = now.Sub(m.lastTick)
	}
	m.lastTick = now

	// The pause window may have lapsed since the last tick.
	if !m.pauseUntil.IsZero() && !now.Before(m.pauseUntil) {
		m.pauseUntil = time.Time{}
		for _, kind := range m.order {
			m.timers[kind].Resume()
		}
		logging.Debug("pause window elapsed, timers resumed")
	}

	// A large gap means the system was asleep. Restart running timers
	// rather than firing a burst of stale reminders.
	if m.sleepThreshold > 0 && gap > m.sleepThreshold {
		for _, kind := range m.order {
			m.timers[kind].Reset()
		}
		logging.Info("clock gap detected, timers restarted", "gap", gap.Round(time.Second))
		m.mu.Unlock()
		return
	}

	var expired []model.ReminderKind
	for _, kind := range m.order {
		if m.timers[kind].Tick() {
			expired = append(expired, kind)
		}
	}
	fn := m.onExpire
	m.mu.Unlock()

	if fn == nil {
		return
	}
	for _, kind := range expired {
		fn(kind)
	}
}

// Tick advances all countdowns by one tick. Exposed for tests and for
// callers that drive the manager without Run.
func (m *Manager) Tick() {
	m.tick()
}

// StartAll starts every enabled countdown.
func (m *Manager) StartAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range m.order {
		m.timers[kind].Start()
	}
}

// PauseAll pauses every running countdown.
func (m *Manager) PauseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range m.order {
		m.timers[kind].Pause()
	}
}

// ResumeAll resumes every paused countdown and clears any pause window.
func (m *Manager) ResumeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseUntil = time.Time{}
	for _, kind := range m.order {
		m.timers[kind].Resume()
	}
}

// StopAll stops every countdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range m.order {
		m.timers[kind].Stop()
	}
}

// ResetAll restores every non-stopped countdown to its full interval.
func (m *Manager) ResetAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, kind := range m.order {
		m.timers[kind].Reset()
	}
}

// PauseUntil pauses all countdowns until the given time. Timers resume
// automatically on the first tick at or after it.
func (m *Manager) PauseUntil(until time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseUntil = until
	for _, kind := range m.order {
		m.timers[kind].Pause()
	}
}

// Start starts the countdown for one kind.
func (m *Manager) Start(kind model.ReminderKind) {
	m.withTimer(kind, (*Countdown).Start)
}

// Pause pauses the countdown for one kind.
func (m *Manager) Pause(kind model.ReminderKind) {
	m.withTimer(kind, (*Countdown).Pause)
}

// Resume resumes the countdown for one kind.
func (m *Manager) Resume(kind model.ReminderKind) {
	m.withTimer(kind, (*Countdown).Resume)
}

// Stop stops the countdown for one kind.
func (m *Manager) Stop(kind model.ReminderKind) {
	m.withTimer(kind, (*Countdown).Stop)
}

// Reset restores the countdown for one kind to its full interval.
func (m *Manager) Reset(kind model.ReminderKind) {
	m.withTimer(kind, (*Countdown).Reset)
}

// SetInterval changes the interval for one kind.
func (m *Manager) SetInterval(kind model.ReminderKind, interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.timers[kind]; ok {
		c.SetInterval(interval)
	}
}

// SetEnabled enables or disables one kind. A kind enabled while others are
// running starts immediately.
func (m *Manager) SetEnabled(kind model.ReminderKind, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.timers[kind]
	if !ok {
		return
	}
	c.SetEnabled(enabled)
	if enabled && m.anyRunningLocked() {
		c.Start()
	}
}

// Remaining returns the remaining seconds for one kind.
func (m *Manager) Remaining(kind model.ReminderKind) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.timers[kind]; ok {
		return c.Remaining()
	}
	return 0
}

// Paused returns true if a pause window is in effect.
func (m *Manager) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.pauseUntil.IsZero() && time.Now().Before(m.pauseUntil) {
		return true
	}
	for _, kind := range m.order {
		if m.timers[kind].State() == StatePaused {
			return true
		}
	}
	return false
}

// PausedUntil returns the end of the current pause window, zero if none.
func (m *Manager) PausedUntil() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseUntil
}

// Snapshot returns the current status of all countdowns in display order.
func (m *Manager) Snapshot() []Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	statuses := make([]Status, 0, len(m.order))
	for _, kind := range m.order {
		c := m.timers[kind]
		statuses = append(statuses, Status{
			Kind:      kind,
			Label:     kind.Label(),
			Enabled:   c.Enabled(),
			State:     c.State().String(),
			Remaining: c.Remaining(),
			Interval:  int(c.Interval() / time.Minute),
		})
	}
	return statuses
}

// withTimer runs an operation on one countdown under the lock.
func (m *Manager) withTimer(kind model.ReminderKind, op func(*Countdown)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.timers[kind]; ok {
		op(c)
	}
}

// anyRunningLocked reports whether any countdown is running. Callers must
// hold the lock.
func (m *Manager) anyRunningLocked() bool {
	for _, kind := range m.order {
		if m.timers[kind].State() == StateRunning {
			return true
		}
	}
	return false
}
