// Package timer implements the reminder countdown timers for restup.
package timer

import (
	"time"

	"github.com/restup/restup/internal/model"
)

// State represents the lifecycle state of a countdown.
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "STOPPED"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// ExpireFunc is called when a countdown reaches zero.
type ExpireFunc func(kind model.ReminderKind)

// Countdown is a single reminder timer. It counts down whole seconds from
// its interval, fires the expiry callback at zero and restarts. Countdown
// is not safe for concurrent use; the Manager serializes access.
type Countdown struct {
	kind      model.ReminderKind
	interval  time.Duration
	remaining int // seconds, always >= 0
	state     State
	enabled   bool
	onExpire  ExpireFunc
}

// NewCountdown creates a stopped countdown for a reminder kind.
func NewCountdown(kind model.ReminderKind, interval time.Duration) *Countdown {
	return &Countdown{
		kind:     kind,
		interval: interval,
		enabled:  true,
	}
}

// Kind returns the reminder kind this countdown belongs to.
func (c *Countdown) Kind() model.ReminderKind {
	return c.kind
}

// Interval returns the configured interval.
func (c *Countdown) Interval() time.Duration {
	return c.interval
}

// Remaining returns the remaining seconds until expiry.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// State returns the current lifecycle state.
func (c *Countdown) State() State {
	return c.state
}

// Enabled returns true if this reminder is enabled.
func (c *Countdown) Enabled() bool {
	return c.enabled
}

// SetExpireFunc sets the expiry callback.
func (c *Countdown) SetExpireFunc(fn ExpireFunc) {
	c.onExpire = fn
}

// SetInterval changes the interval. A running countdown restarts from the
// new interval.
func (c *Countdown) SetInterval(interval time.Duration) {
	c.interval = interval
	if c.state != StateStopped {
		c.remaining = c.intervalSeconds()
	}
}

// SetEnabled enables or disables the reminder. Disabling stops the countdown.
func (c *Countdown) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.Stop()
	}
}

// Start begins counting down from the full interval. Starting a disabled
// countdown is a no-op.
func (c *Countdown) Start() {
	if !c.enabled {
		return
	}
	c.remaining = c.intervalSeconds()
	c.state = StateRunning
}

// Pause suspends a running countdown, keeping the remaining time.
func (c *Countdown) Pause() {
	if c.state == StateRunning {
		c.state = StatePaused
	}
}

// Resume continues a paused countdown.
func (c *Countdown) Resume() {
	if c.state == StatePaused {
		c.state = StateRunning
	}
}

// Stop halts the countdown and clears the remaining time.
func (c *Countdown) Stop() {
	c.state = StateStopped
	c.remaining = 0
}

// Reset restores the full interval without changing the lifecycle state.
func (c *Countdown) Reset() {
	if c.state != StateStopped {
		c.remaining = c.intervalSeconds()
	}
}

// Tick advances the countdown by one second. At zero it fires the expiry
// callback and restarts from the full interval. Returns true if the
// countdown expired on this tick.
func (c *Countdown) Tick() bool {
	if c.state != StateRunning {
		return false
	}

	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining > 0 {
		return false
	}

	// Expired: fire and auto-restart.
	if c.onExpire != nil {
		c.onExpire(c.kind)
	}
	c.remaining = c.intervalSeconds()
	return true
}

func (c *Countdown) intervalSeconds() int {
	secs := int(c.interval / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
