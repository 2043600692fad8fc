package model

import "time"

// KeyPauseState is the database key for the pause state record.
const KeyPauseState = "state:pause"

// PauseState holds the persisted pause-until timestamp. While the wall clock
// is before Until, all reminder timers stay paused.
type PauseState struct {
	Key      string    `json:"key"`
	Paused   bool      `json:"paused"`
	Until    time.Time `json:"until,omitempty"`
	PausedAt time.Time `json:"paused_at,omitempty"`
}

// SetKey sets the database key for this state.
func (p *PauseState) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this state.
func (p *PauseState) GetKey() string {
	return p.Key
}

// Active returns true if the pause is currently in effect.
func (p *PauseState) Active() bool {
	if !p.Paused {
		return false
	}
	// Zero Until means paused indefinitely.
	if p.Until.IsZero() {
		return true
	}
	return time.Now().Before(p.Until)
}

// NewPauseState creates a pause state record.
func NewPauseState(until time.Time) *PauseState {
	return &PauseState{
		Key:      KeyPauseState,
		Paused:   true,
		Until:    until,
		PausedAt: time.Now(),
	}
}
