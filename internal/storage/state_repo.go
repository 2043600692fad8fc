package storage

import (
	"time"

	"github.com/restup/restup/internal/model"
)

// StateRepo provides operations for the pause state record.
type StateRepo struct {
	db *DB
}

// NewStateRepo creates a new state repository.
func NewStateRepo(db *DB) *StateRepo {
	return &StateRepo{db: db}
}

// GetPause retrieves the current pause state. A missing record means not
// paused.
func (r *StateRepo) GetPause() (*model.PauseState, error) {
	state := &model.PauseState{}
	err := r.db.Get(model.KeyPauseState, state)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return &model.PauseState{Key: model.KeyPauseState}, nil
		}
		return nil, err
	}
	return state, nil
}

// Pause records a pause until the given time. A zero time pauses
// indefinitely.
func (r *StateRepo) Pause(until time.Time) (*model.PauseState, error) {
	state := model.NewPauseState(until)
	if err := r.db.Set(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Resume clears the pause state.
func (r *StateRepo) Resume() error {
	err := r.db.Delete(model.KeyPauseState)
	if err != nil && !IsErrKeyNotFound(err) {
		return err
	}
	return nil
}
