package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/restup/restup/internal/model"
)

// EventRepo provides operations for ReminderEvent entities.
type EventRepo struct {
	db *DB
}

// NewEventRepo creates a new event repository.
func NewEventRepo(db *DB) *EventRepo {
	return &EventRepo{db: db}
}

// Record stores a fired reminder event with a generated key.
func (r *EventRepo) Record(event *model.ReminderEvent) error {
	if event.Key == "" {
		event.Key = model.GenerateEventKey(uuid.New().String())
	}
	if event.FiredAt.IsZero() {
		event.FiredAt = time.Now()
	}
	return r.db.Set(event)
}

// Acknowledge marks the most recent event for a kind as dismissed by the
// user. Returns false if no event for that kind exists.
func (r *EventRepo) Acknowledge(kind model.ReminderKind) (bool, error) {
	events, err := r.List()
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.Kind != kind {
			continue
		}
		if e.Acknowledged {
			return false, nil
		}
		e.Acknowledged = true
		return true, r.db.Set(e)
	}
	return false, nil
}

// List retrieves all events, most recent first.
func (r *EventRepo) List() ([]*model.ReminderEvent, error) {
	events, err := GetAllByPrefix(r.db, model.PrefixEvent+":", func() *model.ReminderEvent {
		return &model.ReminderEvent{}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].FiredAt.After(events[j].FiredAt)
	})
	return events, nil
}

// ListRecent retrieves up to limit events, most recent first.
func (r *EventRepo) ListRecent(limit int) ([]*model.ReminderEvent, error) {
	events, err := r.List()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// ListSince retrieves events fired at or after the given time.
func (r *EventRepo) ListSince(since time.Time) ([]*model.ReminderEvent, error) {
	events, err := r.List()
	if err != nil {
		return nil, err
	}
	var filtered []*model.ReminderEvent
	for _, e := range events {
		if !e.FiredAt.Before(since) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// CountByKind returns per-kind counts of events fired at or after since.
func (r *EventRepo) CountByKind(since time.Time) (map[model.ReminderKind]int, error) {
	events, err := r.ListSince(since)
	if err != nil {
		return nil, err
	}
	counts := make(map[model.ReminderKind]int)
	for _, e := range events {
		counts[e.Kind]++
	}
	return counts, nil
}

// Prune deletes events older than the given cutoff.
func (r *EventRepo) Prune(cutoff time.Time) (int, error) {
	events, err := r.List()
	if err != nil {
		return 0, err
	}
	pruned := 0
	for _, e := range events {
		if e.FiredAt.Before(cutoff) {
			if err := r.db.Delete(e.Key); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
