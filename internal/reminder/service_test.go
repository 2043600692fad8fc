package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/storage"
)

func setupService(t *testing.T) (*Service, *storage.DB) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc, err := NewService(db)
	require.NoError(t, err)
	svc.Dispatcher().SetDesktop(nil)
	svc.Dispatcher().SetBell(nil)
	return svc, db
}

func TestServiceStart(t *testing.T) {
	svc, _ := setupService(t)
	require.NoError(t, svc.Start())

	for _, s := range svc.Snapshot() {
		assert.Equal(t, "RUNNING", s.State)
	}
}

func TestServiceStartHonorsPersistedPause(t *testing.T) {
	svc, db := setupService(t)

	stateRepo := storage.NewStateRepo(db)
	_, err := stateRepo.Pause(time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.Start())
	assert.True(t, svc.Manager().Paused())
}

func TestServiceExpiryRecordsEvent(t *testing.T) {
	svc, db := setupService(t)

	settingsRepo := storage.NewSettingsRepo(db)
	_, err := settingsRepo.SetInterval(model.KindWater, 1)
	require.NoError(t, err)
	require.NoError(t, svc.ReloadSettings())

	var fired []model.ReminderKind
	svc.OnFire = func(kind model.ReminderKind) {
		fired = append(fired, kind)
	}

	require.NoError(t, svc.Start())
	for i := 0; i < 60; i++ {
		svc.Manager().Tick()
	}

	require.Equal(t, []model.ReminderKind{model.KindWater}, fired)

	events, err := storage.NewEventRepo(db).List()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.KindWater, events[0].Kind)
}

func TestServiceReloadSettings(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, svc.Start())

	settingsRepo := storage.NewSettingsRepo(db)
	_, err := settingsRepo.SetEnabled(model.KindStandUp, false)
	require.NoError(t, err)

	require.NoError(t, svc.ReloadSettings())

	snap := svc.Snapshot()
	assert.Equal(t, "STOPPED", snap[2].State)
	assert.False(t, snap[2].Enabled)
}

func TestServiceRefreshAppliesPause(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, svc.Start())
	require.False(t, svc.Manager().Paused())

	stateRepo := storage.NewStateRepo(db)
	until := time.Now().Add(time.Hour)
	_, err := stateRepo.Pause(until)
	require.NoError(t, err)

	require.NoError(t, svc.Refresh())
	assert.True(t, svc.Manager().Paused())
	assert.WithinDuration(t, until, svc.Manager().PausedUntil(), time.Second)
}

func TestServiceRefreshClearsPause(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, svc.Start())

	stateRepo := storage.NewStateRepo(db)
	_, err := stateRepo.Pause(time.Time{})
	require.NoError(t, err)
	require.NoError(t, svc.Refresh())
	require.True(t, svc.Manager().Paused())

	require.NoError(t, stateRepo.Resume())
	require.NoError(t, svc.Refresh())
	assert.False(t, svc.Manager().Paused())
}
