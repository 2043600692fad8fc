package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/reminder"
	"github.com/restup/restup/internal/storage"
)

func setupTestService(t *testing.T) *reminder.Service {
	t.Helper()

	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc, err := reminder.NewService(db)
	require.NoError(t, err)
	svc.Dispatcher().SetDesktop(nil)
	svc.Dispatcher().SetBell(nil)
	return svc
}

// =============================================================================
// OverlayComponent Tests
// =============================================================================

func TestNewOverlayComponent(t *testing.T) {
	oc := NewOverlayComponent(model.KindEyeRest, 20*time.Second)

	assert.Equal(t, model.KindEyeRest, oc.Kind)
	assert.False(t, oc.Expired(time.Now()))
	assert.True(t, oc.Expired(time.Now().Add(21*time.Second)))
}

func TestOverlayRemainingSeconds(t *testing.T) {
	oc := NewOverlayComponent(model.KindWater, 20*time.Second)

	remaining := oc.RemainingSeconds(oc.ShownAt)
	assert.Equal(t, 20, remaining)
	assert.Equal(t, 0, oc.RemainingSeconds(oc.ShownAt.Add(time.Minute)))
}

func TestOverlayView(t *testing.T) {
	oc := NewOverlayComponent(model.KindStandUp, 20*time.Second)

	view := oc.View(80, 24)
	assert.Contains(t, view, "STAND UP")

	// Rendering without a known terminal size still produces the box.
	assert.NotEmpty(t, oc.View(0, 0))
}

// =============================================================================
// DashboardModel Tests
// =============================================================================

func TestNewDashboardModelDefaults(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc})

	assert.Equal(t, time.Second, m.refreshInterval)
	assert.NotZero(t, m.restDuration)
}

func TestDashboardInitSnapshots(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc})

	cmd := m.Init()
	assert.NotNil(t, cmd)
	assert.Len(t, m.statuses, 3)
}

func TestDashboardWindowSize(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	dm := updated.(*DashboardModel)
	assert.Equal(t, 120, dm.width)
	assert.Equal(t, 40, dm.height)
}

func TestDashboardFireShowsOverlay(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc, RestDuration: 20 * time.Second})
	m.Init()

	updated, _ := m.Update(fireMsg{kind: model.KindWater})
	dm := updated.(*DashboardModel)
	require.NotNil(t, dm.overlay)
	assert.Equal(t, model.KindWater, dm.overlay.Kind)

	view := dm.View()
	assert.Contains(t, view, "WATER")
}

func TestDashboardKeyDismissesOverlay(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc})
	m.Init()
	m.Update(fireMsg{kind: model.KindEyeRest})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	dm := updated.(*DashboardModel)
	assert.Nil(t, dm.overlay)
	assert.Nil(t, cmd)
}

func TestDashboardDismissAcknowledgesEvent(t *testing.T) {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc, err := reminder.NewService(db)
	require.NoError(t, err)
	svc.Dispatcher().SetDesktop(nil)
	svc.Dispatcher().SetBell(nil)

	events := storage.NewEventRepo(db)
	require.NoError(t, events.Record(model.NewReminderEvent(model.KindEyeRest)))

	m := NewDashboardModel(DashboardConfig{Service: svc})
	m.Init()
	m.Update(fireMsg{kind: model.KindEyeRest})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	recorded, err := events.List()
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.True(t, recorded[0].Acknowledged)
}

func TestDashboardOverlayAutoDismiss(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc, RestDuration: 20 * time.Second})
	m.Init()
	m.Update(fireMsg{kind: model.KindEyeRest})

	updated, _ := m.Update(tickMsg(time.Now().Add(time.Minute)))
	dm := updated.(*DashboardModel)
	assert.Nil(t, dm.overlay)
}

func TestDashboardQuitKey(t *testing.T) {
	svc := setupTestService(t)
	m := NewDashboardModel(DashboardConfig{Service: svc})
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestDashboardPauseToggle(t *testing.T) {
	svc := setupTestService(t)
	require.NoError(t, svc.Start())
	m := NewDashboardModel(DashboardConfig{Service: svc})
	m.Init()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.True(t, svc.Manager().Paused())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.False(t, svc.Manager().Paused())
}

func TestDashboardView(t *testing.T) {
	svc := setupTestService(t)
	require.NoError(t, svc.Start())
	m := NewDashboardModel(DashboardConfig{Service: svc, Version: "1.0.0"})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Restup")
	assert.Contains(t, view, "Eye Rest")
	assert.Contains(t, view, "Drink Water")
	assert.Contains(t, view, "Stand Up")
}

// =============================================================================
// HelpBar Tests
// =============================================================================

func TestHelpBar(t *testing.T) {
	bar := HelpBar()
	assert.Contains(t, bar, "pause/resume")
	assert.Contains(t, bar, "quit")
}
