package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/restup/restup/internal/config"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/reminder"
	"github.com/restup/restup/internal/timer"
)

// tickMsg is sent when the refresh timer ticks.
type tickMsg time.Time

// fireMsg is sent when a reminder expires.
type fireMsg struct {
	kind model.ReminderKind
}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// DashboardModel is the main bubbletea model for the foreground dashboard.
type DashboardModel struct {
	// Data
	statuses []timer.Status
	overlay  *OverlayComponent

	// Service
	service *reminder.Service

	// UI state
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
	restDuration    time.Duration
	version         string
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Service         *reminder.Service
	RefreshInterval time.Duration
	RestDuration    time.Duration
	Version         string
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(cfg DashboardConfig) *DashboardModel {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = time.Second
	}
	if cfg.RestDuration == 0 {
		cfg.RestDuration = config.Global.Timer.RestDuration
	}

	m := &DashboardModel{
		service:         cfg.Service,
		refreshInterval: cfg.RefreshInterval,
		restDuration:    cfg.RestDuration,
		version:         cfg.Version,
	}

	// Seed the size before the first WindowSizeMsg arrives.
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		m.width = w
		m.height = h
	}

	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	m.statuses = m.service.Snapshot()
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.overlay != nil && m.overlay.Expired(now) {
			m.overlay = nil
		}
		if !m.messageExp.IsZero() && now.After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		m.statuses = m.service.Snapshot()
		return m, m.tickCmd()

	case fireMsg:
		m.overlay = NewOverlayComponent(msg.kind, m.restDuration)
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the break overlay, except quit which still quits.
	if m.overlay != nil {
		key := msg.String()
		m.service.Acknowledge(m.overlay.Kind)
		m.overlay = nil
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ", "p":
		mgr := m.service.Manager()
		if mgr.Paused() {
			mgr.ResumeAll()
			m.setMessage("Reminders resumed", 2*time.Second)
		} else {
			mgr.PauseAll()
			m.setMessage("Reminders paused", 2*time.Second)
		}
		m.statuses = m.service.Snapshot()
		return m, nil

	case "r":
		m.service.Manager().ResetAll()
		m.setMessage("Timers reset", 2*time.Second)
		m.statuses = m.service.Snapshot()
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.overlay != nil {
		return m.overlay.View(m.width, m.height)
	}
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	var cards []string
	for _, st := range m.statuses {
		cards = append(cards, m.renderTimerCard(st))
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if m.service.Manager().Paused() {
		until := m.service.Manager().PausedUntil()
		line := "Paused"
		if !until.IsZero() {
			line = fmt.Sprintf("Paused until %s", until.Format("15:04"))
		}
		sections = append(sections, StylePaused.Render(line))
	}

	sections = append(sections, HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Restup")
	sub := time.Now().Format("Mon Jan 2, 15:04:05")
	if m.version != "" {
		sub = "v" + m.version + "  " + sub
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", StyleSubtitle.Render(sub)) + "\n"
}

// renderTimerCard renders a single reminder card.
func (m *DashboardModel) renderTimerCard(st timer.Status) string {
	var content strings.Builder

	content.WriteString(st.Label)
	content.WriteString("\n")

	switch {
	case !st.Enabled:
		content.WriteString(StyleStopped.Render("disabled"))
	case st.State == timer.StateRunning.String():
		content.WriteString(StyleCountdown.Render(timer.FormatSeconds(st.Remaining)))
		content.WriteString("\n")
		content.WriteString(StyleRunning.Render("● running"))
	case st.State == timer.StatePaused.String():
		content.WriteString(StyleCountdown.Render(timer.FormatSeconds(st.Remaining)))
		content.WriteString("\n")
		content.WriteString(StylePaused.Render("⏸ paused"))
	default:
		content.WriteString(StyleStopped.Render("stopped"))
	}

	content.WriteString("\n")
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("every %dm", st.Interval)))

	return StyleTimerBox.Render(content.String())
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = time.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"space", "pause/resume"},
		{"r", "reset"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}

// Run starts the foreground dashboard. The reminder service runs for the
// lifetime of the program and reminder expiries are forwarded into the UI.
func Run(cfg DashboardConfig) error {
	m := NewDashboardModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cfg.Service.OnFire = func(kind model.ReminderKind) {
		p.Send(fireMsg{kind: kind})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := cfg.Service.Run(ctx); err != nil {
			p.Send(errMsg{err: err})
		}
	}()

	_, err := p.Run()
	return err
}
