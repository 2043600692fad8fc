// Package tui provides the terminal user interface components for Restup.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorRunning = lipgloss.Color("#10B981") // Green
	ColorPaused  = lipgloss.Color("#F59E0B") // Yellow
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorAccent  = lipgloss.Color("#3B82F6") // Blue
	ColorBorder  = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the dashboard header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleRunning marks running timers.
	StyleRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRunning)

	// StylePaused marks paused timers.
	StylePaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPaused)

	// StyleStopped marks stopped or disabled timers.
	StyleStopped = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleCountdown is used for the remaining time readout.
	StyleCountdown = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// StyleWarning is used for transient status messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorPaused)

	// StyleTimerBox wraps each reminder card.
	StyleTimerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	// StyleOverlayBox wraps the full-screen break prompt.
	StyleOverlayBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorRunning).
			Padding(1, 4).
			Align(lipgloss.Center)

	// StyleHelp is the help bar container.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey highlights key bindings in the help bar.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	// StyleHelpDesc renders key binding descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
