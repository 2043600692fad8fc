package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/timer"
)

// CLI styles.
var (
	styleHeader = lipgloss.NewStyle().Bold(true)

	styleRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")) // Green

	stylePaused = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")) // Yellow

	styleStopped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// CLIFormatter renders human-readable CLI output.
type CLIFormatter struct {
	f *Formatter
}

// NewCLIFormatter creates a CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{f: f}
}

// render applies a style only when color is enabled.
func (c *CLIFormatter) render(style lipgloss.Style, s string) string {
	if c.f.IsColorEnabled() {
		return style.Render(s)
	}
	return s
}

func (c *CLIFormatter) stateStyle(state string) lipgloss.Style {
	switch state {
	case "RUNNING":
		return styleRunning
	case "PAUSED":
		return stylePaused
	default:
		return styleStopped
	}
}

// PrintStatuses prints the timer status table.
func (c *CLIFormatter) PrintStatuses(statuses []timer.Status, pausedUntil time.Time) {
	for _, s := range statuses {
		state := s.State
		if !s.Enabled {
			state = "DISABLED"
		}
		line := fmt.Sprintf("%-12s %-9s", s.Label, c.render(c.stateStyle(s.State), state))
		if s.Enabled && s.State != "STOPPED" {
			line += fmt.Sprintf("  %s left", timer.FormatSeconds(s.Remaining))
		}
		line += c.render(styleMuted, fmt.Sprintf("  (every %dm)", s.Interval))
		c.f.Println(line)
	}
	if !pausedUntil.IsZero() && time.Now().Before(pausedUntil) {
		c.f.Println(c.render(stylePaused, fmt.Sprintf("Paused until %s", pausedUntil.Format("15:04"))))
	}
}

// PrintSettings prints the per-kind settings.
func (c *CLIFormatter) PrintSettings(settings []*model.ReminderSettings) {
	c.f.Println(c.render(styleHeader, "Reminder settings"))
	for _, s := range settings {
		enabled := "on"
		if !s.Enabled {
			enabled = "off"
		}
		c.f.Printf("  %-12s %-4s every %dm\n", s.Kind.Label(), enabled, s.IntervalMinutes)
	}
}

// PrintEvents prints recent reminder events.
func (c *CLIFormatter) PrintEvents(events []*model.ReminderEvent) {
	if len(events) == 0 {
		c.f.Println("No reminders fired yet.")
		return
	}
	for _, e := range events {
		c.f.Printf("%s  %s\n",
			c.render(styleMuted, e.FiredAt.Format("2006-01-02 15:04")),
			e.Kind.Label())
	}
}

// PrintEventCounts prints per-kind fired counts.
func (c *CLIFormatter) PrintEventCounts(counts map[model.ReminderKind]int, since time.Time) {
	c.f.Println(c.render(styleHeader, fmt.Sprintf("Reminders since %s", since.Format("2006-01-02"))))
	for _, kind := range model.AllKinds() {
		c.f.Printf("  %-12s %d\n", kind.Label(), counts[kind])
	}
}

// PrintError prints an error with an optional suggestion.
func (c *CLIFormatter) PrintError(err error, suggestion string) {
	c.f.Printf("Error: %v\n", err)
	if suggestion != "" {
		c.f.Println(c.render(styleMuted, "Hint: "+suggestion))
	}
}
