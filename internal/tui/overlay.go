package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/restup/restup/internal/model"
)

// OverlayComponent is the full-screen break prompt shown when a reminder
// fires in foreground mode. It stays up until a key is pressed or the
// rest duration elapses.
type OverlayComponent struct {
	Kind     model.ReminderKind
	ShownAt  time.Time
	Deadline time.Time
}

// NewOverlayComponent creates an overlay for the given reminder kind.
func NewOverlayComponent(kind model.ReminderKind, restDuration time.Duration) *OverlayComponent {
	now := time.Now()
	return &OverlayComponent{
		Kind:     kind,
		ShownAt:  now,
		Deadline: now.Add(restDuration),
	}
}

// Expired reports whether the auto-dismiss deadline has passed.
func (oc *OverlayComponent) Expired(now time.Time) bool {
	return now.After(oc.Deadline)
}

// RemainingSeconds returns the whole seconds until auto-dismiss.
func (oc *OverlayComponent) RemainingSeconds(now time.Time) int {
	secs := int(oc.Deadline.Sub(now).Round(time.Second).Seconds())
	if secs < 0 {
		return 0
	}
	return secs
}

// View renders the overlay centered in the given terminal size.
func (oc *OverlayComponent) View(width, height int) string {
	var content strings.Builder

	content.WriteString(StyleRunning.Render(strings.ToUpper(oc.Kind.Label())))
	content.WriteString("\n\n")
	content.WriteString(oc.Kind.Message())
	content.WriteString("\n\n")
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf("resuming in %ds", oc.RemainingSeconds(time.Now()))))
	content.WriteString("\n")
	content.WriteString(StyleSubtitle.Render("press any key to dismiss"))

	box := StyleOverlayBox.Render(content.String())
	if width == 0 || height == 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
