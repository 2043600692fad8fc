//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

const platformSupported = true

// platformNotify displays a notification using osascript.
func platformNotify(title, message string, sound bool) error {
	script := fmt.Sprintf(`display notification %q with title %q`, message, title)
	if sound {
		script += ` sound name "Ping"`
	}
	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("osascript notification failed: %w", err)
	}
	return nil
}
