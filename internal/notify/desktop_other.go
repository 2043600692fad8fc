//go:build !darwin

package notify

const platformSupported = false

// platformNotify is a no-op on platforms without a desktop notifier.
func platformNotify(title, message string, sound bool) error {
	return nil
}
