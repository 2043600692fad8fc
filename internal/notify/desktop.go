package notify

// Desktop sends a desktop notification for the host platform. On macOS this
// uses osascript; elsewhere it is a no-op returning ErrUnsupported.
type Desktop struct {
	// Sound plays the platform alert sound with the notification.
	Sound bool
}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{Sound: true}
}

// Notify displays a desktop notification with the given title and message.
func (d *Desktop) Notify(title, message string) error {
	return platformNotify(title, message, d.Sound)
}

// Supported returns true if the platform has a desktop notifier.
func (d *Desktop) Supported() bool {
	return platformSupported
}
