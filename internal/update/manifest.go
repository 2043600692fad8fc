package update

import "time"

// Manifest is the remote release manifest document.
type Manifest struct {
	Version          string `json:"version"`
	ReleaseDate      string `json:"releaseDate"`
	DownloadURL      string `json:"downloadURL"`
	ReleaseNotes     string `json:"releaseNotes"`
	MinimumOSVersion string `json:"minimumOSVersion"`
}

// ReleasedAt parses the release date, returning the zero time if it is
// missing or malformed.
func (m *Manifest) ReleasedAt() time.Time {
	if m.ReleaseDate == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, m.ReleaseDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Result is the outcome of an update check.
type Result struct {
	// Available is true if the manifest advertises a newer version.
	Available bool `json:"available"`
	// Applicable is false if the release requires a newer OS than the
	// one reported by the caller.
	Applicable bool `json:"applicable"`
	// CurrentVersion is the version the check compared against.
	CurrentVersion string `json:"current_version"`
	// Manifest is the fetched manifest.
	Manifest *Manifest `json:"manifest,omitempty"`
}
