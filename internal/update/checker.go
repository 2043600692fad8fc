package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/restup/restup/internal/config"
	"github.com/restup/restup/internal/errors"
	"github.com/restup/restup/internal/logging"
)

// Checker fetches the release manifest and compares versions.
type Checker struct {
	client      *http.Client
	manifestURL string

	// OSVersion is the host OS version used for minimum-version gating.
	// Empty skips the gate.
	OSVersion string
}

// NewChecker creates a checker against the configured manifest URL.
func NewChecker() *Checker {
	return &Checker{
		client: &http.Client{
			Timeout: config.Global.HTTP.Timeout,
		},
		manifestURL: config.Global.Update.ManifestURL,
	}
}

// NewCheckerWithURL creates a checker against a specific manifest URL.
func NewCheckerWithURL(manifestURL string) *Checker {
	c := NewChecker()
	c.manifestURL = manifestURL
	return c
}

// Fetch retrieves and decodes the release manifest.
func (c *Checker) Fetch(ctx context.Context) (*Manifest, error) {
	u, err := url.Parse(c.manifestURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.NewUserErrorWithField("manifest-url", c.manifestURL,
			errors.ErrInvalidURL.Error(),
			"Set RESTUP_MANIFEST_URL to a valid https URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("update check", "cannot build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "restup-update-checker")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("update check", "manifest request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errors.ErrManifestStatus, "HTTP %d from %s", resp.StatusCode, u.Host)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("update check", "cannot read manifest body", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, errors.Wrapf(errors.ErrManifestDecode, "%v", err)
	}
	if manifest.Version == "" {
		return nil, errors.Wrapf(errors.ErrManifestDecode, "manifest has no version field")
	}

	return &manifest, nil
}

// Check fetches the manifest and reports whether a newer, applicable
// release exists for the given current version.
func (c *Checker) Check(ctx context.Context, currentVersion string) (*Result, error) {
	manifest, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{
		CurrentVersion: currentVersion,
		Manifest:       manifest,
		Available:      IsNewer(manifest.Version, currentVersion),
		Applicable:     true,
	}
	if c.OSVersion != "" && manifest.MinimumOSVersion != "" &&
		IsNewer(manifest.MinimumOSVersion, c.OSVersion) {
		result.Applicable = false
	}
	return result, nil
}

// CheckBackground runs a check and logs the outcome instead of returning
// errors. Used by the daemon's scheduled check.
func (c *Checker) CheckBackground(currentVersion string) {
	ctx, cancel := context.WithTimeout(context.Background(), config.Global.HTTP.Timeout)
	defer cancel()

	result, err := c.Check(ctx, currentVersion)
	if err != nil {
		logging.Debug("background update check failed", "error", err)
		return
	}
	if result.Available && result.Applicable {
		logging.Info("update available",
			"current", currentVersion,
			"latest", result.Manifest.Version,
			"url", result.Manifest.DownloadURL)
	} else {
		logging.Debug("no update available", "current", currentVersion, "latest", result.Manifest.Version)
	}
}

// Describe renders a short human-readable summary of a check result.
func Describe(result *Result) string {
	m := result.Manifest
	if !result.Available {
		return fmt.Sprintf("You are up to date (v%s).", result.CurrentVersion)
	}
	if !result.Applicable {
		return fmt.Sprintf("Version %s is available but requires OS %s or newer.",
			m.Version, m.MinimumOSVersion)
	}
	summary := fmt.Sprintf("Version %s is available (you have %s).\nDownload: %s",
		m.Version, result.CurrentVersion, m.DownloadURL)
	if released := m.ReleasedAt(); !released.IsZero() {
		summary += fmt.Sprintf("\nReleased: %s", released.Format("2006-01-02"))
	}
	if m.ReleaseNotes != "" {
		summary += fmt.Sprintf("\n\n%s", m.ReleaseNotes)
	}
	return summary
}
