package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/restup/restup/internal/errors"
)

// relativeRegex matches relative time expressions like "+5m", "+1h", "+2d".
var relativeRegex = regexp.MustCompile(`^\+(\d+)([smhdw])$`)

// ParseUntil parses a pause-until expression into a future time.
// Supports formats like:
//   - "+30m", "+2h", "+1d" (relative)
//   - "tomorrow 9am", "monday 14:00" (natural language)
//   - "2026-09-01 09:00" (ISO format)
func ParseUntil(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.NewUserError("pause time is required",
			"Give a time like +30m, \"tomorrow 9am\" or an ISO timestamp")
	}

	if matches := relativeRegex.FindStringSubmatch(input); matches != nil {
		return parseRelativeUntil(matches[1], matches[2])
	}

	// Natural language and ISO formats via go-dateparser.
	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField("until", input,
			"could not parse pause time",
			"Give a time like +30m, \"tomorrow 9am\" or an ISO timestamp")
	}

	if result.Time.Before(time.Now()) {
		// A past time of day today means tomorrow.
		if isSameDay(result.Time, time.Now()) {
			return result.Time.AddDate(0, 0, 1), nil
		}
		return time.Time{}, errors.NewUserErrorWithField("until", input,
			"pause time must be in the future",
			"Give a future time, for example \"tomorrow 9am\"")
	}

	return result.Time, nil
}

// parseRelativeUntil parses relative time expressions.
func parseRelativeUntil(numStr, unit string) (time.Time, error) {
	num, _ := strconv.Atoi(numStr)
	if num < 1 {
		return time.Time{}, errors.NewUserErrorWithField("until", "+"+numStr+unit,
			errors.ErrInvalidDuration.Error(),
			"Use a positive offset like +30m")
	}

	var d time.Duration
	switch unit {
	case "s":
		d = time.Duration(num) * time.Second
	case "m":
		d = time.Duration(num) * time.Minute
	case "h":
		d = time.Duration(num) * time.Hour
	case "d":
		d = time.Duration(num) * 24 * time.Hour
	case "w":
		d = time.Duration(num) * 7 * 24 * time.Hour
	}
	return time.Now().Add(d), nil
}

// isSameDay returns true if both times fall on the same calendar day.
func isSameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
