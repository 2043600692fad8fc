// Package parser parses user-supplied intervals and pause expressions.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/restup/restup/internal/errors"
)

// intervalPattern matches interval expressions like "30m", "1h", "1h30m",
// "90" (bare minutes).
var intervalPattern = regexp.MustCompile(`(?i)^(\d+)\s*(h|hr|hrs|hour|hours|m|min|mins|minute|minutes)?\s*(?:(\d+)\s*(m|min|mins|minute|minutes))?$`)

// ParseInterval parses a reminder interval and returns it in whole minutes.
// Supports formats like:
//   - "30m" or "30 minutes"
//   - "1h" or "1 hour"
//   - "1h30m"
//   - "45" (bare number of minutes)
func ParseInterval(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errors.NewUserError("interval is required",
			"Give an interval like 20m, 1h or 45")
	}

	// Bare number means minutes.
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 {
			return 0, invalidInterval(input)
		}
		return n, nil
	}

	matches := intervalPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, invalidInterval(input)
	}

	var total time.Duration
	if matches[1] != "" {
		value, _ := strconv.Atoi(matches[1])
		unit := strings.ToLower(matches[2])
		if unit == "" {
			unit = "m"
		}
		total += unitToDuration(value, unit)
	}
	if matches[3] != "" {
		value, _ := strconv.Atoi(matches[3])
		total += unitToDuration(value, strings.ToLower(matches[4]))
	}

	minutes := int(total / time.Minute)
	if minutes < 1 {
		return 0, invalidInterval(input)
	}
	return minutes, nil
}

// unitToDuration converts a value and unit to a duration.
func unitToDuration(value int, unit string) time.Duration {
	switch unit {
	case "h", "hr", "hrs", "hour", "hours":
		return time.Duration(value) * time.Hour
	default:
		return time.Duration(value) * time.Minute
	}
}

func invalidInterval(value string) error {
	return errors.NewUserErrorWithField("interval", value,
		errors.ErrInvalidInterval.Error(),
		"Give an interval like 20m, 1h or 45")
}
