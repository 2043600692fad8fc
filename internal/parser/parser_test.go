package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restup/restup/internal/errors"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"30m", 30},
		{"30 minutes", 30},
		{"1h", 60},
		{"1 hour", 60},
		{"1h30m", 90},
		{"2h", 120},
		{"45", 45},
		{"20min", 20},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, err := ParseInterval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, input := range []string{"", "0", "-5", "abc", "0m", "30x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseInterval(input)
			require.Error(t, err)
			assert.True(t, errors.IsUserError(err))
		})
	}
}

func TestParseUntilRelative(t *testing.T) {
	until, err := ParseUntil("+30m")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), until, 2*time.Second)

	until, err = ParseUntil("+2h")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), until, 2*time.Second)

	until, err = ParseUntil("+1d")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), until, 2*time.Second)
}

func TestParseUntilNaturalLanguage(t *testing.T) {
	until, err := ParseUntil("tomorrow 9am")
	require.NoError(t, err)
	assert.True(t, until.After(time.Now()))
	assert.Equal(t, 9, until.Hour())
}

func TestParseUntilISO(t *testing.T) {
	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	until, err := ParseUntil(future + " 09:00")
	require.NoError(t, err)
	assert.Equal(t, 9, until.Hour())
}

func TestParseUntilErrors(t *testing.T) {
	_, err := ParseUntil("")
	assert.True(t, errors.IsUserError(err))

	_, err = ParseUntil("not a time at all zzz")
	assert.Error(t, err)

	_, err = ParseUntil("2001-01-01 09:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "future")
}
