package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"1.2.0", "1.1.9", true},
		{"1.1.9", "1.2.0", false},
		{"1.0", "1.0.0", false},
		{"1.0.0", "1.0", false},
		{"2.0", "1.9.9", true},
		{"1.0.1", "1.0", true},
		{"1.0", "1.0.1", false},
		{"0.9", "1.0", false},
		{"10.0", "9.9", true},
		{"1.10", "1.9", true},
		{"1.2.3.4", "1.2.3", true},
		{"1.2.3", "1.2.3.4", false},
		{"1.0.0", "1.0.0", false},
		{"", "1.0", false},
		{"1.0", "", true},
		{"v1.1", "1.0", true},
		{"1.x", "1.0", false}, // non-numeric component counts as zero
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNewer(tt.a, tt.b))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare("1.0", "1.0.0"))
	assert.Equal(t, 0, Compare("1.2.3", "1.2.3"))
	assert.Equal(t, -1, Compare("1.1.9", "1.2.0"))
	assert.Equal(t, 1, Compare("1.2.0", "1.1.9"))
	assert.Equal(t, 0, Compare("", ""))
}

func TestParseComponents(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, parseComponents("1.2.3"))
	assert.Equal(t, []int{1, 0}, parseComponents("1.x"))
	assert.Equal(t, []int{1, 2}, parseComponents("v1.2"))
	assert.Nil(t, parseComponents(""))
}
