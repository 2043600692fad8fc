// Package update implements the release manifest update checker.
package update

import (
	"strconv"
	"strings"
)

// parseComponents splits a dot-separated version string into integer
// components. Non-numeric components count as zero. A leading "v" is
// tolerated.
func parseComponents(version string) []int {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	if version == "" {
		return nil
	}
	parts := strings.Split(version, ".")
	components := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			n = 0
		}
		components[i] = n
	}
	return components
}

// Compare compares two dot-separated version strings componentwise, with
// missing components treated as zero. It returns -1 if a < b, 0 if equal,
// and 1 if a > b.
func Compare(a, b string) int {
	ca := parseComponents(a)
	cb := parseComponents(b)

	n := len(ca)
	if len(cb) > n {
		n = len(cb)
	}
	for i := 0; i < n; i++ {
		var va, vb int
		if i < len(ca) {
			va = ca[i]
		}
		if i < len(cb) {
			vb = cb[i]
		}
		if va < vb {
			return -1
		}
		if va > vb {
			return 1
		}
	}
	return 0
}

// IsNewer returns true if version a is strictly newer than version b.
func IsNewer(a, b string) bool {
	return Compare(a, b) > 0
}
