// Package cardgen provides small helpers for working with card numbers (PANs).
package cardgen

import "strings"

// NormalizePAN strips spaces and dashes commonly found in user-entered card
// numbers.
func NormalizePAN(pan string) string {
	pan = strings.TrimSpace(pan)
	pan = strings.ReplaceAll(pan, " ", "")
	return strings.ReplaceAll(pan, "-", "")
}

// IsDigits reports whether s is non-empty and contains ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LastN returns the last n characters of s, or s itself when shorter.
func LastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
