// Package expiry implements card expiry calculations on integer month/year
// pairs. A card is valid through the end of its expiry month: the cutoff is
// the first instant of the following month.
package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format renders an expiry as MM/YYYY, the wire format of the acquiring bank.
func Format(month, year int) string {
	return fmt.Sprintf("%02d/%04d", month, year)
}

// Parse accepts "MM/YYYY" (unpadded months tolerated) and returns the month
// and year.
func Parse(s string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expiry must be MM/YYYY")
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("expiry month must be 01..12")
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("expiry year must be a positive number")
	}
	return month, year, nil
}

// Cutoff returns the first instant after the expiry month in loc (fallback
// UTC), i.e. the moment the card stops being valid.
func Cutoff(month, year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
}

// InFuture reports whether the expiry is still valid at time 'at'. A card
// expiring in the current month is still valid.
func InFuture(month, year int, at time.Time) bool {
	return at.Before(Cutoff(month, year, at.Location()))
}
