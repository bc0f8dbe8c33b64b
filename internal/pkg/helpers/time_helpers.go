package helpers

import (
	"time"
)

// DateLayout is the date-only format used for payment, issue, due, admission
// and exam dates throughout the API.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in DateLayout format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDate renders a time as a date-only string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether s is a well-formed date-only string.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
