package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthOf returns the calendar month of a YYYY-MM-DD date string.
func MonthOf(value string) (time.Month, error) {
	t, err := ParseDate(value)
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid date %q: %w", value, err)
	}
	return t.Month(), nil
}
