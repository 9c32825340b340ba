package schedule

import (
	"strings"
	"time"
)

// monthsByName maps lowercase English month names to their calendar month.
// The table is immutable and safe to share across concurrent extractions.
var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// MonthNumber resolves an English month name (any casing) to its calendar
// month. The second return is false when the name is not recognized.
func MonthNumber(name string) (time.Month, bool) {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(name))]
	return month, ok
}

// MonthName returns the English name for a calendar month, or false when the
// month is outside 1-12.
func MonthName(month time.Month) (string, bool) {
	if month < time.January || month > time.December {
		return "", false
	}
	return month.String(), true
}
