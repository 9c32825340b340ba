package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MidSeason2025 is a reference instant inside the 2024-25 season, handy for
// date-resolution tests.
var MidSeason2025 = time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
