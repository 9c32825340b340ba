package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nba-schedule-service/internal/timeutil"
)

// Resolver converts partial "Weekday, Month Day" texts into absolute
// YYYY-MM-DD dates. The page omits the year, so the resolver forms a
// candidate in the reference year and checks it against the weekday named in
// the text; on mismatch it retries one year back. The weekday is the sole
// disambiguation signal and corrects exactly one year of drift.
type Resolver struct {
	now func() time.Time
	loc *time.Location
}

// NewResolver constructs a Resolver that evaluates "now" in the given
// location. A nil location falls back to UTC.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{
		now: time.Now,
		loc: loc,
	}
}

// WithClock overrides the reference time source. Intended for tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve turns a partial date like "Friday, March 15" into "2024-03-15" or
// "2025-03-15" depending on which year matches the named weekday.
func (r *Resolver) Resolve(text string) (string, error) {
	weekday, monthDay, found := strings.Cut(text, ",")
	if !found {
		return "", &ParseError{Text: text, Reason: "missing comma separator"}
	}
	weekday = strings.TrimSpace(weekday)

	parts := strings.Fields(monthDay)
	if len(parts) != 2 {
		return "", &ParseError{Text: text, Reason: "expected month and day after comma"}
	}

	month, ok := MonthNumber(parts[0])
	if !ok {
		return "", &ParseError{Text: text, Reason: fmt.Sprintf("unknown month %q", parts[0])}
	}

	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", &ParseError{Text: text, Reason: fmt.Sprintf("non-numeric day %q", parts[1])}
	}

	year := r.now().In(r.loc).Year()
	candidate := time.Date(year, month, day, 0, 0, 0, 0, r.loc)
	// time.Date normalizes out-of-range days into the next month, so the
	// candidate must still carry the month and day the text named.
	if candidate.Month() != month || candidate.Day() != day {
		return "", &ParseError{Text: text, Reason: fmt.Sprintf("day %d does not exist in %s", day, parts[0])}
	}
	if candidate.Weekday().String() == weekday {
		return timeutil.FormatDate(candidate), nil
	}

	// The page may still show dates from the previous year around the turn
	// of the year; a single year of drift is all this corrects.
	candidate = time.Date(year-1, month, day, 0, 0, 0, 0, r.loc)
	if candidate.Month() == month && candidate.Day() == day && candidate.Weekday().String() == weekday {
		return timeutil.FormatDate(candidate), nil
	}

	// Known gap: the source defines no further fallback. Returning a
	// mismatched date would be worse than skipping the day.
	return "", &ParseError{Text: text, Reason: "weekday mismatch after year correction"}
}
