package schedule

import (
	"strings"
	"testing"
	"time"

	"nba-schedule-service/internal/testutil"
	"nba-schedule-service/internal/timeutil"
)

func fixedResolver(t *testing.T, ref time.Time) *Resolver {
	t.Helper()
	return NewResolver(time.UTC).WithClock(testutil.NowAt(ref))
}

func TestResolveCurrentYear(t *testing.T) {
	// 2025-03-15 is a Saturday.
	r := fixedResolver(t, testutil.MidSeason2025)

	got, err := r.Resolve("Saturday, March 15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-03-15" {
		t.Fatalf("expected 2025-03-15, got %s", got)
	}
}

func TestResolveFallsBackOneYear(t *testing.T) {
	// 2025-03-15 is a Saturday, but 2024-03-15 is a Friday: the weekday is
	// the only signal that the page is showing last season's date.
	r := fixedResolver(t, testutil.MidSeason2025)

	got, err := r.Resolve("Friday, March 15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-15" {
		t.Fatalf("expected 2024-03-15, got %s", got)
	}
}

func TestResolveWeekdayMismatchAfterCorrectionFails(t *testing.T) {
	// March 15 is neither a Monday in 2025 nor in 2024. The resolver must
	// not return a mismatched date; only one year of drift is corrected.
	r := fixedResolver(t, testutil.MidSeason2025)

	_, err := r.Resolve("Monday, March 15")
	if err == nil {
		t.Fatal("expected error")
	}
	pe, ok := AsParseError(err)
	if !ok {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if !strings.Contains(pe.Reason, "weekday mismatch") {
		t.Fatalf("unexpected reason %q", pe.Reason)
	}
}

func TestResolveMalformedInputs(t *testing.T) {
	r := fixedResolver(t, testutil.MidSeason2025)

	cases := []struct {
		input  string
		reason string
	}{
		{"Saturday March 15", "missing comma"},
		{"Saturday, March", "expected month and day"},
		{"Saturday, March 15 2025", "expected month and day"},
		{"Saturday, Marzo 15", "unknown month"},
		{"Saturday, March fifteen", "non-numeric day"},
		// time.Date would quietly roll these into the following month.
		{"Sunday, February 30", "does not exist"},
		{"Saturday, April 31", "does not exist"},
		{"Saturday, February 29", "does not exist"},
	}

	for _, tc := range cases {
		_, err := r.Resolve(tc.input)
		if err == nil {
			t.Fatalf("expected error for %q", tc.input)
		}
		pe, ok := AsParseError(err)
		if !ok {
			t.Fatalf("expected ParseError for %q, got %T", tc.input, err)
		}
		if !strings.Contains(pe.Reason, tc.reason) {
			t.Fatalf("input %q: expected reason containing %q, got %q", tc.input, tc.reason, pe.Reason)
		}
	}
}

func TestResolveRoundTrip(t *testing.T) {
	// For any date in the reference year or the year before, formatting its
	// weekday/month/day back into partial text must resolve to the same date.
	r := fixedResolver(t, testutil.MidSeason2025)

	dates := []string{
		"2025-03-15", "2025-01-01", "2024-12-31", "2024-07-04", "2024-03-20", "2025-02-28",
	}
	for _, date := range dates {
		parsed, err := timeutil.ParseDate(date)
		if err != nil {
			t.Fatalf("bad test date %s: %v", date, err)
		}
		partial := parsed.Weekday().String() + ", " + parsed.Month().String() + " " + parsed.Format("2")

		got, err := r.Resolve(partial)
		if err != nil {
			t.Fatalf("resolve %q: %v", partial, err)
		}
		if got != date {
			t.Fatalf("round trip for %s via %q: got %s", date, partial, got)
		}
	}
}

func TestResolveUsesConfiguredTimezoneForReferenceYear(t *testing.T) {
	// 2024-01-01 00:30 UTC is still 2023-12-31 in New York. The reference
	// year must come from the configured zone: in New York the candidate
	// years are 2023/2022, under UTC they would be 2024/2023.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	ref := time.Date(2024, time.January, 1, 0, 30, 0, 0, time.UTC)
	r := NewResolver(loc).WithClock(testutil.NowAt(ref))

	// 2022-12-31 is a Saturday. Only the New York candidate years reach it;
	// a UTC-based resolver would fail both its candidates.
	got, err := r.Resolve("Saturday, December 31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2022-12-31" {
		t.Fatalf("expected 2022-12-31, got %s", got)
	}
}
