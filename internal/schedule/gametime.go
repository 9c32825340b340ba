package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches tip-off texts like "7:00 pm ET" or "12:30 PM".
var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)(?:\s+(\w+))?$`)

// FormatGameTime normalizes a 12-hour tip-off text to 24-hour form, keeping
// any trailing zone token ("7:00 pm ET" -> "19:00 ET"). Status texts that are
// not clock times ("Final", "3rd Qtr") return an error; callers keep the raw
// text in that case.
func FormatGameTime(status string) (string, error) {
	matches := clockPattern.FindStringSubmatch(strings.TrimSpace(status))
	if matches == nil {
		return "", fmt.Errorf("not a clock time: %q", status)
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("invalid hour in %q", status)
	}
	minute, err := strconv.Atoi(matches[2])
	if err != nil || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", status)
	}

	if strings.EqualFold(matches[3], "pm") && hour != 12 {
		hour += 12
	}
	if strings.EqualFold(matches[3], "am") && hour == 12 {
		hour = 0
	}

	formatted := fmt.Sprintf("%02d:%02d", hour, minute)
	if zone := matches[4]; zone != "" {
		formatted += " " + strings.ToUpper(zone)
	}
	return formatted, nil
}
