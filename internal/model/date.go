package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dates are entered and displayed as DD/MM/YYYY. The extraction service is
// not always tidy about it, so parsing tolerates single-digit day/month and
// spaces around the slashes.
var dmyPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*/\s*(\d{1,2})\s*/\s*(\d{4})\s*$`)

// Fallback layouts tried when the input is not in DD/MM/YYYY form.
var fallbackLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a record date. DD/MM/YYYY (with optional spacing) is
// tried first, then a handful of general layouts. The returned time is
// truncated to midnight UTC so values compare by calendar day.
func ParseDate(s string) (time.Time, error) {
	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components (32/01 becomes
		// 01/02), which would silently accept impossible dates.
		if t.Day() != day || int(t.Month()) != month || t.Year() != year {
			return time.Time{}, fmt.Errorf("invalid calendar date: %q", s)
		}
		return t, nil
	}

	trimmed := strings.TrimSpace(s)
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", s)
}

// ValidDate reports whether a date cell is acceptable: empty, or a real
// calendar date no later than now's calendar day.
func ValidDate(s string, now time.Time) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !t.After(today)
}

// CanonicalDate converts a display date to the YYYY-MM-DD form sent to the
// backend. Empty stays empty; unparseable input is passed through trimmed,
// the grid refuses to save such rows anyway.
func CanonicalDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	t, err := ParseDate(trimmed)
	if err != nil {
		return trimmed
	}
	return t.Format("2006-01-02")
}

// DisplayDate converts a stored date back to DD/MM/YYYY for the grid and
// history views. Unparseable input is returned as-is.
func DisplayDate(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	t, err := ParseDate(trimmed)
	if err != nil {
		return trimmed
	}
	return t.Format("02/01/2006")
}
