// Package dates provides the timestamp parsing and formatting helpers shared by
// the CLI.
//
// Phrase resolution works in epoch milliseconds; this package converts those
// to and from the forms a user types or reads:
// - the --now override (dates, datetimes, epoch milliseconds)
// - output formats (ms, rfc3339, date, human)
// - relative descriptions ("3 days ago")
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD layout.
const DateLayout = "2006-01-02"

// RFC3339Milli is RFC3339 with millisecond precision.
const RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"

// HumanLayout is the layout used by the human output format.
const HumanLayout = "Mon Jan 2 2006 15:04:05 MST"

var (
	dateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	epochMsRegex = regexp.MustCompile(`^-?\d+$`)
)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseDatetime parses a datetime in one of the accepted formats.
//
// Accepted formats:
// - RFC3339 (e.g. 2025-01-01T10:30:00Z, 2025-06-15T14:00:00+05:00)
// - YYYY-MM-DDTHH:MM (in loc)
// - YYYY-MM-DDTHH:MM:SS (in loc)
func ParseDatetime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid datetime: empty")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %q", s)
}

// ParseNowArg parses an explicit "current time" argument which can be:
// - an epoch timestamp in milliseconds
// - "YYYY-MM-DD" (midnight in loc)
// - a datetime accepted by ParseDatetime
// An empty string means no override; ok is false.
func ParseNowArg(arg string, loc *time.Location) (t time.Time, ok bool, err error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if epochMsRegex.MatchString(arg) {
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid epoch milliseconds %q: %w", arg, err)
		}
		return time.UnixMilli(ms).In(loc), true, nil
	}
	if IsValidDate(arg) {
		d, err := ParseDate(arg, loc)
		return d, err == nil, err
	}
	if d, err := ParseDatetime(arg, loc); err == nil {
		return d, true, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid time '%s', use epoch milliseconds, YYYY-MM-DD or RFC3339", arg)
}
