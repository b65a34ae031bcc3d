// Package civil owns the fixed-offset civil calendar used to bucket
// punches by day. All write and report paths go through this package so
// the bucketing never depends on the host timezone.
package civil

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Brazil civil time. Overridable for deployments in another fixed zone;
// DST zones are deliberately unsupported.
const defaultOffsetHours = -3

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "02-01-2006"
	timeLayout        = "15:04:05"
	displayTimeLayout = "15:04"
)

// Location returns the fixed civil zone (UTC-3 unless overridden via
// PUNCH_TZ_OFFSET_HOURS).
func Location() *time.Location {
	offset := defaultOffsetHours
	if v := os.Getenv("PUNCH_TZ_OFFSET_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
}

// Now returns the current instant in the civil zone.
func Now() time.Time {
	return time.Now().In(Location())
}

// Today returns the current civil date truncated to midnight.
func Today() time.Time {
	return Midnight(Now())
}

// Midnight truncates t to its civil date.
func Midnight(t time.Time) time.Time {
	t = t.In(Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location())
}

// ISODate formats a date as YYYY-MM-DD (storage and ordering format).
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// DisplayDate formats a date as DD-MM-YYYY (presentation format).
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// ClockTime formats an instant as HH:MM:SS.
func ClockTime(t time.Time) string {
	return t.In(Location()).Format(timeLayout)
}

// DisplayTime shortens an HH:MM:SS string to HH:MM for presentation.
// Anything shorter is returned unchanged.
func DisplayTime(hms string) string {
	if len(hms) >= len(displayTimeLayout) {
		return hms[:len(displayTimeLayout)]
	}
	return hms
}

// ParseFilterDate accepts a boundary date in either ISO (YYYY-MM-DD) or
// display (DD-MM-YYYY) form. Filter parameters arrive in both.
func ParseFilterDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(isoDateLayout, s, Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(displayDateLayout, s, Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or DD-MM-YYYY", s)
}
