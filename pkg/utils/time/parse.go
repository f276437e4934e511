// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the formats found in RSS/Atom feeds with a dateparse fallback for the rest

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Common time formats found in RSS/Atom feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04 MST",
	"Mon, 02 Jan 2006 15:04 -0700",
}

// zoneOffsets are the abbreviations time.Parse cannot resolve on its own, in seconds east of UTC
var zoneOffsets = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// fixZone reapplies a known abbreviation's offset when parsing fabricated a zero one
func fixZone(t time.Time) time.Time {
	name, offset := t.Zone()
	want, ok := zoneOffsets[strings.ToUpper(name)]
	if !ok || offset == want {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(strings.ToUpper(name), want))
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Zone-less values are read as UTC. Returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return fixZone(t)
		}
	}

	if t, err := dateparse.ParseIn(timeStr, time.UTC); err == nil {
		return fixZone(t)
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// ParseWithNow attempts to parse a time string, returning current time if parsing fails
func ParseWithNow(timeStr string) time.Time {
	return ParseWithDefault(timeStr, time.Now())
}
