package domain

import "time"

// WallClockLayout is the serialization format for event timestamps:
// local wall-clock fields, no zone designator, never UTC-normalized.
const WallClockLayout = "2006-01-02T15:04:05"

// FormatWallClock serializes t's wall-clock fields.
func FormatWallClock(t time.Time) string {
	return t.Format(WallClockLayout)
}

// ParseWallClock parses a stored timestamp. It accepts the canonical
// wall-clock layout first, then falls back to RFC3339 for values that
// arrived through the REST API with a zone suffix.
func ParseWallClock(s string) (time.Time, error) {
	if t, err := time.Parse(WallClockLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// NormalizeWallClock reformats any accepted timestamp string into the
// canonical wall-clock layout, dropping zone information if present.
// Unparseable input is returned unchanged.
func NormalizeWallClock(s string) string {
	t, err := ParseWallClock(s)
	if err != nil {
		return s
	}
	return FormatWallClock(t)
}
