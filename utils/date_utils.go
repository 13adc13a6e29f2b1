package utils

import "time"

// DateLayout is the ISO calendar-date form used on the wire.
const DateLayout = "2006-01-02"

// Accepted inbound period formats, tried in order.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseDate parses a date string in any of the accepted formats and
// normalizes it to a pure UTC calendar date (midnight). Both date-only and
// date-time forms round-trip to the same stored value.
func ParseDate(dateStr string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// FormatDate renders a time as an ISO calendar-date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
