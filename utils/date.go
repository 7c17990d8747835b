package utils

import (
	"fmt"
	"time"
)

// Booking times are entered and displayed as Tokyo wall-clock time. A fixed
// UTC+9 offset stands in for a real timezone database.
var OffsetZone = time.FixedZone("JST", 9*3600)

// ToOffsetInstant interprets a "YYYY-MM-DD" + "HH:mm" pair as UTC+9 wall-clock
// time and returns the absolute instant. The result does not depend on the
// process-local timezone. Seconds are always :00.
func ToOffsetInstant(dateStr, timeStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, OffsetZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", dateStr, timeStr, err)
	}
	return t, nil
}

// FormatOffsetTime renders an instant as 24-hour "HH:mm" in UTC+9.
func FormatOffsetTime(t time.Time) string {
	return t.In(OffsetZone).Format("15:04")
}

// FormatOffsetDate renders an instant as "YYYY-MM-DD" in UTC+9.
func FormatOffsetDate(t time.Time) string {
	return t.In(OffsetZone).Format("2006-01-02")
}
