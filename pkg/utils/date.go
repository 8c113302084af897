package utils

import (
	"time"
)

// DisplayLayout mirrors the "M/D/YYYY, h:mm:ss AM" form used on page subtitles.
const DisplayLayout = "1/2/2006, 3:04:05 PM"

// TimeNowLocal returns the current time in the local zone.
func TimeNowLocal() time.Time {
	return time.Now().In(time.Local)
}

// PrettyDate formats t for "Last updated" style subtitles.
func PrettyDate(t time.Time) string {
	return t.Format(DisplayLayout)
}

// PrettyTimestamp reformats an RFC 3339 / ISO 8601 timestamp for display.
// Unparseable input is returned untouched.
func PrettyTimestamp(ts string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return PrettyDate(t)
		}
	}
	return ts
}
