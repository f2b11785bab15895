package utils

import (
	"database/sql"
	"time"
)

// ISO8601 renders t in UTC with millisecond precision. Values in this
// layout order correctly as plain strings.
const ISO8601 = "2006-01-02T15:04:05.000Z"

// FormatISO formats t as ISO8601, or "" for the zero time.
func FormatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(ISO8601)
}

// FormatNullISO formats a nullable column.
func FormatNullISO(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return FormatISO(t.Time)
}
