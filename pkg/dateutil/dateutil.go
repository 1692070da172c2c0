// Package dateutil contains calendar-day arithmetic performed in a fixed
// time zone. Every day-boundary computation in the service (lead time,
// sanitary-day comparison, occupancy ranges) goes through these helpers so
// that a booking never shifts a day at the UTC offset.
package dateutil

import "time"

// DayFormat is the canonical YYYY-MM-DD representation of a calendar day.
const DayFormat = "2006-01-02"

// StartOfDay returns t converted to loc and truncated to midnight.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// AddDays shifts t by the given number of calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Key returns the YYYY-MM-DD key of t, suitable for day-set membership.
func Key(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, loc)
}
