package domain

import (
	"time"

	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// SanitaryCalendar is the colony-scoped set of sanitary (blackout) days.
// A visit may not start, continue, or end on a sanitary day. The day
// immediately before a span is also disallowed (the earliest admission
// morning must not follow a sanitation closure), and so is the day
// immediately after it.
type SanitaryCalendar struct {
	days map[string]struct{}
	loc  *time.Location
}

// NewSanitaryCalendar builds a calendar from the colony's sanitary dates
func NewSanitaryCalendar(dates []time.Time, loc *time.Location) *SanitaryCalendar {
	days := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		days[dateutil.Key(dateutil.StartOfDay(d, loc))] = struct{}{}
	}
	return &SanitaryCalendar{days: days, loc: loc}
}

// IsBlocked reports whether the given calendar day is a sanitary day
func (c *SanitaryCalendar) IsBlocked(day time.Time) bool {
	_, ok := c.days[dateutil.Key(dateutil.StartOfDay(day, c.loc))]
	return ok
}

// IsBlockedSpan reports whether a visit of the given length starting at
// start touches a sanitary day. The check covers [start-1, start+days]:
// the span itself plus the adjacent day on each side.
func (c *SanitaryCalendar) IsBlockedSpan(start time.Time, days int) bool {
	start = dateutil.StartOfDay(start, c.loc)
	for d := -1; d <= days; d++ {
		if c.IsBlocked(dateutil.AddDays(start, d)) {
			return true
		}
	}
	return false
}

// NextClearDay returns the day after the last day of the contiguous
// sanitary run overlapping the window [start-1, start+days]. Skipping the
// whole run avoids re-testing candidate dates known to fail. When nothing
// in the window is blocked, start is returned unchanged.
func (c *SanitaryCalendar) NextClearDay(start time.Time, days int) time.Time {
	start = dateutil.StartOfDay(start, c.loc)

	var runEnd time.Time
	found := false
	for d := -1; d <= days; d++ {
		day := dateutil.AddDays(start, d)
		if c.IsBlocked(day) {
			runEnd = day
			found = true
		}
	}
	if !found {
		return start
	}

	// Extend past the blocked run that contains the last blocked day
	for c.IsBlocked(dateutil.AddDays(runEnd, 1)) {
		runEnd = dateutil.AddDays(runEnd, 1)
	}

	return dateutil.AddDays(runEnd, 1)
}

// Len returns the number of sanitary days in the calendar
func (c *SanitaryCalendar) Len() int {
	return len(c.days)
}
