package domain

import "time"

// Assignment is the result of a slot search: a contiguous block of calendar
// days in one room. End date is inclusive. Days may be shorter than the
// request's nominal duration when degradation was applied.
type Assignment struct {
	StartDate time.Time
	EndDate   time.Time
	RoomID    int
	Days      int
	VisitType VisitType
}
