package domain

import "errors"

var (
	// ErrNoSlotFound is returned when the search horizon is exhausted
	// without finding a valid (date, room) slot
	ErrNoSlotFound = errors.New("domain: no slot found within search horizon")

	// ErrSanitaryConflict is returned by the fixed-date search when the
	// requested span touches a sanitary day
	ErrSanitaryConflict = errors.New("domain: requested span conflicts with a sanitary day")

	// ErrNoRoomAvailable is returned by the fixed-date search when every
	// room is occupied for the requested span
	ErrNoRoomAvailable = errors.New("domain: no room available for the requested span")
)
