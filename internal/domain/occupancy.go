package domain

import (
	"time"

	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// RoomStay is one approved booking's footprint: a room and an inclusive
// date range
type RoomStay struct {
	RoomID    int
	StartDate time.Time
	EndDate   time.Time
}

// RoomOccupancy answers "is room R free on day D" against the approved
// bookings of one colony. The stays are expanded into per-room day sets
// once per batch, so each check is a set-membership test instead of a
// storage round trip. Assignments made during a batch are folded back in
// via Occupy before the next request is evaluated.
type RoomOccupancy struct {
	rooms    int
	occupied map[int]map[string]struct{}
	loc      *time.Location
}

// NewRoomOccupancy creates an occupancy view for rooms 1..rooms
func NewRoomOccupancy(rooms int, loc *time.Location) *RoomOccupancy {
	return &RoomOccupancy{
		rooms:    rooms,
		occupied: make(map[int]map[string]struct{}, rooms),
		loc:      loc,
	}
}

// Load expands approved stays into the per-room occupied-day sets
func (o *RoomOccupancy) Load(stays []RoomStay) {
	for _, stay := range stays {
		start := dateutil.StartOfDay(stay.StartDate, o.loc)
		end := dateutil.StartOfDay(stay.EndDate, o.loc)
		for day := start; !day.After(end); day = dateutil.AddDays(day, 1) {
			o.occupy(stay.RoomID, day)
		}
	}
}

// Rooms returns the configured room count
func (o *RoomOccupancy) Rooms() int {
	return o.rooms
}

// RoomFree reports whether the room is free for every day of the span
func (o *RoomOccupancy) RoomFree(room int, start time.Time, days int) bool {
	set, ok := o.occupied[room]
	if !ok {
		return true
	}
	start = dateutil.StartOfDay(start, o.loc)
	for d := 0; d < days; d++ {
		if _, taken := set[dateutil.Key(dateutil.AddDays(start, d))]; taken {
			return false
		}
	}
	return true
}

// FirstFreeRoom scans rooms 1..N in order and returns the first room whose
// entire span is free. Lowest room number wins, which packs bookings toward
// low-numbered rooms.
func (o *RoomOccupancy) FirstFreeRoom(start time.Time, days int) (int, bool) {
	for room := 1; room <= o.rooms; room++ {
		if o.RoomFree(room, start, days) {
			return room, true
		}
	}
	return 0, false
}

// Occupy marks the span as taken in the given room
func (o *RoomOccupancy) Occupy(room int, start time.Time, days int) {
	start = dateutil.StartOfDay(start, o.loc)
	for d := 0; d < days; d++ {
		o.occupy(room, dateutil.AddDays(start, d))
	}
}

func (o *RoomOccupancy) occupy(room int, day time.Time) {
	set, ok := o.occupied[room]
	if !ok {
		set = make(map[string]struct{})
		o.occupied[room] = set
	}
	set[dateutil.Key(day)] = struct{}{}
}
