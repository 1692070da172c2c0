package domain

import (
	"time"

	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// SearchPolicy parameterizes one slot search: the minimum number of days
// between processing and the earliest allowed visit start, and the maximum
// number of day-advances before the search gives up.
type SearchPolicy struct {
	LeadTimeDays int
	HorizonDays  int
}

// SlotSearch finds a contiguous block of days and a room for one visit
// request, honoring the sanitary calendar and the occupancy view. The same
// search backs both the batch driver (forward search) and the single-request
// approval (fixed date).
type SlotSearch struct {
	policy    SearchPolicy
	calendar  *SanitaryCalendar
	occupancy *RoomOccupancy
	loc       *time.Location
}

// NewSlotSearch creates a search over the given calendar and occupancy view
func NewSlotSearch(policy SearchPolicy, calendar *SanitaryCalendar, occupancy *RoomOccupancy, loc *time.Location) *SlotSearch {
	return &SlotSearch{
		policy:    policy,
		calendar:  calendar,
		occupancy: occupancy,
		loc:       loc,
	}
}

// EarliestStart returns the lead-time floor: the first day a visit
// processed at now may start
func (s *SlotSearch) EarliestStart(now time.Time) time.Time {
	return dateutil.AddDays(dateutil.StartOfDay(now, s.loc), s.policy.LeadTimeDays)
}

// Find searches forward day by day from the lead-time floor for the first
// (date, room) slot that fits the visit. When the nominal span touches a
// sanitary day the visit is degraded to one day and retried at the same
// date; if even the shortened span is blocked, the candidate jumps past the
// whole sanitary run. Degradation is reconsidered from the nominal duration
// at every candidate date and is never carried forward. Returns
// ErrNoSlotFound once the horizon is exhausted.
func (s *SlotSearch) Find(now time.Time, visitType VisitType) (*Assignment, error) {
	floor := s.EarliestStart(now)
	candidate := floor

	for tries := 0; tries < s.policy.HorizonDays; tries++ {
		days := visitType.Days()
		effective := visitType

		if s.calendar.IsBlockedSpan(candidate, days) {
			if days > 1 {
				effective = visitType.Degrade()
				days = effective.Days()
			}

			if s.calendar.IsBlockedSpan(candidate, days) {
				next := s.calendar.NextClearDay(candidate, days)
				if !next.After(candidate) {
					next = dateutil.AddDays(candidate, 1)
				}
				if next.Before(floor) {
					next = floor
				}
				candidate = next
				continue
			}
		}

		if room, ok := s.occupancy.FirstFreeRoom(candidate, days); ok {
			return &Assignment{
				StartDate: candidate,
				EndDate:   dateutil.AddDays(candidate, days-1),
				RoomID:    room,
				Days:      days,
				VisitType: effective,
			}, nil
		}

		candidate = dateutil.AddDays(candidate, 1)
	}

	return nil, ErrNoSlotFound
}

// FindAt validates a fixed, administrator-chosen start date. There is no
// forward search and no degradation: a sanitary conflict or a full house
// fails fast so the administrator can pick another date.
func (s *SlotSearch) FindAt(start time.Time, visitType VisitType) (*Assignment, error) {
	start = dateutil.StartOfDay(start, s.loc)
	days := visitType.Days()

	if s.calendar.IsBlockedSpan(start, days) {
		return nil, ErrSanitaryConflict
	}

	room, ok := s.occupancy.FirstFreeRoom(start, days)
	if !ok {
		return nil, ErrNoRoomAvailable
	}

	return &Assignment{
		StartDate: start,
		EndDate:   dateutil.AddDays(start, days-1),
		RoomID:    room,
		Days:      days,
		VisitType: visitType,
	}, nil
}
