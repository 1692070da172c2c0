package domain

import "time"

// VisitStatus represents the lifecycle status of a visit booking
type VisitStatus string

const (
	StatusPending  VisitStatus = "pending"
	StatusApproved VisitStatus = "approved"
	StatusClosed   VisitStatus = "closed"
	StatusRejected VisitStatus = "rejected"
	StatusCanceled VisitStatus = "canceled"
)

// VisitType represents the nominal visit category
type VisitType string

const (
	VisitShort VisitType = "short" // 1 day
	VisitLong  VisitType = "long"  // 2 days
	VisitExtra VisitType = "extra" // 3 days
)

// Days returns the nominal visit duration in calendar days
func (v VisitType) Days() int {
	switch v {
	case VisitLong:
		return 2
	case VisitExtra:
		return 3
	default:
		return 1
	}
}

// Degrade returns the fallback category applied when a sanitary day blocks
// the nominal span. Degradation always goes straight to the one-day visit.
func (v VisitType) Degrade() VisitType {
	return VisitShort
}

// IsValid reports whether v is a known visit type
func (v VisitType) IsValid() bool {
	return v == VisitShort || v == VisitLong || v == VisitExtra
}

// VisitTypeForDays maps an approved day count (1..3) to a visit type
func VisitTypeForDays(days int) (VisitType, bool) {
	switch days {
	case 1:
		return VisitShort, true
	case 2:
		return VisitLong, true
	case 3:
		return VisitExtra, true
	default:
		return "", false
	}
}

// Relative is one visitor attached to a booking. The list is used only for
// notification text; the first entry is treated as the applicant.
type Relative struct {
	FullName string `json:"full_name"`
	Passport string `json:"passport"`
}

// Booking represents a prison-visit request
type Booking struct {
	ID                      int64
	ColonyID                int64
	ColonyApplicationNumber string
	PrisonerName            string
	VisitType               VisitType
	Status                  VisitStatus
	Relatives               []Relative

	// Chat handle of the applicant, when the request came through the bot
	TelegramChatID *string

	// Set on approval; end date is inclusive: end = start + days - 1
	StartDate *time.Time
	EndDate   *time.Time
	RoomID    *int

	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending reports whether the booking still awaits assignment
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsApproved reports whether the booking has an assigned slot
func (b *Booking) IsApproved() bool {
	return b.Status == StatusApproved
}

// IsTerminal reports whether the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusClosed || b.Status == StatusRejected || b.Status == StatusCanceled
}

// CanBeCancelled reports whether an administrator may cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// ApplicantName returns the first visitor's full name, or "N/A" when the
// visitor list is empty
func (b *Booking) ApplicantName() string {
	if len(b.Relatives) == 0 || b.Relatives[0].FullName == "" {
		return "N/A"
	}
	return b.Relatives[0].FullName
}

// TerminalStatuses lists the statuses with no outgoing transitions
var TerminalStatuses = []VisitStatus{
	StatusClosed,
	StatusRejected,
	StatusCanceled,
}
