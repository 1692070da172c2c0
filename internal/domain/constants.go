package domain

// Default scheduling policy values
const (
	DefaultLeadTimeDays = 10
	DefaultHorizonDays  = 60
	DefaultRoomsCount   = 10
)

// Business validation constants
const (
	MinBatchCount = 1
	MaxBatchCount = 50

	MinVisitDays = 1
	MaxVisitDays = 3

	MaxRejectionReasonLength = 500
)

// DateFormat is the wire representation of calendar days (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DefaultTimezone is the colony-local zone all day-boundary math runs in
const DefaultTimezone = "Asia/Tashkent"
