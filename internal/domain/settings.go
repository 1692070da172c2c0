package domain

import "time"

// ColonySettings is the per-colony configuration record. Rooms are pure
// capacity slots numbered 1..RoomsCount; they have no entity of their own.
type ColonySettings struct {
	ColonyID    int64
	RoomsCount  int
	AdminChatID string // Telegram group of the colony's administrators
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAdminChat reports whether the colony has an admin notification channel
func (s *ColonySettings) HasAdminChat() bool {
	return s.AdminChatID != ""
}
