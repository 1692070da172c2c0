package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func occDay(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestRoomOccupancy_LoadExpandsInclusiveRange(t *testing.T) {
	occ := NewRoomOccupancy(2, time.UTC)
	occ.Load([]RoomStay{
		{RoomID: 1, StartDate: occDay(10), EndDate: occDay(12)},
	})

	assert.False(t, occ.RoomFree(1, occDay(10), 1))
	assert.False(t, occ.RoomFree(1, occDay(12), 1))
	assert.True(t, occ.RoomFree(1, occDay(13), 1))
	assert.True(t, occ.RoomFree(2, occDay(10), 1))
}

func TestRoomOccupancy_RoomFreeSpan(t *testing.T) {
	occ := NewRoomOccupancy(1, time.UTC)
	occ.Occupy(1, occDay(11), 1)

	// Двухдневное окно, задевающее занятый день, не подходит
	assert.False(t, occ.RoomFree(1, occDay(10), 2))
	assert.False(t, occ.RoomFree(1, occDay(11), 2))
	assert.True(t, occ.RoomFree(1, occDay(12), 2))
	assert.True(t, occ.RoomFree(1, occDay(10), 1))
}

func TestRoomOccupancy_FirstFreeRoomPrefersLowestNumber(t *testing.T) {
	occ := NewRoomOccupancy(3, time.UTC)
	occ.Occupy(1, occDay(10), 2)

	room, ok := occ.FirstFreeRoom(occDay(10), 2)
	assert.True(t, ok)
	assert.Equal(t, 2, room)

	// Комната 1 освобождается после окончания свидания
	room, ok = occ.FirstFreeRoom(occDay(12), 2)
	assert.True(t, ok)
	assert.Equal(t, 1, room)
}

func TestRoomOccupancy_FirstFreeRoomFullHouse(t *testing.T) {
	occ := NewRoomOccupancy(2, time.UTC)
	occ.Occupy(1, occDay(10), 1)
	occ.Occupy(2, occDay(10), 1)

	_, ok := occ.FirstFreeRoom(occDay(10), 1)
	assert.False(t, ok)
}

func TestRoomOccupancy_ZeroRooms(t *testing.T) {
	occ := NewRoomOccupancy(0, time.UTC)

	_, ok := occ.FirstFreeRoom(occDay(10), 1)
	assert.False(t, ok)
}
