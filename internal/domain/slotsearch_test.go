package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var searchNow = time.Date(2025, time.March, 1, 13, 45, 0, 0, time.UTC)

func searchDay(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newSearch(rooms int, sanitaryDays ...time.Time) (*SlotSearch, *RoomOccupancy) {
	policy := SearchPolicy{LeadTimeDays: DefaultLeadTimeDays, HorizonDays: DefaultHorizonDays}
	cal := NewSanitaryCalendar(sanitaryDays, time.UTC)
	occ := NewRoomOccupancy(rooms, time.UTC)
	return NewSlotSearch(policy, cal, occ, time.UTC), occ
}

func TestEarliestStart(t *testing.T) {
	search, _ := newSearch(1)

	// Минимальный срок отсчитывается от начала текущего дня
	assert.Equal(t, searchDay(11), search.EarliestStart(searchNow))
}

func TestFind_EarliestDayWhenAllClear(t *testing.T) {
	search, _ := newSearch(2)

	a, err := search.Find(searchNow, VisitLong)
	require.NoError(t, err)

	assert.Equal(t, searchDay(11), a.StartDate)
	assert.Equal(t, searchDay(12), a.EndDate)
	assert.Equal(t, 1, a.RoomID)
	assert.Equal(t, 2, a.Days)
	assert.Equal(t, VisitLong, a.VisitType)
}

func TestFind_OccupiedRoomPushesToNextRoom(t *testing.T) {
	search, occ := newSearch(2)
	occ.Occupy(1, searchDay(11), 1)

	a, err := search.Find(searchNow, VisitShort)
	require.NoError(t, err)

	assert.Equal(t, searchDay(11), a.StartDate)
	assert.Equal(t, 2, a.RoomID)
}

func TestFind_FullDayPushesToNextDay(t *testing.T) {
	search, occ := newSearch(1)
	occ.Occupy(1, searchDay(11), 1)

	a, err := search.Find(searchNow, VisitShort)
	require.NoError(t, err)

	assert.Equal(t, searchDay(12), a.StartDate)
	assert.Equal(t, 1, a.RoomID)
}

func TestFind_SanitaryRunSkipped(t *testing.T) {
	// Санитарные дни 10-12 блокируют старт 11 и соседние дни
	search, _ := newSearch(1, searchDay(10), searchDay(11), searchDay(12))

	a, err := search.Find(searchNow, VisitShort)
	require.NoError(t, err)

	// День 13 задевает день 12, первый допустимый старт 14
	assert.Equal(t, searchDay(14), a.StartDate)
	assert.Equal(t, 1, a.Days)
}

func TestFind_DegradesLongToShort(t *testing.T) {
	// День 13 блокирует номинальное двухдневное окно (день после
	// окончания), однодневное окно остается чистым
	search, _ := newSearch(1, searchDay(13))

	a, err := search.Find(searchNow, VisitLong)
	require.NoError(t, err)

	assert.Equal(t, searchDay(11), a.StartDate)
	assert.Equal(t, searchDay(11), a.EndDate)
	assert.Equal(t, 1, a.Days)
	assert.Equal(t, VisitShort, a.VisitType)
}

func TestFind_DegradationNotCarriedForward(t *testing.T) {
	// Дальше по горизонту свидание снова рассматривается в полную длину
	search, occ := newSearch(1, searchDay(13))
	occ.Occupy(1, searchDay(11), 1)
	occ.Occupy(1, searchDay(12), 1)

	a, err := search.Find(searchNow, VisitLong)
	require.NoError(t, err)

	// Старт 15: день 14 чист как день накануне, окно 15-16 свободно
	assert.Equal(t, searchDay(15), a.StartDate)
	assert.Equal(t, 2, a.Days)
	assert.Equal(t, VisitLong, a.VisitType)
}

func TestFind_HorizonExhausted(t *testing.T) {
	search, _ := newSearch(0)

	_, err := search.Find(searchNow, VisitShort)
	assert.ErrorIs(t, err, ErrNoSlotFound)
}

func TestFindAt_Success(t *testing.T) {
	search, _ := newSearch(1)

	a, err := search.FindAt(searchDay(20), VisitExtra)
	require.NoError(t, err)

	assert.Equal(t, searchDay(20), a.StartDate)
	assert.Equal(t, searchDay(22), a.EndDate)
	assert.Equal(t, 3, a.Days)
	assert.Equal(t, VisitExtra, a.VisitType)
}

func TestFindAt_SanitaryConflict(t *testing.T) {
	// Без понижения категории: конфликт возвращается сразу
	search, _ := newSearch(1, searchDay(21))

	_, err := search.FindAt(searchDay(20), VisitLong)
	assert.ErrorIs(t, err, ErrSanitaryConflict)
}

func TestFindAt_NoRoomAvailable(t *testing.T) {
	search, occ := newSearch(1)
	occ.Occupy(1, searchDay(21), 1)

	_, err := search.FindAt(searchDay(20), VisitLong)
	assert.ErrorIs(t, err, ErrNoRoomAvailable)
}
