package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func calDay(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestSanitaryCalendar_IsBlocked(t *testing.T) {
	cal := NewSanitaryCalendar([]time.Time{calDay(10)}, time.UTC)

	assert.True(t, cal.IsBlocked(calDay(10)))
	assert.False(t, cal.IsBlocked(calDay(9)))
	assert.False(t, cal.IsBlocked(calDay(11)))

	// Время внутри дня не влияет на принадлежность дню
	assert.True(t, cal.IsBlocked(time.Date(2025, time.March, 10, 18, 30, 0, 0, time.UTC)))
}

func TestSanitaryCalendar_IsBlockedSpan(t *testing.T) {
	cal := NewSanitaryCalendar([]time.Time{calDay(10)}, time.UTC)

	// Однодневное свидание: запрещены дни 9, 10 и 11
	assert.True(t, cal.IsBlockedSpan(calDay(9), 1))
	assert.True(t, cal.IsBlockedSpan(calDay(10), 1))
	assert.True(t, cal.IsBlockedSpan(calDay(11), 1))
	assert.False(t, cal.IsBlockedSpan(calDay(8), 1))
	assert.False(t, cal.IsBlockedSpan(calDay(12), 1))

	// Двухдневное свидание, заканчивающееся накануне санитарного дня,
	// тоже запрещено (день после окончания)
	assert.True(t, cal.IsBlockedSpan(calDay(8), 2))
	assert.False(t, cal.IsBlockedSpan(calDay(7), 2))

	// Начало сразу после санитарного дня запрещено (день накануне),
	// спустя день уже можно
	assert.True(t, cal.IsBlockedSpan(calDay(11), 2))
	assert.False(t, cal.IsBlockedSpan(calDay(12), 2))
}

func TestSanitaryCalendar_NextClearDay(t *testing.T) {
	cal := NewSanitaryCalendar([]time.Time{calDay(10), calDay(11), calDay(14)}, time.UTC)

	// Прогон 10-11 перекрывает окно: следующий чистый день 12
	assert.Equal(t, calDay(12), cal.NextClearDay(calDay(10), 1))
	assert.Equal(t, calDay(12), cal.NextClearDay(calDay(9), 1))

	// Окно задевает день 14: возвращается день после него
	assert.Equal(t, calDay(15), cal.NextClearDay(calDay(13), 1))

	// Ничего не заблокировано: start возвращается как есть
	assert.Equal(t, calDay(20), cal.NextClearDay(calDay(20), 2))
}

func TestSanitaryCalendar_NextClearDaySkipsWholeRun(t *testing.T) {
	// Смежный прогон продолжается за пределы окна
	cal := NewSanitaryCalendar([]time.Time{calDay(10), calDay(11), calDay(12), calDay(13)}, time.UTC)

	assert.Equal(t, calDay(14), cal.NextClearDay(calDay(9), 1))
}

func TestSanitaryCalendar_Len(t *testing.T) {
	cal := NewSanitaryCalendar([]time.Time{calDay(10), calDay(10), calDay(11)}, time.UTC)
	assert.Equal(t, 2, cal.Len())
}
