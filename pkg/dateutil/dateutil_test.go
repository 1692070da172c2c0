package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tashkent")
	require.NoError(t, err)

	// 23:30 UTC это уже следующий день в Ташкенте (UTC+5)
	utc := time.Date(2025, time.March, 1, 23, 30, 0, 0, time.UTC)
	got := StartOfDay(utc, loc)

	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, loc), got)
}

func TestStartOfDay_Idempotent(t *testing.T) {
	day := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, StartOfDay(day, time.UTC))
}

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	day := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), AddDays(day, 2))
	assert.Equal(t, time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC), AddDays(day, -2))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 2, 1, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 2, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}

func TestKey(t *testing.T) {
	day := time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-02", Key(day))
}

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2025-03-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("02.03.2025", time.UTC)
	assert.Error(t, err)
}
