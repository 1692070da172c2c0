package sanitary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sanitaryRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/sanitary"
	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary/models"
)

type fakeSanitaryRepo struct {
	days    []time.Time
	added   []time.Time
	removed []time.Time

	removeErr error
}

func (f *fakeSanitaryRepo) ListByColony(_ context.Context, _ int64) ([]time.Time, error) {
	return f.days, nil
}

func (f *fakeSanitaryRepo) Add(_ context.Context, _ int64, day time.Time) error {
	f.added = append(f.added, day)
	return nil
}

func (f *fakeSanitaryRepo) Remove(_ context.Context, _ int64, day time.Time) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, day)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestService(repo *fakeSanitaryRepo) *Service {
	svc := NewService(repo, time.UTC, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func TestList(t *testing.T) {
	repo := &fakeSanitaryRepo{days: []time.Time{
		time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-15", "2025-04-01"}, resp.Days)
}

func TestToggle_Add(t *testing.T) {
	repo := &fakeSanitaryRepo{}
	svc := newTestService(repo)

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-20", Action: models.ActionAdd})
	require.NoError(t, err)
	require.Len(t, repo.added, 1)
	assert.Equal(t, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), repo.added[0])
}

func TestToggle_Remove(t *testing.T) {
	repo := &fakeSanitaryRepo{}
	svc := newTestService(repo)

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-20", Action: models.ActionRemove})
	require.NoError(t, err)
	require.Len(t, repo.removed, 1)
}

func TestToggle_RemoveMissingDay(t *testing.T) {
	repo := &fakeSanitaryRepo{removeErr: sanitaryRepo.ErrDayNotFound}
	svc := newTestService(repo)

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-20", Action: models.ActionRemove})
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestToggle_PastDate(t *testing.T) {
	svc := newTestService(&fakeSanitaryRepo{})

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-09", Action: models.ActionAdd})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestToggle_TodayAllowed(t *testing.T) {
	repo := &fakeSanitaryRepo{}
	svc := newTestService(repo)

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-10", Action: models.ActionAdd})
	require.NoError(t, err)
	require.Len(t, repo.added, 1)
}

func TestToggle_InvalidInput(t *testing.T) {
	svc := newTestService(&fakeSanitaryRepo{})

	err := svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "20-03-2025", Action: models.ActionAdd})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Toggle(context.Background(), 1, &models.ToggleDayRequest{Date: "2025-03-20", Action: "toggle"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
