package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	settingsRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/settings"
	"github.com/test-dunyo/meet-booking-service/internal/service/settings/models"
)

type fakeSettingsRepo struct {
	settings *domain.ColonySettings
	updated  []int

	getErr    error
	updateErr error
}

func (f *fakeSettingsRepo) GetByColony(_ context.Context, _ int64) (*domain.ColonySettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) UpdateRoomsCount(_ context.Context, _ int64, roomsCount int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, roomsCount)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestGet(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &domain.ColonySettings{
		ColonyID:    7,
		RoomsCount:  12,
		AdminChatID: "-100200300",
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ColonyID)
	assert.Equal(t, 12, resp.RoomsCount)
	assert.Equal(t, "-100200300", resp.AdminChatID)
}

func TestGet_NotFound(t *testing.T) {
	repo := &fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdateRooms(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateRooms(context.Background(), 7, &models.UpdateRoomsRequest{RoomsCount: 15})
	require.NoError(t, err)
	assert.Equal(t, []int{15}, repo.updated)
}

func TestUpdateRooms_InvalidCount(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateRooms(context.Background(), 7, &models.UpdateRoomsRequest{RoomsCount: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateRooms(context.Background(), 7, &models.UpdateRoomsRequest{RoomsCount: MaxRoomsCount + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.updated)
}

func TestUpdateRooms_NotFound(t *testing.T) {
	repo := &fakeSettingsRepo{updateErr: settingsRepo.ErrSettingsNotFound}
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateRooms(context.Background(), 7, &models.UpdateRoomsRequest{RoomsCount: 15})
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}
