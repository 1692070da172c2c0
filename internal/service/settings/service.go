package settings

import (
	"context"
	"errors"
	"fmt"

	settingsRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/settings"
	"github.com/test-dunyo/meet-booking-service/internal/service/settings/models"
)

// MaxRoomsCount верхняя граница количества комнат в одной колонии
const MaxRoomsCount = 1000

// Service сервис настроек колоний
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает настройки колонии
func (s *Service) Get(ctx context.Context, colonyID int64) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for colony=%d", colonyID)

	cfg, err := s.settingsRepo.GetByColony(ctx, colonyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: settings not found for colony=%d", colonyID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error for colony=%d: %v", colonyID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(cfg), nil
}

// UpdateRooms меняет количество комнат для свиданий. Уменьшение не
// затрагивает уже одобренные свидания: новые назначения просто перестают
// попадать в убранные комнаты.
func (s *Service) UpdateRooms(ctx context.Context, colonyID int64, req *models.UpdateRoomsRequest) error {
	s.logger.Info("UpdateRooms: colony=%d, rooms=%d", colonyID, req.RoomsCount)

	if req.RoomsCount < 1 || req.RoomsCount > MaxRoomsCount {
		s.logger.Warn("UpdateRooms: invalid rooms count %d for colony=%d", req.RoomsCount, colonyID)
		return fmt.Errorf("%w: rooms count must be between 1 and %d", ErrInvalidInput, MaxRoomsCount)
	}

	if err := s.settingsRepo.UpdateRoomsCount(ctx, colonyID, req.RoomsCount); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("UpdateRooms: settings not found for colony=%d", colonyID)
			return ErrSettingsNotFound
		}
		s.logger.Error("UpdateRooms: repository error for colony=%d: %v", colonyID, err)
		return fmt.Errorf("%w: UpdateRooms - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRooms: colony=%d now has %d rooms", colonyID, req.RoomsCount)
	return nil
}
