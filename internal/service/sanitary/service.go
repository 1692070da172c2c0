package sanitary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	sanitaryRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/sanitary"
	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary/models"
	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// Service сервис управления санитарным календарем колонии
type Service struct {
	sanitaryRepo SanitaryRepository
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса санитарных дней
func NewService(sanitaryRepo SanitaryRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		sanitaryRepo: sanitaryRepo,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// List возвращает все санитарные дни колонии
func (s *Service) List(ctx context.Context, colonyID int64) (*models.DayListResponse, error) {
	s.logger.Info("List: fetching sanitary days for colony=%d", colonyID)

	days, err := s.sanitaryRepo.ListByColony(ctx, colonyID)
	if err != nil {
		s.logger.Error("List: repository error for colony=%d: %v", colonyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.DayListResponse{Days: make([]string, 0, len(days))}
	for _, day := range days {
		resp.Days = append(resp.Days, day.Format(domain.DateFormat))
	}

	s.logger.Info("List: colony=%d has %d sanitary days", colonyID, len(resp.Days))
	return resp, nil
}

// Toggle добавляет или снимает санитарный день. Повторное добавление
// существующего дня не является ошибкой.
func (s *Service) Toggle(ctx context.Context, colonyID int64, req *models.ToggleDayRequest) error {
	s.logger.Info("Toggle: colony=%d, date=%s, action=%s", colonyID, req.Date, req.Action)

	day, err := dateutil.ParseDay(req.Date, s.loc)
	if err != nil {
		s.logger.Warn("Toggle: invalid date %q for colony=%d", req.Date, colonyID)
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	today := dateutil.StartOfDay(s.timeProvider.Now(), s.loc)
	if day.Before(today) {
		s.logger.Warn("Toggle: date %s is in the past for colony=%d", req.Date, colonyID)
		return ErrDateInPast
	}

	switch req.Action {
	case models.ActionAdd:
		if err := s.sanitaryRepo.Add(ctx, colonyID, day); err != nil {
			s.logger.Error("Toggle: failed to add day %s for colony=%d: %v", req.Date, colonyID, err)
			return fmt.Errorf("%w: Toggle - failed to add day: %v", ErrInternal, err)
		}
	case models.ActionRemove:
		if err := s.sanitaryRepo.Remove(ctx, colonyID, day); err != nil {
			if errors.Is(err, sanitaryRepo.ErrDayNotFound) {
				s.logger.Warn("Toggle: day %s not found for colony=%d", req.Date, colonyID)
				return ErrDayNotFound
			}
			s.logger.Error("Toggle: failed to remove day %s for colony=%d: %v", req.Date, colonyID, err)
			return fmt.Errorf("%w: Toggle - failed to remove day: %v", ErrInternal, err)
		}
	default:
		s.logger.Warn("Toggle: unknown action %q for colony=%d", req.Action, colonyID)
		return fmt.Errorf("%w: action must be %q or %q", ErrInvalidInput, models.ActionAdd, models.ActionRemove)
	}

	s.logger.Info("Toggle: colony=%d, date=%s, action=%s applied", colonyID, req.Date, req.Action)
	return nil
}
