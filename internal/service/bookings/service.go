package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	bookingRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/booking"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// Service сервис административных операций над заявками
type Service struct {
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	notifier      Notifier
	timeProvider  TimeProvider
	retentionDays int
	loc           *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	notifier Notifier,
	retentionDays int,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		notifier:      notifier,
		timeProvider:  &RealTimeProvider{},
		retentionDays: retentionDays,
		loc:           loc,
		logger:        logger,
	}
}

// List возвращает все активные заявки колонии для административной таблицы
func (s *Service) List(ctx context.Context, colonyID int64) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for colony=%d", colonyID)

	bookings, err := s.bookingRepo.ListActive(ctx, colonyID)
	if err != nil {
		s.logger.Error("List: repository error for colony=%d: %v", colonyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for colony=%d", len(bookings), colonyID)
	return models.FromDomainBookingList(bookings), nil
}

// Reject отклоняет pending-заявку с указанием причины
func (s *Service) Reject(ctx context.Context, colonyID, id int64, req *models.RejectBookingRequest) error {
	s.logger.Info("Reject: rejecting booking id=%d in colony=%d", id, colonyID)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("Reject: empty reason for booking id=%d", id)
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if len([]rune(reason)) > domain.MaxRejectionReasonLength {
		s.logger.Warn("Reject: reason too long for booking id=%d", id)
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxRejectionReasonLength)
	}

	booking, err := s.getBooking(ctx, colonyID, id, "Reject")
	if err != nil {
		return err
	}

	if !booking.IsPending() {
		s.logger.Warn("Reject: booking id=%d has status %s", id, booking.Status)
		return ErrAlreadyProcessed
	}

	if err := s.bookingRepo.Reject(ctx, colonyID, id, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrAlreadyProcessed
		}
		s.logger.Error("Reject: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.notifier.BookingRejected(booking, reason, s.adminChatID(ctx, colonyID))

	s.logger.Info("Reject: successfully rejected booking id=%d", id)
	return nil
}

// Cancel отменяет заявку (pending или approved)
func (s *Service) Cancel(ctx context.Context, colonyID, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d in colony=%d", id, colonyID)

	booking, err := s.getBooking(ctx, colonyID, id, "Cancel")
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, colonyID, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.notifier.BookingCanceled(booking, s.adminChatID(ctx, colonyID))

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// ChangeVisitDays меняет длительность pending-заявки по количеству дней (1..3)
func (s *Service) ChangeVisitDays(ctx context.Context, colonyID, id int64, req *models.ChangeVisitDaysRequest) error {
	s.logger.Info("ChangeVisitDays: booking id=%d in colony=%d, days=%d", id, colonyID, req.Days)

	visitType, ok := domain.VisitTypeForDays(req.Days)
	if !ok {
		s.logger.Warn("ChangeVisitDays: invalid days=%d for booking id=%d", req.Days, id)
		return fmt.Errorf("%w: days must be between %d and %d",
			ErrInvalidInput, domain.MinVisitDays, domain.MaxVisitDays)
	}

	booking, err := s.getBooking(ctx, colonyID, id, "ChangeVisitDays")
	if err != nil {
		return err
	}

	if !booking.IsPending() {
		s.logger.Warn("ChangeVisitDays: booking id=%d has status %s", id, booking.Status)
		return ErrAlreadyProcessed
	}

	if err := s.bookingRepo.UpdateVisitType(ctx, colonyID, id, visitType); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrAlreadyProcessed
		}
		s.logger.Error("ChangeVisitDays: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangeVisitDays - repository error: %v", ErrInternal, err)
	}

	s.notifier.VisitDaysChanged(booking, req.Days, s.adminChatID(ctx, colonyID))

	s.logger.Info("ChangeVisitDays: booking id=%d set to type=%s", id, visitType)
	return nil
}

// CloseExpired закрывает одобренные свидания с истекшей датой окончания и
// удаляет закрытые записи старше окна хранения. Вызывается планировщиком
// раз в сутки и вручную через API.
func (s *Service) CloseExpired(ctx context.Context, colonyID int64) (*models.CloseExpiredResponse, error) {
	s.logger.Info("CloseExpired: sweeping colony=%d", colonyID)

	today := dateutil.StartOfDay(s.timeProvider.Now(), s.loc)

	expired, err := s.bookingRepo.GetApprovedExpired(ctx, colonyID, today)
	if err != nil {
		s.logger.Error("CloseExpired: repository error for colony=%d: %v", colonyID, err)
		return nil, fmt.Errorf("%w: CloseExpired - repository error: %v", ErrInternal, err)
	}

	adminChatID := s.adminChatID(ctx, colonyID)

	resp := &models.CloseExpiredResponse{}
	for _, booking := range expired {
		if err := s.bookingRepo.Close(ctx, colonyID, booking.ID); err != nil {
			// Заявку могли отменить между выборкой и закрытием
			s.logger.Warn("CloseExpired: failed to close booking id=%d: %v", booking.ID, err)
			continue
		}
		s.notifier.BookingClosed(booking, adminChatID)
		resp.ClosedCount++
	}

	cutoff := dateutil.AddDays(today, -s.retentionDays)
	purged, err := s.bookingRepo.DeleteClosedBefore(ctx, colonyID, cutoff)
	if err != nil {
		s.logger.Error("CloseExpired: purge failed for colony=%d: %v", colonyID, err)
		return nil, fmt.Errorf("%w: CloseExpired - purge failed: %v", ErrInternal, err)
	}
	resp.PurgedCount = purged

	s.logger.Info("CloseExpired: colony=%d closed=%d purged=%d", colonyID, resp.ClosedCount, resp.PurgedCount)
	return resp, nil
}

func (s *Service) getBooking(ctx context.Context, colonyID, id int64, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, colonyID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found in colony=%d", method, id, colonyID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// adminChatID возвращает чат администрации колонии. Отсутствие настроек не
// блокирует операцию, уведомление администрации просто не уйдет.
func (s *Service) adminChatID(ctx context.Context, colonyID int64) string {
	settings, err := s.settingsRepo.GetByColony(ctx, colonyID)
	if err != nil {
		s.logger.Warn("adminChatID: failed to get settings for colony=%d: %v", colonyID, err)
		return ""
	}
	return settings.AdminChatID
}
