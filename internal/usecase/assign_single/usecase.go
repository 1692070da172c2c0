package assign_single

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	bookingRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/booking"
	settingsRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/settings"
	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// UseCase use case ручного назначения даты одной pending-заявке.
// В отличие от пакетного распределения дата задается администратором,
// поиск вперед и понижение категории не применяются.
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	sanitaryRepo SanitaryRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       domain.SearchPolicy
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	sanitaryRepo SanitaryRepository,
	notifier Notifier,
	txManager TransactionManager,
	policy domain.SearchPolicy,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		sanitaryRepo: sanitaryRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет назначение даты выбранной заявке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignSingle: colony=%d, booking=%d, date=%s",
		req.ColonyID, req.BookingID, req.AssignedDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignSingle: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем заявку
	booking, err := uc.bookingRepo.GetByID(ctx, req.ColonyID, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AssignSingle: booking id=%d not found in colony=%d", req.BookingID, req.ColonyID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AssignSingle: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Назначать дату можно только pending-заявке
	if !booking.IsPending() {
		uc.logger.Warn("AssignSingle: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, ErrAlreadyProcessed
	}

	// 5. Получаем настройки колонии
	settings, err := uc.settingsRepo.GetByColony(ctx, req.ColonyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("AssignSingle: settings for colony=%d not found", req.ColonyID)
			return nil, ErrColonyConfigMissing
		}
		uc.logger.Error("AssignSingle: failed to get settings for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to get colony settings: %v", ErrInternal, err)
	}

	// 6. Проверка даты: не в прошлом и не раньше минимального срока от подачи
	start := dateutil.StartOfDay(req.AssignedDate, uc.loc)
	today := dateutil.StartOfDay(now, uc.loc)
	if start.Before(today) {
		uc.logger.Warn("AssignSingle: booking id=%d assigned date %s is in the past",
			booking.ID, start.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: assigned date is in the past", ErrInvalidInput)
	}

	leadFloor := dateutil.AddDays(dateutil.StartOfDay(booking.CreatedAt, uc.loc), uc.policy.LeadTimeDays)
	if start.Before(leadFloor) {
		uc.logger.Warn("AssignSingle: booking id=%d date %s is before lead floor %s",
			booking.ID, start.Format(domain.DateFormat), leadFloor.Format(domain.DateFormat))
		return nil, ErrLeadTimeViolation
	}

	// 7. Загружаем санитарные дни и занятость вокруг выбранной даты.
	// Окно покрывает день до начала и день после окончания.
	days := booking.VisitType.Days()
	from := dateutil.AddDays(start, -1)
	to := dateutil.AddDays(start, days)

	sanitaryDays, err := uc.sanitaryRepo.ListRange(ctx, req.ColonyID, from, to)
	if err != nil {
		uc.logger.Error("AssignSingle: failed to load sanitary days for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to load sanitary days: %v", ErrInternal, err)
	}
	calendar := domain.NewSanitaryCalendar(sanitaryDays, uc.loc)

	stays, err := uc.bookingRepo.GetApprovedStays(ctx, req.ColonyID, start, to)
	if err != nil {
		uc.logger.Error("AssignSingle: failed to load approved stays for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to load approved stays: %v", ErrInternal, err)
	}
	occupancy := domain.NewRoomOccupancy(settings.RoomsCount, uc.loc)
	occupancy.Load(stays)

	// 8. Проверяем выбранную дату
	search := domain.NewSlotSearch(uc.policy, calendar, occupancy, uc.loc)
	assignment, err := search.FindAt(start, booking.VisitType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSanitaryConflict):
			uc.logger.Warn("AssignSingle: booking id=%d date %s conflicts with sanitary day",
				booking.ID, start.Format(domain.DateFormat))
			return nil, ErrSanitaryConflict
		case errors.Is(err, domain.ErrNoRoomAvailable):
			uc.logger.Warn("AssignSingle: no room available on %s in colony=%d",
				start.Format(domain.DateFormat), req.ColonyID)
			return nil, ErrNoRoomAvailable
		default:
			uc.logger.Error("AssignSingle: slot check failed for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: slot check failed: %v", ErrInternal, err)
		}
	}

	// 9. Сохраняем назначение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return uc.bookingRepo.Assign(txCtx, req.ColonyID, booking.ID, assignment)
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и записью
			uc.logger.Warn("AssignSingle: booking id=%d no longer pending", booking.ID)
			return nil, ErrAlreadyProcessed
		}
		uc.logger.Error("AssignSingle: failed to persist assignment for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to persist assignment: %v", ErrInternal, err)
	}

	// 10. Уведомляем заявителя и администрацию колонии
	uc.notifier.BookingApproved(booking, assignment, settings.AdminChatID)

	uc.logger.Info("AssignSingle: booking id=%d assigned: start=%s, room=%d, days=%d",
		booking.ID, assignment.StartDate.Format(domain.DateFormat), assignment.RoomID, assignment.Days)

	return &Response{
		BookingID:         booking.ID,
		ApplicationNumber: booking.ColonyApplicationNumber,
		StartDate:         assignment.StartDate,
		EndDate:           assignment.EndDate,
		RoomID:            assignment.RoomID,
		Days:              assignment.Days,
		VisitType:         string(assignment.VisitType),
	}, nil
}
