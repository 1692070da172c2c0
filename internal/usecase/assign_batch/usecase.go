package assign_batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	settingsRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/settings"
	"github.com/test-dunyo/meet-booking-service/pkg/dateutil"
)

// UseCase use case пакетного распределения pending-заявок по комнатам и датам
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

// Execute выполняет пакетное распределение: берет до req.Count самых старых
// pending-заявок колонии (FIFO по created_at) и для каждой ищет ближайший
// допустимый слот. Заявки без слота в горизонте пропускаются, пакет
// продолжается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignBatch: colony=%d, count=%d", req.ColonyID, req.Count)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignBatch: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки колонии (количество комнат)
	settings, err := uc.settingsRepo.GetByColony(ctx, req.ColonyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("AssignBatch: settings for colony=%d not found", req.ColonyID)
			return nil, ErrColonyConfigMissing
		}
		uc.logger.Error("AssignBatch: failed to get settings for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to get colony settings: %v", ErrInternal, err)
	}

	// 4. Окно поиска: от начала сегодняшнего дня до конца горизонта.
	// Запас в MaxVisitDays+1 покрывает хвост многодневного свидания и
	// проверку дня после окончания.
	from := dateutil.StartOfDay(now, uc.loc)
	to := dateutil.AddDays(from, uc.policy.LeadTimeDays+uc.policy.HorizonDays+domain.MaxVisitDays+1)

	// 5. Загружаем санитарные дни колонии в окне поиска
	sanitaryDays, err := uc.sanitaryRepo.ListRange(ctx, req.ColonyID, from, to)
	if err != nil {
		uc.logger.Error("AssignBatch: failed to load sanitary days for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to load sanitary days: %v", ErrInternal, err)
	}
	calendar := domain.NewSanitaryCalendar(sanitaryDays, uc.loc)

	// 6. Загружаем занятость комнат одобренными свиданиями в окне поиска
	stays, err := uc.bookingRepo.GetApprovedStays(ctx, req.ColonyID, from, to)
	if err != nil {
		uc.logger.Error("AssignBatch: failed to load approved stays for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to load approved stays: %v", ErrInternal, err)
	}
	occupancy := domain.NewRoomOccupancy(settings.RoomsCount, uc.loc)
	occupancy.Load(stays)

	search := domain.NewSlotSearch(uc.policy, calendar, occupancy, uc.loc)

	// 7. Получаем самые старые pending-заявки
	pending, err := uc.bookingRepo.GetOldestPending(ctx, req.ColonyID, req.Count)
	if err != nil {
		uc.logger.Error("AssignBatch: failed to get pending bookings for colony=%d: %v", req.ColonyID, err)
		return nil, fmt.Errorf("%w: failed to get pending bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("AssignBatch: colony=%d, pending=%d, rooms=%d, sanitary=%d",
		req.ColonyID, len(pending), settings.RoomsCount, calendar.Len())

	resp := &Response{
		TotalCount:  len(pending),
		Assignments: make([]AssignmentResult, 0, len(pending)),
	}

	// 8. Распределяем заявки в порядке поступления
	for _, booking := range pending {
		// 8.1. Ищем ближайший допустимый слот
		assignment, err := search.Find(now, booking.VisitType)
		if err != nil {
			if errors.Is(err, domain.ErrNoSlotFound) {
				uc.logger.Warn("AssignBatch: no slot for booking id=%d (type=%s), skipping",
					booking.ID, booking.VisitType)
				resp.SkippedCount++
				continue
			}
			uc.logger.Error("AssignBatch: search failed for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: slot search failed: %v", ErrInternal, err)
		}

		// 8.2. Сохраняем назначение в сериализуемой транзакции
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			return uc.bookingRepo.Assign(txCtx, req.ColonyID, booking.ID, assignment)
		})
		if err != nil {
			// Ошибка одной заявки не валит пакет: слот не бронируем,
			// переходим к следующей заявке
			uc.logger.Error("AssignBatch: failed to persist assignment for booking id=%d: %v",
				booking.ID, err)
			resp.SkippedCount++
			continue
		}

		// 8.3. Бронируем слот в памяти, чтобы следующие заявки его не заняли
		occupancy.Occupy(assignment.RoomID, assignment.StartDate, assignment.Days)

		// 8.4. Уведомляем заявителя и администрацию колонии
		uc.notifier.BookingApproved(booking, assignment, settings.AdminChatID)

		uc.logger.Info("AssignBatch: booking id=%d assigned: start=%s, room=%d, days=%d, type=%s",
			booking.ID, assignment.StartDate.Format(domain.DateFormat),
			assignment.RoomID, assignment.Days, assignment.VisitType)

		resp.AssignedCount++
		resp.Assignments = append(resp.Assignments, AssignmentResult{
			BookingID:         booking.ID,
			ApplicationNumber: booking.ColonyApplicationNumber,
			StartDate:         assignment.StartDate,
			EndDate:           assignment.EndDate,
			RoomID:            assignment.RoomID,
			Days:              assignment.Days,
			VisitType:         string(assignment.VisitType),
		})
	}

	uc.logger.Info("AssignBatch: colony=%d done: total=%d, assigned=%d, skipped=%d",
		req.ColonyID, resp.TotalCount, resp.AssignedCount, resp.SkippedCount)

	return resp, nil
}
