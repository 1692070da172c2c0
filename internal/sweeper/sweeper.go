// Package sweeper запускает ежедневное закрытие просроченных свиданий
package sweeper

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса заявок
type BookingService interface {
	CloseExpired(ctx context.Context, colonyID int64) (*models.CloseExpiredResponse, error)
}

// SettingsRepository интерфейс репозитория настроек колоний
type SettingsRepository interface {
	List(ctx context.Context) ([]*domain.ColonySettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper по расписанию обходит все колонии и закрывает просроченные
// свидания. Время срабатывания считается в зоне колоний.
type Sweeper struct {
	cron         *cron.Cron
	spec         string
	bookingSvc   BookingService
	settingsRepo SettingsRepository
	logger       Logger
}

// New создает планировщик с cron-выражением spec (например "1 0 * * *")
func New(spec string, loc *time.Location, bookingSvc BookingService, settingsRepo SettingsRepository, logger Logger) *Sweeper {
	return &Sweeper{
		cron:         cron.New(cron.WithLocation(loc)),
		spec:         spec,
		bookingSvc:   bookingSvc,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Sweeper: started with spec %q", s.spec)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего прогона
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Sweeper: stopped")
}

// run выполняет один прогон по всем колониям. Ошибка одной колонии не
// прерывает обход остальных.
func (s *Sweeper) run() {
	ctx := context.Background()

	colonies, err := s.settingsRepo.List(ctx)
	if err != nil {
		s.logger.Error("Sweeper: failed to list colonies: %v", err)
		return
	}

	for _, settings := range colonies {
		resp, err := s.bookingSvc.CloseExpired(ctx, settings.ColonyID)
		if err != nil {
			s.logger.Error("Sweeper: colony=%d sweep failed: %v", settings.ColonyID, err)
			continue
		}
		if resp.ClosedCount > 0 || resp.PurgedCount > 0 {
			s.logger.Info("Sweeper: colony=%d closed=%d purged=%d",
				settings.ColonyID, resp.ClosedCount, resp.PurgedCount)
		}
	}
}
