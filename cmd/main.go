package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignBatchHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/assign_batch"
	assignBookingHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/assign_booking"
	cancelBookingHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/cancel_booking"
	changeRoomsHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/change_rooms"
	changeSanitaryHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/change_sanitary"
	changeVisitDaysHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/change_visit_days"
	closeExpiredHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/close_expired"
	getBookingsHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/get_bookings"
	getSanitaryHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/get_sanitary"
	getSettingsHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/get_settings"
	rejectBookingHandler "github.com/test-dunyo/meet-booking-service/internal/api/handlers/reject_booking"
	"github.com/test-dunyo/meet-booking-service/internal/api/middleware"
	"github.com/test-dunyo/meet-booking-service/internal/config"
	"github.com/test-dunyo/meet-booking-service/internal/domain"
	bookingRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/booking"
	sanitaryRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/sanitary"
	settingsRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/settings"
	"github.com/test-dunyo/meet-booking-service/internal/integrations/telegram"
	bookingsService "github.com/test-dunyo/meet-booking-service/internal/service/bookings"
	notifierService "github.com/test-dunyo/meet-booking-service/internal/service/notifier"
	sanitaryService "github.com/test-dunyo/meet-booking-service/internal/service/sanitary"
	settingsService "github.com/test-dunyo/meet-booking-service/internal/service/settings"
	"github.com/test-dunyo/meet-booking-service/internal/sweeper"
	assignBatchUC "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_batch"
	assignSingleUC "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_single"
	"github.com/test-dunyo/meet-booking-service/pkg/dbmetrics"
	"github.com/test-dunyo/meet-booking-service/pkg/logger"
	"github.com/test-dunyo/meet-booking-service/pkg/metrics"
	"github.com/test-dunyo/meet-booking-service/pkg/simpletxmanager"
	"github.com/test-dunyo/meet-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting meet-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс расписания: все границы дней считаются в нем
	loc, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	log.Info("Schedule timezone: %s", cfg.Schedule.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем Telegram клиент и сервис уведомлений
	telegramClient := telegram.NewClient(
		cfg.Telegram.BotToken,
		time.Duration(cfg.Telegram.Timeout)*time.Second,
	)
	notifier := notifierService.NewService(telegramClient, log, loc, cfg.Telegram.QueueSize)
	notifier.Start()
	defer notifier.Stop()
	log.Info("Notifier started (queue=%d, timeout=%ds)", cfg.Telegram.QueueSize, cfg.Telegram.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
		sanitaryRepository *sanitaryRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		sanitaryRepository = sanitaryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		sanitaryRepository = sanitaryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Политика поиска слотов
	policy := domain.SearchPolicy{
		LeadTimeDays: cfg.Schedule.LeadTimeDays,
		HorizonDays:  cfg.Schedule.HorizonDays,
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		notifier,
		cfg.Schedule.ClosedRetentionDays,
		loc,
		log,
	)
	sanitarySvc := sanitaryService.NewService(sanitaryRepository, loc, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	assignBatchUseCase := assignBatchUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		sanitaryRepository,
		notifier,
		txMgr,
		policy,
		loc,
		log,
	)
	assignSingleUseCase := assignSingleUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		sanitaryRepository,
		notifier,
		txMgr,
		policy,
		loc,
		log,
	)

	// Инициализируем handlers
	assignBatch := assignBatchHandler.NewHandler(assignBatchUseCase, log)
	assignBooking := assignBookingHandler.NewHandler(assignSingleUseCase, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	changeVisitDays := changeVisitDaysHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getSanitary := getSanitaryHandler.NewHandler(sanitarySvc, log)
	changeSanitary := changeSanitaryHandler.NewHandler(sanitarySvc, log)
	closeExpired := closeExpiredHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	changeRooms := changeRoomsHandler.NewHandler(settingsSvc, log)

	// Запускаем ежедневную уборку просроченных свиданий
	sweep := sweeper.New(cfg.Schedule.CleanupSpec, loc, bookingSvc, settingsRepository, log)
	if err := sweep.Start(); err != nil {
		log.Fatal("Failed to start sweeper: %v", err)
	}
	defer sweep.Stop()

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все маршруты требуют X-Admin-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Заявки ---
	api.HandleFunc("/colonies/{colonyId}/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/colonies/{colonyId}/bookings/assign", assignBatch.Handle).Methods(http.MethodPost)
	api.HandleFunc("/colonies/{colonyId}/bookings/close-expired", closeExpired.Handle).Methods(http.MethodPost)
	api.HandleFunc("/colonies/{colonyId}/bookings/{bookingId}/assign", assignBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/colonies/{colonyId}/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/colonies/{colonyId}/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/colonies/{colonyId}/bookings/{bookingId}/days", changeVisitDays.Handle).Methods(http.MethodPatch)

	// --- Настройки колонии ---
	api.HandleFunc("/colonies/{colonyId}/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/colonies/{colonyId}/settings/rooms", changeRooms.Handle).Methods(http.MethodPatch)

	// --- Санитарные дни ---
	api.HandleFunc("/colonies/{colonyId}/sanitary-days", getSanitary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/colonies/{colonyId}/sanitary-days", changeSanitary.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
