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

	cancelBookingHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/get_booking"
	getSlotAvailabilityHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/get_slot_availability"
	getUserBookingsHandler "github.com/k1rasov/GMP-BookingService/internal/api/handlers/get_user_bookings"
	"github.com/k1rasov/GMP-BookingService/internal/api/middleware"
	"github.com/k1rasov/GMP-BookingService/internal/config"
	"github.com/k1rasov/GMP-BookingService/internal/events"
	bookingRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/booking"
	reconciliationRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/reconciliation"
	slotRepo "github.com/k1rasov/GMP-BookingService/internal/infra/storage/slot"
	authServiceClient "github.com/k1rasov/GMP-BookingService/internal/integrations/authservice"
	paymentGateClient "github.com/k1rasov/GMP-BookingService/internal/integrations/paymentgate"
	bookingsService "github.com/k1rasov/GMP-BookingService/internal/service/bookings"
	slotsService "github.com/k1rasov/GMP-BookingService/internal/service/slots"
	cancelBookingUC "github.com/k1rasov/GMP-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/k1rasov/GMP-BookingService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/k1rasov/GMP-BookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/k1rasov/GMP-BookingService/internal/usecase/get_available_slots"
	resolveRefundsUC "github.com/k1rasov/GMP-BookingService/internal/usecase/resolve_refunds"
	"github.com/k1rasov/GMP-BookingService/pkg/dbmetrics"
	"github.com/k1rasov/GMP-BookingService/pkg/logger"
	"github.com/k1rasov/GMP-BookingService/pkg/metrics"
	"github.com/k1rasov/GMP-BookingService/pkg/simpletxmanager"
	"github.com/k1rasov/GMP-BookingService/pkg/txmanager"
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

	log.Info("Starting GMP-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentGateClient.NewClient(
		cfg.PaymentGate.URL,
		cfg.PaymentGate.APIKey,
		time.Duration(cfg.PaymentGate.Timeout)*time.Second,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentGate=%s timeout=%ds, AuthService=%s timeout=%ds)",
		cfg.PaymentGate.URL, cfg.PaymentGate.Timeout, cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository           *slotRepo.Repository
		bookingRepository        *bookingRepo.Repository
		reconciliationRepository *reconciliationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		reconciliationRepository = reconciliationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		reconciliationRepository = reconciliationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &createBookingUC.RealTimeProvider{}
	emitter := events.NewLogEmitter(log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, timeProvider, log)
	slotSvc := slotsService.NewService(slotRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		reconciliationRepository,
		paymentClient,
		txMgr,
		emitter,
		timeProvider,
		cfg.PaymentGate.Currency,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		emitter,
		&cancelBookingUC.RealTimeProvider{},
		log,
	)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		slotRepository,
		&getAvailableDatesUC.RealTimeProvider{},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)

	// Фоновый дожим возвратов по тикетам расхождений
	resolveRefundsUseCase := resolveRefundsUC.NewUseCase(reconciliationRepository, paymentClient, log)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go resolveRefundsUseCase.Run(sweepCtx, 5*time.Minute)
	log.Info("Refund resolution sweeper started")

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(slotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Даты месяца со свободными слотами
	api.HandleFunc("/workshops/{workshopId}/available-dates",
		getAvailableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/workshops/{workshopId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Перепроверка доступности слота перед оплатой
	api.HandleFunc("/slots/{slotId}/availability",
		getSlotAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authClient, log))

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновый дожим возвратов
	stopSweep()

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
