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

	cancelBookingHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/cancel_booking"
	createBlackoutHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/create_blackout"
	createBoatHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/create_boat"
	createBookingHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/create_booking"
	deleteBlackoutHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/delete_blackout"
	getAvailableSlotsHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/get_booking"
	getPlanningHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/get_planning"
	listBlackoutsHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/list_blackouts"
	listBoatsHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/list_boats"
	staffCreateBookingHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/staff_create_booking"
	updateBoatHandler "github.com/sweetnarcisse/SN-BookingService/internal/api/handlers/update_boat"
	"github.com/sweetnarcisse/SN-BookingService/internal/api/middleware"
	"github.com/sweetnarcisse/SN-BookingService/internal/config"
	blackoutRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/blackout"
	boatRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/boat"
	bookingRepo "github.com/sweetnarcisse/SN-BookingService/internal/infra/storage/booking"
	blackoutsService "github.com/sweetnarcisse/SN-BookingService/internal/service/blackouts"
	bookingsService "github.com/sweetnarcisse/SN-BookingService/internal/service/bookings"
	fleetService "github.com/sweetnarcisse/SN-BookingService/internal/service/fleet"
	createBookingUC "github.com/sweetnarcisse/SN-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/sweetnarcisse/SN-BookingService/internal/usecase/get_available_slots"
	"github.com/sweetnarcisse/SN-BookingService/pkg/dbmetrics"
	"github.com/sweetnarcisse/SN-BookingService/pkg/logger"
	"github.com/sweetnarcisse/SN-BookingService/pkg/metrics"
	"github.com/sweetnarcisse/SN-BookingService/pkg/simpletxmanager"
	"github.com/sweetnarcisse/SN-BookingService/pkg/txmanager"
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

	log.Info("Starting SN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Конфигурация расписания и цен - фатальна при ошибке
	scheduleCfg, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	pricing := cfg.Pricing.ToDomain()
	log.Info("Schedule configured: timezone=%s, open=%s, close=%s, fleet rotation offsets=%v",
		cfg.Schedule.Timezone, cfg.Schedule.OpenTime, cfg.Schedule.CloseTime, cfg.Schedule.RotationOffsets)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		boatRepository     *boatRepo.Repository
		blackoutRepository *blackoutRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		boatRepository = boatRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		boatRepository = boatRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	fleetSvc := fleetService.NewService(
		boatRepository,
		cfg.Cache.FleetTTL(),
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		scheduleCfg,
		log,
	)
	blackoutSvc := blackoutsService.NewService(
		blackoutRepository,
		scheduleCfg,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		fleetSvc,
		blackoutSvc,
		txMgr,
		scheduleCfg,
		pricing,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		fleetSvc,
		blackoutSvc,
		scheduleCfg,
		pricing,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	staffCreateBooking := staffCreateBookingHandler.NewHandler(createBookingUseCase, log)
	getPlanning := getPlanningHandler.NewHandler(bookingSvc, log)
	listBoats := listBoatsHandler.NewHandler(fleetSvc, log)
	createBoat := createBoatHandler.NewHandler(fleetSvc, log)
	updateBoat := updateBoatHandler.NewHandler(fleetSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(blackoutSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(blackoutSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(blackoutSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты отправления на день
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// ============================================================
	// STAFF ROUTES (требуют X-Staff-Role header)
	// ============================================================

	staff := protected.PathPrefix("/staff").Subrouter()
	staff.Use(middleware.StaffOnly)

	// Создание бронирования сотрудником (override, разбиение группы)
	staff.HandleFunc("/bookings", staffCreateBooking.Handle).Methods(http.MethodPost)

	// Планирование причала на день
	staff.HandleFunc("/planning", getPlanning.Handle).Methods(http.MethodGet)

	// --- Управление флотом ---
	staff.HandleFunc("/boats", listBoats.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/boats", createBoat.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/boats/{boatId}", updateBoat.Handle).Methods(http.MethodPatch)

	// --- Блокировки расписания ---
	staff.HandleFunc("/blackouts", listBlackouts.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/blackouts/{blackoutId}", deleteBlackout.Handle).Methods(http.MethodDelete)

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
