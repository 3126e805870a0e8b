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

	cancelBookingHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/cancel_booking"
	checkinBookingHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/checkin_booking"
	checkoutBookingHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/checkout_booking"
	getDailyWorkloadHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_daily_workload"
	getFacilityBookingsHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_facility_bookings"
	getGroomingConfigHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_grooming_config"
	getNextGroomingSlotHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_next_grooming_slot"
	getTimeblockWorkloadHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_timeblock_workload"
	getWorkloadRangeHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/get_workload_range"
	updateGroomingConfigHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/update_grooming_config"
	validatePrebookingHandler "github.com/PawCareDash/PCD-FacilityService/internal/api/handlers/validate_prebooking"
	"github.com/PawCareDash/PCD-FacilityService/internal/api/middleware"
	"github.com/PawCareDash/PCD-FacilityService/internal/config"
	boardingRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/boarding"
	bookingRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/booking"
	daycareRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/daycare"
	groomingApptRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingappt"
	groomingConfigRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/groomingconfig"
	petServiceClient "github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
	bookingsService "github.com/PawCareDash/PCD-FacilityService/internal/service/bookings"
	groomingConfigService "github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig"
	calculateWorkloadUC "github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
	validatePrebookingUC "github.com/PawCareDash/PCD-FacilityService/internal/usecase/validate_prebooking"
	"github.com/PawCareDash/PCD-FacilityService/pkg/dbmetrics"
	"github.com/PawCareDash/PCD-FacilityService/pkg/logger"
	"github.com/PawCareDash/PCD-FacilityService/pkg/metrics"
	"github.com/PawCareDash/PCD-FacilityService/pkg/simpletxmanager"
	"github.com/PawCareDash/PCD-FacilityService/pkg/txmanager"
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

	log.Info("Starting PCD-FacilityService...")
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

	// Инициализируем клиента PetService
	petClient := petServiceClient.NewClient(
		cfg.PetService.URL,
		time.Duration(cfg.PetService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PetService=%s timeout=%ds)",
		cfg.PetService.URL, cfg.PetService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository        *bookingRepo.Repository
		daycareRepository        *daycareRepo.Repository
		boardingRepository       *boardingRepo.Repository
		groomingApptRepository   *groomingApptRepo.Repository
		groomingConfigRepository *groomingConfigRepo.Repository
		txMgr                    bookingsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		daycareRepository = daycareRepo.NewRepository(wrappedDB)
		boardingRepository = boardingRepo.NewRepository(wrappedDB)
		groomingApptRepository = groomingApptRepo.NewRepository(wrappedDB)
		groomingConfigRepository = groomingConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		daycareRepository = daycareRepo.NewRepository(db)
		boardingRepository = boardingRepo.NewRepository(db)
		groomingApptRepository = groomingApptRepo.NewRepository(db)
		groomingConfigRepository = groomingConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := validatePrebookingUC.RealTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		txMgr,
		timeProvider,
		log,
	)
	groomingConfigSvc := groomingConfigService.NewService(
		groomingConfigRepository,
		log,
	)

	// Инициализируем use cases
	workloadUseCase := calculateWorkloadUC.NewUseCase(
		bookingRepository,
		daycareRepository,
		boardingRepository,
		groomingApptRepository,
		log,
	)

	prebookingUseCase := validatePrebookingUC.NewUseCase(
		groomingConfigRepository,
		petClient,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getDailyWorkload := getDailyWorkloadHandler.NewHandler(workloadUseCase, log)
	getTimeblockWorkload := getTimeblockWorkloadHandler.NewHandler(workloadUseCase, log)
	getWorkloadRange := getWorkloadRangeHandler.NewHandler(workloadUseCase, log)
	validatePrebooking := validatePrebookingHandler.NewHandler(prebookingUseCase, log)
	getNextGroomingSlot := getNextGroomingSlotHandler.NewHandler(prebookingUseCase, log)
	getGroomingConfig := getGroomingConfigHandler.NewHandler(groomingConfigSvc, log)
	updateGroomingConfig := updateGroomingConfigHandler.NewHandler(groomingConfigSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	checkinBooking := checkinBookingHandler.NewHandler(bookingSvc, log)
	checkoutBooking := checkoutBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

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

	// --- Загрузка объекта ---
	// Дневные метрики загрузки
	api.HandleFunc("/facilities/{facilityId}/workload",
		getDailyWorkload.Handle).Methods(http.MethodGet)

	// Метрики загрузки по временному блоку
	api.HandleFunc("/facilities/{facilityId}/workload/blocks",
		getTimeblockWorkload.Handle).Methods(http.MethodGet)

	// Метрики загрузки за период
	api.HandleFunc("/facilities/{facilityId}/workload/range",
		getWorkloadRange.Handle).Methods(http.MethodGet)

	// --- Груминг ---
	// Предварительная валидация бронирования груминга
	api.HandleFunc("/facilities/{facilityId}/grooming/prebooking",
		validatePrebooking.Handle).Methods(http.MethodGet)

	// Ближайший доступный слот груминга
	api.HandleFunc("/facilities/{facilityId}/grooming/next-slot",
		getNextGroomingSlot.Handle).Methods(http.MethodGet)

	// Конфигурация груминга объекта
	api.HandleFunc("/facilities/{facilityId}/grooming/config",
		getGroomingConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление объектом (для персонала) ---
	// Обновление конфигурации груминга
	protected.HandleFunc("/facilities/{facilityId}/grooming/config",
		updateGroomingConfig.Handle).Methods(http.MethodPut)

	// Список бронирований объекта
	protected.HandleFunc("/facilities/{facilityId}/bookings",
		getFacilityBookings.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Отметка прибытия
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkinBooking.Handle).Methods(http.MethodPatch)

	// Отметка убытия
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkoutBooking.Handle).Methods(http.MethodPatch)

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
