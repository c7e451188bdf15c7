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

	cancelBookingHandler "github.com/avdnv/court-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avdnv/court-booking-service/internal/api/handlers/create_booking"
	createCourtHandler "github.com/avdnv/court-booking-service/internal/api/handlers/create_court"
	deleteCourtHandler "github.com/avdnv/court-booking-service/internal/api/handlers/delete_court"
	getAvailableSlotsHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_booking"
	getBranchBookingsHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_branch_bookings"
	getCourtsHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_courts"
	getCustomerBookingsHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_customer_bookings"
	getPricingRulesHandler "github.com/avdnv/court-booking-service/internal/api/handlers/get_pricing_rules"
	quotePriceHandler "github.com/avdnv/court-booking-service/internal/api/handlers/quote_price"
	suggestPeriodsHandler "github.com/avdnv/court-booking-service/internal/api/handlers/suggest_periods"
	updateBookingStatusHandler "github.com/avdnv/court-booking-service/internal/api/handlers/update_booking_status"
	updateCourtHandler "github.com/avdnv/court-booking-service/internal/api/handlers/update_court"
	updatePricingRulesHandler "github.com/avdnv/court-booking-service/internal/api/handlers/update_pricing_rules"
	"github.com/avdnv/court-booking-service/internal/api/middleware"
	"github.com/avdnv/court-booking-service/internal/config"
	bookingRepo "github.com/avdnv/court-booking-service/internal/infra/storage/booking"
	courtRepo "github.com/avdnv/court-booking-service/internal/infra/storage/court"
	pricingRuleRepo "github.com/avdnv/court-booking-service/internal/infra/storage/pricingrule"
	customerServiceClient "github.com/avdnv/court-booking-service/internal/integrations/customerservice"
	venueServiceClient "github.com/avdnv/court-booking-service/internal/integrations/venueservice"
	bookingsService "github.com/avdnv/court-booking-service/internal/service/bookings"
	courtsService "github.com/avdnv/court-booking-service/internal/service/courts"
	pricingService "github.com/avdnv/court-booking-service/internal/service/pricing"
	createBookingUC "github.com/avdnv/court-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avdnv/court-booking-service/internal/usecase/get_available_slots"
	quotePriceUC "github.com/avdnv/court-booking-service/internal/usecase/quote_price"
	suggestPeriodsUC "github.com/avdnv/court-booking-service/internal/usecase/suggest_periods"
	"github.com/avdnv/court-booking-service/pkg/dbmetrics"
	"github.com/avdnv/court-booking-service/pkg/logger"
	"github.com/avdnv/court-booking-service/pkg/metrics"
	"github.com/avdnv/court-booking-service/pkg/simpletxmanager"
	"github.com/avdnv/court-booking-service/pkg/txmanager"
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

	log.Info("Starting court-booking-service...")
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
	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VenueService=%s timeout=%ds, CustomerService=%s timeout=%ds)",
		cfg.VenueService.URL, cfg.VenueService.Timeout, cfg.CustomerService.URL, cfg.CustomerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		courtRepository       *courtRepo.Repository
		pricingRuleRepository *pricingRuleRepo.Repository
	)

	// Интерфейс transaction manager, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		pricingRuleRepository = pricingRuleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		pricingRuleRepository = pricingRuleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		venueClient,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		venueClient,
		log,
	)
	pricingSvc := pricingService.NewService(
		pricingRuleRepository,
		venueClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtRepository,
		pricingRuleRepository,
		venueClient,
		customerClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		pricingRuleRepository,
		venueClient,
		log,
	)

	suggestPeriodsUseCase := suggestPeriodsUC.NewUseCase(
		bookingRepository,
		courtRepository,
		pricingRuleRepository,
		venueClient,
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUseCase(
		courtRepository,
		pricingRuleRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	suggestPeriods := suggestPeriodsHandler.NewHandler(suggestPeriodsUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getBranchBookings := getBranchBookingsHandler.NewHandler(bookingSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	getPricingRules := getPricingRulesHandler.NewHandler(pricingSvc, log)
	updatePricingRules := updatePricingRulesHandler.NewHandler(pricingSvc, log)

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

	// Сетка слотов корта на дату
	api.HandleFunc("/courts/{courtId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор оптимальных свободных периодов
	api.HandleFunc("/courts/{courtId}/suggested-periods",
		suggestPeriods.Handle).Methods(http.MethodGet)

	// Расчет цены интервала без создания бронирования
	api.HandleFunc("/courts/{courtId}/quote",
		quotePrice.Handle).Methods(http.MethodGet)

	// Список кортов филиала
	api.HandleFunc("/branches/{branchId}/courts",
		getCourts.Handle).Methods(http.MethodGet)

	// Правила ценообразования филиала
	api.HandleFunc("/branches/{branchId}/pricing-rules",
		getPricingRules.Handle).Methods(http.MethodGet)

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

	// Обновление статуса бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление филиалом (для менеджеров) ---
	// Список бронирований филиала
	protected.HandleFunc("/branches/{branchId}/bookings", getBranchBookings.Handle).Methods(http.MethodGet)

	// Управление кортами
	protected.HandleFunc("/branches/{branchId}/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

	// Замена правил ценообразования
	protected.HandleFunc("/branches/{branchId}/pricing-rules", updatePricingRules.Handle).Methods(http.MethodPut)

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
