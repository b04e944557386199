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

	cancelBookingHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/check_availability"
	closeCallHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/close_call"
	createBookingHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/create_booking"
	findBookingHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/find_booking"
	getCustomerBookingsHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/get_customer_bookings"
	getRestaurantHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/get_restaurant"
	getRestaurantBookingsHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/get_restaurant_bookings"
	modifyBookingHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/modify_booking"
	startCallHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/start_call"
	toolCallHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/tool_call"
	updateRestaurantSettingsHandler "github.com/m04kA/RVA-ReservationService/internal/api/handlers/update_restaurant_settings"
	"github.com/m04kA/RVA-ReservationService/internal/api/middleware"
	"github.com/m04kA/RVA-ReservationService/internal/codegen"
	"github.com/m04kA/RVA-ReservationService/internal/config"
	"github.com/m04kA/RVA-ReservationService/internal/dispatch"
	bookingRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/booking"
	calllogRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/calllog"
	customerRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/m04kA/RVA-ReservationService/internal/infra/storage/restaurant"
	"github.com/m04kA/RVA-ReservationService/internal/integrations/notifier"
	bookingsService "github.com/m04kA/RVA-ReservationService/internal/service/bookings"
	callsService "github.com/m04kA/RVA-ReservationService/internal/service/calls"
	restaurantsService "github.com/m04kA/RVA-ReservationService/internal/service/restaurants"
	checkAvailabilityUC "github.com/m04kA/RVA-ReservationService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/RVA-ReservationService/internal/usecase/create_booking"
	modifyBookingUC "github.com/m04kA/RVA-ReservationService/internal/usecase/modify_booking"
	"github.com/m04kA/RVA-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RVA-ReservationService/pkg/logger"
	"github.com/m04kA/RVA-ReservationService/pkg/metrics"
	"github.com/m04kA/RVA-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/RVA-ReservationService/pkg/txmanager"
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

	log.Info("Starting RVA-ReservationService...")
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

	// Инициализируем клиента шлюза уведомлений (если включён)
	// Тип интерфейсный: typed-nil указатель прошёл бы проверку notifier != nil
	var notifierClient createBookingUC.Notifier
	if cfg.Notifier.Enabled {
		notifierClient = notifier.NewClient(
			cfg.Notifier.BaseURL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notification gateway client initialized (url=%s, timeout=%ds)",
			cfg.Notifier.BaseURL, cfg.Notifier.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		restaurantRepository *restaurantRepo.Repository
		customerRepository   *customerRepo.Repository
		calllogRepository    *calllogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		calllogRepository = calllogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		calllogRepository = calllogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем генератор кодов подтверждения
	codeGenerator := codegen.NewGenerator(bookingRepository, log, cfg.Codes.Length, cfg.Codes.MaxAttempts)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	callsSvc := callsService.NewService(calllogRepository, log)
	restaurantsSvc := restaurantsService.NewService(restaurantRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		customerRepository,
		codeGenerator,
		txMgr,
		notifierClient,
		createBookingUC.Config{
			ServiceDurationMinutes: cfg.Availability.ServiceDurationMinutes,
		},
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		checkAvailabilityUC.Config{
			ServiceDurationMinutes: cfg.Availability.ServiceDurationMinutes,
			SearchStepMinutes:      cfg.Availability.SearchStepMinutes,
			MaxAlternatives:        cfg.Availability.MaxAlternatives,
		},
		log,
	)

	modifyBookingUseCase := modifyBookingUC.NewUseCase(
		bookingRepository,
		restaurantRepository,
		txMgr,
		log,
	)

	// Инициализируем диспетчер интентов голосового агента
	dispatcher := dispatch.NewDispatcher(
		createBookingUseCase,
		checkAvailabilityUseCase,
		modifyBookingUseCase,
		bookingSvc,
		callsSvc,
		restaurantRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	modifyBooking := modifyBookingHandler.NewHandler(modifyBookingUseCase, log)
	findBooking := findBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurantBookings := getRestaurantBookingsHandler.NewHandler(bookingSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantsSvc, log)
	updateRestaurantSettings := updateRestaurantSettingsHandler.NewHandler(restaurantsSvc, log)
	startCall := startCallHandler.NewHandler(callsSvc, log)
	closeCall := closeCallHandler.NewHandler(callsSvc, log)
	toolCall := toolCallHandler.NewHandler(dispatcher, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Телефон звонящего пробрасывается заголовком X-Caller-Phone
	api.Use(middleware.CallerPhone)

	// --- Граница голосового агента ---
	api.HandleFunc("/tool-calls", toolCall.Handle).Methods(http.MethodPost)

	// --- Сессии звонков ---
	api.HandleFunc("/calls", startCall.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calls/{id}/close", closeCall.Handle).Methods(http.MethodPatch)

	// --- Доступность ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{code}", findBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{code}", modifyBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{code}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	api.HandleFunc("/customers/{phone}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Рестораны (персонал) ---
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}", updateRestaurantSettings.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/restaurants/{restaurantId}/bookings", getRestaurantBookings.Handle).Methods(http.MethodGet)

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
