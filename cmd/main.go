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

	cancelBookingHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/create_booking"
	createStationHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/create_station"
	deleteBookingHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/delete_booking"
	deleteStationHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/delete_station"
	getAvailableSlotsHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_booking"
	getBookingCountdownHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_booking_countdown"
	getStationHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_station"
	getStationsHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_stations"
	getUserBookingsHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_user_bookings"
	getUsersHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/get_users"
	listBookingsHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/list_bookings"
	loginUserHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/login_user"
	registerUserHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/register_user"
	updateBookingStatusHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/update_booking_status"
	updateStationHandler "github.com/gamebook/GameBook-BookingService/internal/api/handlers/update_station"
	"github.com/gamebook/GameBook-BookingService/internal/api/middleware"
	"github.com/gamebook/GameBook-BookingService/internal/config"
	"github.com/gamebook/GameBook-BookingService/internal/domain"
	bookingRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/booking"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	bookingsService "github.com/gamebook/GameBook-BookingService/internal/service/bookings"
	stationsService "github.com/gamebook/GameBook-BookingService/internal/service/stations"
	usersService "github.com/gamebook/GameBook-BookingService/internal/service/users"
	createBookingUC "github.com/gamebook/GameBook-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/gamebook/GameBook-BookingService/internal/usecase/get_available_slots"
	"github.com/gamebook/GameBook-BookingService/pkg/dbmetrics"
	"github.com/gamebook/GameBook-BookingService/pkg/logger"
	"github.com/gamebook/GameBook-BookingService/pkg/metrics"
	"github.com/gamebook/GameBook-BookingService/pkg/simpletxmanager"
	"github.com/gamebook/GameBook-BookingService/pkg/txmanager"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
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

	log.Info("Starting GameBook-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем каталог слотов из часов работы клуба
	catalog, err := domain.NewSlotCatalog(
		types.TimeString(cfg.Booking.OpenTime),
		types.TimeString(cfg.Booking.CloseTime),
	)
	if err != nil {
		log.Fatal("Invalid booking hours in config: %v", err)
	}
	log.Info("Slot catalog: %s - %s, %d slots per day",
		cfg.Booking.OpenTime, cfg.Booking.CloseTime, catalog.Size())

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
		bookingRepository *bookingRepo.Repository
		stationRepository *stationRepo.Repository
		userRepository    *userRepo.Repository
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
		stationRepository = stationRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		stationRepository = stationRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		log,
	)
	stationSvc := stationsService.NewService(
		stationRepository,
		userRepository,
		log,
	)
	userSvc := usersService.NewService(
		userRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		stationRepository,
		userRepository,
		txMgr,
		catalog,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		stationRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingCountdown := getBookingCountdownHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getStations := getStationsHandler.NewHandler(stationSvc, log)
	getStation := getStationHandler.NewHandler(stationSvc, log)
	createStation := createStationHandler.NewHandler(stationSvc, log)
	updateStation := updateStationHandler.NewHandler(stationSvc, log)
	deleteStation := deleteStationHandler.NewHandler(stationSvc, log)
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)

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

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог станций
	api.HandleFunc("/stations", getStations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stations/{stationId}", getStation.Handle).Methods(http.MethodGet)

	// Свободные слоты станции на дату
	api.HandleFunc("/stations/{stationId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список всех бронирований (для персонала)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Оставшееся время сессии
	protected.HandleFunc("/bookings/{bookingId}/countdown", getBookingCountdown.Handle).Methods(http.MethodGet)

	// Перевод статуса (для персонала)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Физическое удаление (для персонала)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление каталогом (для персонала) ---
	protected.HandleFunc("/stations", createStation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/stations/{stationId}", updateStation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/stations/{stationId}", deleteStation.Handle).Methods(http.MethodDelete)

	// --- Пользователи (для персонала) ---
	protected.HandleFunc("/users", getUsers.Handle).Methods(http.MethodGet)

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
