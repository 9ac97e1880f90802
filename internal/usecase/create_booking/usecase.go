package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	bookingRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/booking"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции - два одновременных запроса на пересекающиеся слоты не могут
// пройти оба.
type UseCase struct {
	bookingRepo  BookingRepository
	stationRepo  StationRepository
	userRepo     UserRepository
	txManager    TransactionManager
	catalog      domain.SlotCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stationRepo StationRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	catalog domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		stationRepo:  stationRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: station=%d, user=%d, date=%s, time=%s, duration=%dh",
		req.StationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationHours)

	// 1. Валидация входных данных и принадлежности слота каталогу
	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем существование пользователя
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 5. Получаем станцию
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CreateBooking: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	// 6. Станция на обслуживании не бронируется
	if station.Status == domain.StationMaintenance {
		uc.logger.Warn("CreateBooking: station id=%d is under maintenance", req.StationID)
		return nil, ErrStationUnavailable
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Проверка доступности и вставка - одной сериализуемой транзакцией.
	// Консультативная проверка, которую пользователь видел в UI, здесь не
	// учитывается: между просмотром и подтверждением слот мог занять другой
	// клиент.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные бронирования станции на дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StationID:       ptr.Ptr(req.StationID),
			Date:            ptr.Ptr(req.Date),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Каждый час интервала [start, start+duration) обязан быть свободен
		if !spanIsFree(uc.catalog, req.StartTime, req.DurationHours, bookings) {
			uc.logger.Warn("CreateBooking: span %s+%dh not free on station=%d, date=%s",
				req.StartTime, req.DurationHours, req.StationID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем бронирование: цена фиксируется на момент создания
		booking := &domain.Booking{
			StationID:     req.StationID,
			UserID:        req.UserID,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.DurationHours,
			TotalPrice:    station.TotalPrice(req.DurationHours),
			Status:        domain.StatusConfirmed,
			// Денормализация данных станции для истории
			StationName: station.Name,
			StationType: station.Type,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				// Ограничение БД отбило второго писателя
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total_price=%d",
		result.ID, result.TotalPrice)

	return &Response{
		ID:            result.ID,
		StationID:     result.StationID,
		UserID:        result.UserID,
		BookingDate:   result.BookingDate,
		StartTime:     result.StartTime,
		DurationHours: result.DurationHours,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		StationName:   result.StationName,
		StationType:   string(result.StationType),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
