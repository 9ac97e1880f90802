package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	"github.com/gamebook/GameBook-BookingService/pkg/ptr"
)

// UseCase use case для получения доступных слотов станции на дату.
// Результат консультативный: авторитетная проверка повторяется в
// транзакции создания бронирования.
type UseCase struct {
	bookingRepo BookingRepository
	stationRepo StationRepository
	catalog     domain.SlotCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stationRepo StationRepository,
	catalog domain.SlotCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		stationRepo: stationRepo,
		catalog:     catalog,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: station=%d, date=%s",
		req.StationID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование станции
	if _, err := uc.stationRepo.GetByID(ctx, req.StationID); err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("GetAvailableSlots: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}

	// 3. Получаем активные бронирования станции на эту дату
	filter := domain.BookingsFilter{
		StationID:       ptr.Ptr(req.StationID),
		Date:            ptr.Ptr(req.Date),
		IncludeInactive: false, // Отменённые слоты не занимают
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Вычитаем занятые часы из каталога
	slots := freeSlots(uc.catalog, bookings)

	uc.logger.Info("GetAvailableSlots: %d/%d slots free for station=%d, date=%s",
		len(slots), uc.catalog.Size(), req.StationID, req.Date.Format(domain.DateFormat))

	return &Response{
		StationID: req.StationID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
