package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	bookingRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/booking"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение, машина статусов,
// отмена, отсчёт оставшегося времени.
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только своё бронирование, админ - любое.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.fetchBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnerOrAdmin(ctx, booking, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя.
// Чужую историю может смотреть только админ.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, requester=%d, status=%v",
		req.UserID, req.RequesterID, req.Status)

	if req.UserID != req.RequesterID {
		if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
			s.logger.Warn("GetUserBookings: access denied for requester=%d", req.RequesterID)
			return nil, err
		}
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает все бронирования с фильтрацией по станции, дате и статусу.
// Доступно только админу.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for requester=%d", req.RequesterID)

	if err := s.checkAdmin(ctx, req.RequesterID); err != nil {
		s.logger.Warn("List: access denied for requester=%d", req.RequesterID)
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Переход валидируется машиной состояний; недопустимый переход возвращает
// ErrInvalidTransition и оставляет бронирование без изменений.
// Доступно только админу (персоналу клуба).
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	if err := s.checkAdmin(ctx, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d", req.UserID)
		return nil, err
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.fetchBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Compare-and-set из прочитанного статуса: поздний писатель не может
	// молча перезаписать чужой переход
	if err := s.bookingRepo.UpdateStatusFrom(ctx, bookingID, booking.Status, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrConcurrentUpdate) {
			s.logger.Warn("UpdateStatus: concurrent update on booking id=%d", bookingID)
			return nil, fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Пользователь может отменить своё бронирование, админ - любое.
// Отмена - это статус, а не удаление: запись сохраняется в истории.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.fetchBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	if err := s.checkOwnerOrAdmin(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, booking.Status, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrConcurrentUpdate) {
			s.logger.Warn("Cancel: concurrent update on booking id=%d", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Delete физически удаляет бронирование. Только для админа;
// обычный поток использует отмену.
func (s *Service) Delete(ctx context.Context, bookingID int64, requesterID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", bookingID, requesterID)

	if err := s.checkAdmin(ctx, requesterID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", requesterID)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}

// Countdown вычисляет оставшееся время сессии бронирования.
// Чистое чтение: пересчитывается клиентом хоть каждую секунду, никаких
// блокировок и переходов статуса не выполняет - завершение сессии остаётся
// ручным действием персонала.
func (s *Service) Countdown(ctx context.Context, bookingID int64, requesterID int64) (*models.CountdownResponse, error) {
	booking, err := s.fetchBooking(ctx, bookingID, "Countdown")
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnerOrAdmin(ctx, booking, requesterID); err != nil {
		s.logger.Warn("Countdown: access denied for user=%d to booking id=%d", requesterID, bookingID)
		return nil, err
	}

	countdown := domain.Remaining(booking.BookingDate, booking.StartTime, booking.DurationHours, s.timeProvider.Now())
	return models.FromCountdown(booking, countdown), nil
}

// Вспомогательные методы

func (s *Service) fetchBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// checkOwnerOrAdmin проверяет, что пользователь - владелец бронирования
// или админ
func (s *Service) checkOwnerOrAdmin(ctx context.Context, booking *domain.Booking, requesterID int64) error {
	if booking.UserID == requesterID {
		return nil
	}
	if err := s.checkAdmin(ctx, requesterID); err != nil {
		return ErrAccessDenied
	}
	return nil
}

// checkAdmin проверяет, что пользователь - админ
func (s *Service) checkAdmin(ctx context.Context, requesterID int64) error {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkAdmin - failed to get user: %v", ErrInternal, err)
	}
	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
