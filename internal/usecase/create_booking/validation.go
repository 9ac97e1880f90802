package create_booking

import (
	"fmt"
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: сначала обязательность и диапазоны,
// затем принадлежность каталогу, доступность - отдельно в транзакции.
func validateRequest(req *Request, catalog domain.SlotCatalog) error {
	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationHours < domain.MinDurationHours || req.DurationHours > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidDuration, domain.MinDurationHours, domain.MaxDurationHours)
	}

	// Время начала обязано быть слотом каталога
	if !catalog.Contains(req.StartTime) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, req.StartTime)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// spanIsFree проверяет, что все часы интервала [start, start+duration),
// попадающие в каталог, свободны от активных бронирований.
// Это авторитетная проверка: она выполняется в той же транзакции,
// что и вставка, поверх строк, заблокированных FOR UPDATE.
func spanIsFree(catalog domain.SlotCatalog, start types.TimeString, durationHours int, bookings []*domain.Booking) bool {
	occupied := make(map[int]bool)
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		for _, h := range catalog.SpanHours(booking.StartTime, booking.DurationHours) {
			occupied[h] = true
		}
	}

	for _, h := range catalog.SpanHours(start, durationHours) {
		if occupied[h] {
			return false
		}
	}
	return true
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
