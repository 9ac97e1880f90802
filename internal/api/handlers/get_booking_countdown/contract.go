package get_booking_countdown

import (
	"context"

	"github.com/gamebook/GameBook-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Countdown(ctx context.Context, bookingID int64, requesterID int64) (*models.CountdownResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
