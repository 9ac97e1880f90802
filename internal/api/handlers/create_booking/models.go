package create_booking

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	createBooking "github.com/gamebook/GameBook-BookingService/internal/usecase/create_booking"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StationID     int64  `json:"stationId"`
	BookingDate   string `json:"bookingDate"` // "2025-10-15"
	StartTime     string `json:"startTime"`   // "14:00"
	DurationHours int    `json:"durationHours"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	StationID     int64  `json:"stationId"`
	UserID        int64  `json:"userId"`
	BookingDate   string `json:"bookingDate"`
	StartTime     string `json:"startTime"`
	DurationHours int    `json:"durationHours"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`
	StationName   string `json:"stationName"`
	StationType   string `json:"stationType"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		StationID:     r.StationID,
		UserID:        userID,
		Date:          bookingDate,
		StartTime:     startTime,
		DurationHours: r.DurationHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		StationID:     resp.StationID,
		UserID:        resp.UserID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		DurationHours: resp.DurationHours,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
		StationName:   resp.StationName,
		StationType:   resp.StationType,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
