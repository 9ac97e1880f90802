package models

import (
	"errors"
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на перевод бронирования в новый статус
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID      int64   `json:"userId"`      // Чьи бронирования
	RequesterID int64   `json:"requesterId"` // Кто спрашивает
	Status      *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос на получение всех бронирований (админ)
type ListBookingsRequest struct {
	RequesterID     int64      `json:"requesterId"`
	StationID       *int64     `json:"stationId,omitempty"`       // Фильтр по станции (опционально)
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StationID:       r.StationID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	StationID     int64  `json:"stationId"`
	UserID        int64  `json:"userId"`
	BookingDate   string `json:"bookingDate"` // "2025-10-15"
	StartTime     string `json:"startTime"`   // "14:00"
	DurationHours int    `json:"durationHours"`
	TotalPrice    int64  `json:"totalPrice"`
	Status        string `json:"status"`

	// Денормализованные данные станции
	StationName string `json:"stationName"`
	StationType string `json:"stationType"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CountdownResponse ответ с оставшимся временем сессии
type CountdownResponse struct {
	BookingID        int64  `json:"bookingId"`
	Status           string `json:"status"`
	Finished         bool   `json:"finished"`
	RemainingSeconds int64  `json:"remainingSeconds"`
	Hours            int    `json:"hours"`
	Minutes          int    `json:"minutes"`
	Seconds          int    `json:"seconds"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		StationID:          b.StationID,
		UserID:             b.UserID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationHours:      b.DurationHours,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		StationName:        b.StationName,
		StationType:        string(b.StationType),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromCountdown конвертирует производный отсчёт в DTO
func FromCountdown(b *domain.Booking, c domain.Countdown) *CountdownResponse {
	return &CountdownResponse{
		BookingID:        b.ID,
		Status:           string(b.Status),
		Finished:         c.Finished,
		RemainingSeconds: int64(c.Remaining.Seconds()),
		Hours:            c.Hours,
		Minutes:          c.Minutes,
		Seconds:          c.Seconds,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
