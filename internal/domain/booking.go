package domain

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// validTransitions задает машину состояний бронирования:
// confirmed -> in-progress -> completed, отмена возможна до завершения.
// completed и cancelled - терминальные состояния.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// Booking represents a station reservation for a contiguous span of
// hourly slots on a single date.
type Booking struct {
	ID            int64
	StationID     int64
	UserID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	DurationHours int
	TotalPrice    int64 // smallest currency unit, frozen at creation
	Status        BookingStatus

	// Denormalized data for history
	StationName string
	StationType StationType

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slots
// (any status except cancelled).
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// StartsAt combines the booking date with its start time in loc.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	y, m, d := b.BookingDate.Date()
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		minutes = 0
	}
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// EndsAt returns the moment the booked span ends in loc.
func (b *Booking) EndsAt(loc *time.Location) time.Time {
	return b.StartsAt(loc).Add(time.Duration(b.DurationHours) * time.Hour)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StationID       *int64         // Фильтр по станции (опционально)
	UserID          *int64         // Фильтр по пользователю (опционально)
	Date            *time.Time     // Конкретная дата (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
