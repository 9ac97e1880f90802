package domain

// Default slot grid values, matching the club's opening hours.
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "22:00"
)

// Business validation constants
const (
	MinDurationHours = 1
	MaxDurationHours = 4

	MaxCancellationReasonLength = 500
	MaxStationNameLength        = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слоты.
// Используется при подсчёте доступных слотов.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слоты на своей дате.
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
