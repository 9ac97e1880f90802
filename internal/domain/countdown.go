package domain

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Countdown is the derived remaining time of a running session.
// It is a pure projection of (date, start, duration, now): recomputing it
// every second is idempotent and has no side effects. Reaching zero never
// transitions the booking - completion stays a staff action.
type Countdown struct {
	Remaining time.Duration
	Hours     int
	Minutes   int
	Seconds   int
	Finished  bool
}

// Remaining derives the countdown for a session that starts at
// date+startTime and runs durationHours. The result is clamped at zero,
// never negative.
func Remaining(date time.Time, startTime types.TimeString, durationHours int, now time.Time) Countdown {
	minutes, err := startTime.Minutes()
	if err != nil {
		minutes = 0
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, date.Location())
	end := start.Add(time.Duration(durationHours) * time.Hour)

	left := end.Sub(now)
	if left <= 0 {
		return Countdown{Finished: true}
	}

	return Countdown{
		Remaining: left,
		Hours:     int(left / time.Hour),
		Minutes:   int(left % time.Hour / time.Minute),
		Seconds:   int(left % time.Minute / time.Second),
	}
}
