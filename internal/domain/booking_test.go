package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"confirmed to in-progress", StatusConfirmed, StatusInProgress, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to completed skips in-progress", StatusConfirmed, StatusCompleted, false},
		{"in-progress to completed", StatusInProgress, StatusCompleted, true},
		{"in-progress to cancelled", StatusInProgress, StatusCancelled, true},
		{"in-progress back to confirmed", StatusInProgress, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusInProgress, false},
		{"completed cannot be cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelled cannot restart", StatusCancelled, StatusInProgress, false},
		{"no self transition", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
	assert.False(t, BookingStatus("in_progress").IsValid())
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusConfirmed, StatusInProgress, StatusCompleted} {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s should occupy slots", status)
	}

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusInProgress}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_StartsAtEndsAt(t *testing.T) {
	b := &Booking{
		BookingDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("14:00"),
		DurationHours: 2,
	}

	start := b.StartsAt(time.UTC)
	end := b.EndsAt(time.UTC)

	assert.Equal(t, time.Date(2025, 10, 15, 14, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 10, 15, 16, 0, 0, 0, time.UTC), end)
}
