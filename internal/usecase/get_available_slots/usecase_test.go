package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeStationRepo struct {
	station *domain.Station
	err     error
}

func (f *fakeStationRepo) GetByID(_ context.Context, _ int64) (*domain.Station, error) {
	return f.station, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(start string, duration int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartTime:     types.TimeString(start),
		DurationHours: duration,
		Status:        status,
	}
}

func TestFreeSlots(t *testing.T) {
	catalog := domain.MustDefaultSlotCatalog()

	tests := []struct {
		name     string
		bookings []*domain.Booking
		want     []string
		wantLen  int
	}{
		{
			name:     "no bookings frees the whole grid",
			bookings: nil,
			wantLen:  13,
		},
		{
			name: "two hour booking blocks both spanned hours",
			bookings: []*domain.Booking{
				booking("14:00", 2, domain.StatusConfirmed),
			},
			wantLen: 11,
		},
		{
			name: "cancelled booking frees its slots",
			bookings: []*domain.Booking{
				booking("14:00", 2, domain.StatusCancelled),
			},
			wantLen: 13,
		},
		{
			name: "completed booking still occupies its slots on that date",
			bookings: []*domain.Booking{
				booking("09:00", 1, domain.StatusCompleted),
			},
			wantLen: 12,
		},
		{
			name: "last slot with long duration only blocks itself",
			bookings: []*domain.Booking{
				booking("21:00", 4, domain.StatusConfirmed),
			},
			wantLen: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			free := freeSlots(catalog, tt.bookings)
			assert.Len(t, free, tt.wantLen)
		})
	}
}

func TestFreeSlots_BlockedHours(t *testing.T) {
	catalog := domain.MustDefaultSlotCatalog()

	free := freeSlots(catalog, []*domain.Booking{
		booking("14:00", 2, domain.StatusConfirmed),
	})

	for _, slot := range free {
		assert.NotEqual(t, types.TimeString("14:00"), slot)
		assert.NotEqual(t, types.TimeString("15:00"), slot)
	}
	assert.Contains(t, free, types.TimeString("13:00"))
	assert.Contains(t, free, types.TimeString("16:00"))
}

func TestFreeSlots_PreservesCatalogOrder(t *testing.T) {
	catalog := domain.MustDefaultSlotCatalog()

	free := freeSlots(catalog, []*domain.Booking{
		booking("12:00", 1, domain.StatusConfirmed),
	})

	for i := 1; i < len(free); i++ {
		assert.True(t, free[i-1].IsBefore(free[i]), "slots must stay in catalog order")
	}
}

func TestFreeSlots_FreeAndOccupiedPartitionTheCatalog(t *testing.T) {
	catalog := domain.MustDefaultSlotCatalog()
	bookings := []*domain.Booking{
		booking("09:00", 3, domain.StatusConfirmed),
		booking("20:00", 2, domain.StatusInProgress),
		booking("13:00", 1, domain.StatusCancelled),
	}

	free := freeSlots(catalog, bookings)
	occupied := occupiedHours(catalog, bookings)

	// Свободные и занятые слоты не пересекаются и вместе покрывают каталог
	assert.Equal(t, catalog.Size(), len(free)+len(occupied))
	for _, slot := range free {
		assert.False(t, occupied[slot.Hour()])
	}
}

func TestGetAvailableSlots_Execute(t *testing.T) {
	catalog := domain.MustDefaultSlotCatalog()
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	station := &domain.Station{ID: 1, Name: "PS5 #1", Type: domain.StationPS5}

	t.Run("success", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{bookings: []*domain.Booking{booking("10:00", 2, domain.StatusConfirmed)}},
			&fakeStationRepo{station: station},
			catalog,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{StationID: 1, Date: date})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.StationID)
		assert.Len(t, resp.Slots, 11)
	})

	t.Run("station not found", func(t *testing.T) {
		uc := NewUseCase(
			&fakeBookingRepo{},
			&fakeStationRepo{err: stationRepo.ErrStationNotFound},
			catalog,
			nopLogger{},
		)

		_, err := uc.Execute(context.Background(), &Request{StationID: 99, Date: date})

		assert.ErrorIs(t, err, ErrStationNotFound)
	})

	t.Run("invalid station id", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeStationRepo{station: station}, catalog, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{StationID: 0, Date: date})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing date", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, &fakeStationRepo{station: station}, catalog, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{StationID: 1})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
