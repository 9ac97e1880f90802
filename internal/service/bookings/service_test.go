package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	bookingRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/booking"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/internal/service/bookings/models"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	updateErr     error
	cancelErr     error
	deleteErr     error
	updatedFrom   domain.BookingStatus
	updatedTo     domain.BookingStatus
	cancelledFrom domain.BookingStatus
	cancelReason  string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.booking == nil {
		return []*domain.Booking{}, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return []*domain.Booking{}, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedFrom = from
	f.updatedTo = to
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, from domain.BookingStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledFrom = from
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, _ int64) error {
	return f.deleteErr
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	ownerID = int64(7)
	adminID = int64(1)
	otherID = int64(42)
)

func testUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		ownerID: {ID: ownerID, Role: domain.RoleUser},
		adminID: {ID: adminID, Role: domain.RoleAdmin},
		otherID: {ID: otherID, Role: domain.RoleUser},
	}}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            10,
		StationID:     1,
		UserID:        ownerID,
		BookingDate:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("14:00"),
		DurationHours: 2,
		TotalPrice:    60000,
		Status:        status,
		StationName:   "PS5 #1",
		StationType:   domain.StationPS5,
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, testUsers(), nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	tests := []struct {
		name      string
		requester int64
		wantErr   error
	}{
		{"owner sees own booking", ownerID, nil},
		{"admin sees any booking", adminID, nil},
		{"stranger is rejected", otherID, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

			resp, err := svc.GetByID(context.Background(), 10, tt.requester)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), resp.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound})

	_, err := svc.GetByID(context.Background(), 10, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_Access(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	t.Run("own history", func(t *testing.T) {
		resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:      ownerID,
			RequesterID: ownerID,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("admin reads someone else's history", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:      ownerID,
			RequesterID: adminID,
		})
		assert.NoError(t, err)
	})

	t.Run("stranger cannot read someone else's history", func(t *testing.T) {
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID:      ownerID,
			RequesterID: otherID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestList_AdminOnly(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{RequesterID: ownerID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{RequesterID: adminID})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		from      domain.BookingStatus
		to        string
		requester int64
		wantErr   error
	}{
		{"confirmed to in-progress", domain.StatusConfirmed, "in-progress", adminID, nil},
		{"in-progress to completed", domain.StatusInProgress, "completed", adminID, nil},
		{"confirmed straight to completed", domain.StatusConfirmed, "completed", adminID, ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, "in-progress", adminID, ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed", adminID, ErrInvalidTransition},
		{"unknown status", domain.StatusConfirmed, "paused", adminID, ErrInvalidStatus},
		{"regular user is rejected", domain.StatusConfirmed, "in-progress", ownerID, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(tt.from)}
			svc := newTestService(repo)

			resp, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
				UserID: tt.requester,
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)

			// CAS: переход выполнен из прочитанного статуса
			assert.Equal(t, tt.from, repo.updatedFrom)
			assert.Equal(t, domain.BookingStatus(tt.to), repo.updatedTo)
		})
	}
}

func TestUpdateStatus_ConcurrentUpdate(t *testing.T) {
	repo := &fakeBookingRepo{
		booking:   testBooking(domain.StatusConfirmed),
		updateErr: bookingRepo.ErrConcurrentUpdate,
	}
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: adminID,
		Status: "in-progress",
	})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.BookingStatus
		requester int64
		wantErr   error
	}{
		{"owner cancels confirmed", domain.StatusConfirmed, ownerID, nil},
		{"owner cancels in-progress", domain.StatusInProgress, ownerID, nil},
		{"admin cancels someone else's", domain.StatusConfirmed, adminID, nil},
		{"stranger cannot cancel", domain.StatusConfirmed, otherID, ErrAccessDenied},
		{"completed cannot be cancelled", domain.StatusCompleted, ownerID, ErrCannotCancel},
		{"cancelled cannot be cancelled again", domain.StatusCancelled, ownerID, ErrCannotCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: testBooking(tt.status)}
			svc := newTestService(repo)

			err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
				UserID:             tt.requester,
				CancellationReason: "передумал",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, repo.cancelledFrom)
			assert.Equal(t, "передумал", repo.cancelReason)
		})
	}
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)})

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'x'
	}

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             ownerID,
		CancellationReason: string(long),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 10, ownerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 10, adminID)
	assert.NoError(t, err)
}

func TestCountdown(t *testing.T) {
	booking := testBooking(domain.StatusInProgress) // сессия 14:00 + 2 часа

	tests := []struct {
		name         string
		now          time.Time
		wantFinished bool
		wantSeconds  int64
	}{
		{
			name:        "mid session",
			now:         time.Date(2025, 10, 15, 15, 0, 0, 0, time.UTC),
			wantSeconds: 3600,
		},
		{
			name:         "after session end",
			now:          time.Date(2025, 10, 15, 17, 0, 0, 0, time.UTC),
			wantFinished: true,
			wantSeconds:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeBookingRepo{booking: booking})
			svc.timeProvider = fixedTime{t: tt.now}

			resp, err := svc.Countdown(context.Background(), 10, ownerID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantFinished, resp.Finished)
			assert.Equal(t, tt.wantSeconds, resp.RemainingSeconds)
		})
	}
}

func TestCountdown_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{booking: testBooking(domain.StatusInProgress)})

	_, err := svc.Countdown(context.Background(), 10, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
