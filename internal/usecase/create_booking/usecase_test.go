package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	bookingRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/booking"
	stationRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/station"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 1
	f.created = b
	return b, nil
}

type fakeStationRepo struct {
	station *domain.Station
	err     error
}

func (f *fakeStationRepo) GetByID(_ context.Context, _ int64) (*domain.Station, error) {
	return f.station, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookings *fakeBookingRepo, station *domain.Station) *UseCase {
	uc := NewUseCase(
		bookings,
		&fakeStationRepo{station: station},
		&fakeUserRepo{user: &domain.User{ID: 7, Role: domain.RoleUser}},
		fakeTxManager{},
		domain.MustDefaultSlotCatalog(),
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		StationID:     1,
		UserID:        7,
		Date:          testDate,
		StartTime:     types.TimeString("14:00"),
		DurationHours: 2,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	station := &domain.Station{
		ID:           1,
		Name:         "PC #3",
		Type:         domain.StationPC,
		PricePerHour: 50000,
		Status:       domain.StationAvailable,
	}

	uc := newTestUseCase(repo, station)
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Цена фиксируется при создании: price_per_hour * duration
	assert.Equal(t, int64(100000), resp.TotalPrice)

	// Данные станции денормализованы в бронирование
	assert.Equal(t, "PC #3", resp.StationName)
	assert.Equal(t, string(domain.StationPC), resp.StationType)
}

func TestCreateBooking_Validation(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero station id",
			mutate:  func(r *Request) { r.StationID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero user id",
			mutate:  func(r *Request) { r.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing start time",
			mutate:  func(r *Request) { r.StartTime = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			mutate:  func(r *Request) { r.StartTime = "2pm" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration below minimum",
			mutate:  func(r *Request) { r.DurationHours = 0 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration above maximum",
			mutate:  func(r *Request) { r.DurationHours = 5 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "half hour start is not a catalog slot",
			mutate:  func(r *Request) { r.StartTime = "14:30" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "start before opening",
			mutate:  func(r *Request) { r.StartTime = "08:00" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "closing hour is not bookable",
			mutate:  func(r *Request) { r.StartTime = "22:00" },
			wantErr: ErrInvalidTimeSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, station)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}
	uc := newTestUseCase(&fakeBookingRepo{}, station)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBooking_TodayIsAllowed(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}
	uc := newTestUseCase(&fakeBookingRepo{}, station)

	req := validRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC) // тот же день, что testNow

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_MaintenanceStationRejected(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationMaintenance, Type: domain.StationVR}
	uc := newTestUseCase(&fakeBookingRepo{}, station)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStationUnavailable)
}

func TestCreateBooking_OverlapRejected(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}

	tests := []struct {
		name          string
		existingStart string
		existingDur   int
		reqStart      string
		reqDur        int
		wantErr       bool
	}{
		{
			name:          "tail of existing span collides",
			existingStart: "14:00", existingDur: 2,
			reqStart: "15:00", reqDur: 1,
			wantErr: true,
		},
		{
			name:          "request tail collides with existing start",
			existingStart: "15:00", existingDur: 1,
			reqStart: "14:00", reqDur: 2,
			wantErr: true,
		},
		{
			name:          "same slot",
			existingStart: "14:00", existingDur: 1,
			reqStart: "14:00", reqDur: 1,
			wantErr: true,
		},
		{
			name:          "adjacent before is free",
			existingStart: "14:00", existingDur: 2,
			reqStart: "12:00", reqDur: 2,
			wantErr: false,
		},
		{
			name:          "adjacent after is free",
			existingStart: "14:00", existingDur: 2,
			reqStart: "16:00", reqDur: 1,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{
				existing: []*domain.Booking{{
					StartTime:     types.TimeString(tt.existingStart),
					DurationHours: tt.existingDur,
					Status:        domain.StatusConfirmed,
				}},
			}
			uc := newTestUseCase(repo, station)

			req := validRequest()
			req.StartTime = types.TimeString(tt.reqStart)
			req.DurationHours = tt.reqDur

			_, err := uc.Execute(context.Background(), req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSlotNotAvailable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateBooking_CancelledBookingFreesSlot(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			StartTime:     types.TimeString("14:00"),
			DurationHours: 2,
			Status:        domain.StatusCancelled,
		}},
	}
	uc := newTestUseCase(repo, station)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_DBConstraintConflict(t *testing.T) {
	station := &domain.Station{ID: 1, PricePerHour: 30000, Status: domain.StationAvailable, Type: domain.StationPS5}
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotConflict}
	uc := newTestUseCase(repo, station)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateBooking_StationNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{err: stationRepo.ErrStationNotFound},
		&fakeUserRepo{user: &domain.User{ID: 7}},
		fakeTxManager{},
		domain.MustDefaultSlotCatalog(),
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStationNotFound)
}

func TestCreateBooking_UserNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeStationRepo{station: &domain.Station{ID: 1, Status: domain.StationAvailable}},
		&fakeUserRepo{err: userRepo.ErrUserNotFound},
		fakeTxManager{},
		domain.MustDefaultSlotCatalog(),
		nopLogger{},
	)
	uc.timeProvider = fixedTime{t: testNow}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
