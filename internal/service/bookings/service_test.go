package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	bookingRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/booking"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/bookings/models"
	"github.com/PawCareDash/PCD-FacilityService/pkg/ptr"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// fakeRepo in-memory репозиторий бронирований
type fakeRepo struct {
	bookings   map[int64]*domain.Booking
	lastFilter *domain.FacilityBookingsFilter
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = &filter
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.FacilityID == filter.FacilityID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) SetCheckIn(_ context.Context, id int64, checkInTime types.TimeString) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.CheckInTime = &checkInTime
	b.Status = domain.StatusCheckedIn
	return nil
}

func (f *fakeRepo) SetCheckOut(_ context.Context, id int64, checkOutTime types.TimeString) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.CheckOutTime = &checkOutTime
	b.Status = domain.StatusCompleted
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	return nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, fakeClock{now: testNow}, nopLogger{})
}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		FacilityID: 7,
		ClientID:   1,
		PetID:      2,
		Service:    domain.ServiceDaycare,
		StartDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
}

func TestCheckIn(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := newTestService(repo)

	resp, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "08:30", *resp.CheckInTime)
}

func TestCheckIn_WrongStatus(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"pending is not checkable", domain.StatusPending},
		{"already checked in", domain.StatusCheckedIn},
		{"completed", domain.StatusCompleted},
		{"cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := confirmedBooking(1)
			b.Status = tt.status
			svc := newTestService(newFakeRepo(b))

			_, err := svc.CheckIn(context.Background(), 1)
			assert.ErrorIs(t, err, ErrCannotCheckIn)
		})
	}
}

func TestCheckIn_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.CheckIn(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCheckOut(t *testing.T) {
	b := confirmedBooking(1)
	b.Status = domain.StatusCheckedIn
	b.CheckInTime = func() *types.TimeString { v := types.TimeString("07:00"); return &v }()

	repo := newFakeRepo(b)
	svc := newTestService(repo)

	resp, err := svc.CheckOut(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "08:30", *resp.CheckOutTime)
}

func TestCheckOut_RequiresCheckedInStatus(t *testing.T) {
	svc := newTestService(newFakeRepo(confirmedBooking(1)))

	_, err := svc.CheckOut(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCannotCheckOut)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "owner request"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
	assert.Equal(t, "owner request", *repo.bookings[1].CancellationReason)
}

func TestCancel_CheckedInCannotBeCancelled(t *testing.T) {
	b := confirmedBooking(1)
	b.Status = domain.StatusCheckedIn
	svc := newTestService(newFakeRepo(b))

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestGetFacilityBookings_FilterConversion(t *testing.T) {
	repo := newFakeRepo(confirmedBooking(1))
	svc := newTestService(repo)

	resp, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		FacilityID: 7,
		Status:     ptr.Ptr("confirmed"),
		Service:    ptr.Ptr("daycare"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, int64(7), repo.lastFilter.FacilityID)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.Service)
	assert.Equal(t, domain.ServiceDaycare, *repo.lastFilter.Service)
}

func TestGetFacilityBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetFacilityBookings(context.Background(), &models.GetFacilityBookingsRequest{
		FacilityID: 7,
		Status:     ptr.Ptr("teleported"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
