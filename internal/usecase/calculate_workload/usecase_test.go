package calculate_workload

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/ptr"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// Фейки репозиториев: отдают заранее заданные коллекции и записывают,
// с какими аргументами их вызвали

type fakeBookingRepo struct {
	bookings       []*domain.Booking
	err            error
	lastFacilityID *int64
}

func (f *fakeBookingRepo) GetByStartDate(_ context.Context, _ time.Time, facilityID *int64) ([]*domain.Booking, error) {
	f.lastFacilityID = facilityID
	return f.bookings, f.err
}

type fakeDaycareRepo struct {
	records []*domain.DaycareCheckIn
	err     error
	calls   int
}

func (f *fakeDaycareRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.DaycareCheckIn, error) {
	f.calls++
	return f.records, f.err
}

type fakeBoardingRepo struct {
	guests []*domain.BoardingGuest
	err    error
}

func (f *fakeBoardingRepo) GetSpanningDate(_ context.Context, _ time.Time) ([]*domain.BoardingGuest, error) {
	return f.guests, f.err
}

type fakeGroomingRepo struct {
	appointments []*domain.GroomingAppointment
	err          error
}

func (f *fakeGroomingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.GroomingAppointment, error) {
	return f.appointments, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ts(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

func newTestUseCase(b *fakeBookingRepo, d *fakeDaycareRepo, g *fakeBoardingRepo, a *fakeGroomingRepo) *UseCase {
	if b == nil {
		b = &fakeBookingRepo{}
	}
	if d == nil {
		d = &fakeDaycareRepo{}
	}
	if g == nil {
		g = &fakeBoardingRepo{}
	}
	if a == nil {
		a = &fakeGroomingRepo{}
	}
	return NewUseCase(b, d, g, a, nopLogger{})
}

func TestExecute_SampleDay(t *testing.T) {
	bookingData := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Service: domain.ServiceDaycare, Status: domain.StatusCheckedIn, CheckInTime: ts("08:30")},
		{ID: 2, Service: domain.ServiceDaycare, Status: domain.StatusCompleted, CheckInTime: ts("07:45"), CheckOutTime: ts("17:00")},
		{ID: 3, Service: domain.ServiceEvaluation, Status: domain.StatusConfirmed},
		// Отменённое бронирование не считается даже со штампом
		{ID: 4, Service: domain.ServiceDaycare, Status: domain.StatusCancelled, CheckInTime: ts("09:00")},
	}}
	daycareData := &fakeDaycareRepo{records: []*domain.DaycareCheckIn{
		{ID: 1, Status: domain.DaycareCheckedIn, CheckInTime: date(2024, 3, 10).Add(8 * time.Hour)},
		{ID: 2, Status: domain.DaycareCheckedIn, CheckInTime: date(2024, 3, 10).Add(9 * time.Hour)},
		{ID: 3, Status: domain.DaycareScheduled, CheckInTime: date(2024, 3, 10).Add(12 * time.Hour)},
		{ID: 4, Status: domain.DaycareCheckedOut, CheckInTime: date(2024, 3, 10).Add(7 * time.Hour)},
	}}
	boardingData := &fakeBoardingRepo{guests: []*domain.BoardingGuest{
		{ID: 1, Status: domain.BoardingCheckedIn, CheckInDate: date(2024, 3, 8), CheckOutDate: date(2024, 3, 12)},
		{ID: 2, Status: domain.BoardingConfirmed, CheckInDate: date(2024, 3, 10), CheckOutDate: date(2024, 3, 15)},
		{ID: 3, Status: domain.BoardingCheckedOut, CheckInDate: date(2024, 3, 5), CheckOutDate: date(2024, 3, 10)},
	}}
	groomingData := &fakeGroomingRepo{appointments: []*domain.GroomingAppointment{
		{ID: 1, StartTime: "10:00", EndTime: "11:00"},
		{ID: 2, StartTime: "14:00", EndTime: "15:30"},
	}}

	uc := newTestUseCase(bookingData, daycareData, boardingData, groomingData)

	metrics, err := uc.Execute(context.Background(), &Request{Date: "2024-03-10"})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", metrics.Date)
	assert.Equal(t, 2, metrics.CheckIns)
	assert.Equal(t, []types.TimeString{"07:45", "08:30"}, metrics.CheckInTimes)
	assert.Equal(t, 1, metrics.CheckOuts)
	assert.Equal(t, 1, metrics.EvaluationCount)
	assert.Equal(t, 2, metrics.DaycareAttendance)
	assert.Equal(t, 3, metrics.DaycareForecast)
	assert.Equal(t, 3, metrics.BoardingOccupancy)
	assert.Equal(t, 1, metrics.BoardingArrivals)
	assert.Equal(t, 1, metrics.BoardingDepartures)
	assert.Equal(t, 2, metrics.GroomingCount)
	assert.Equal(t, 0, metrics.TrainingCount)
	assert.GreaterOrEqual(t, metrics.BusyMeter, 0)
	assert.LessOrEqual(t, metrics.BusyMeter, 100)
}

func TestExecute_FacilityFilterOnlyOnBookings(t *testing.T) {
	bookingData := &fakeBookingRepo{}
	daycareData := &fakeDaycareRepo{}
	uc := newTestUseCase(bookingData, daycareData, nil, nil)

	facilityID := int64(42)
	_, err := uc.Execute(context.Background(), &Request{Date: "2024-03-10", FacilityID: &facilityID})
	require.NoError(t, err)

	// Фильтр по объекту уходит только в репозиторий бронирований
	require.NotNil(t, bookingData.lastFacilityID)
	assert.Equal(t, int64(42), *bookingData.lastFacilityID)
	assert.Equal(t, 1, daycareData.calls)
}

func TestExecute_GarbageDateReturnsEmptyMetrics(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	for _, garbage := range []string{"not-a-date", "2024-13-45", ""} {
		metrics, err := uc.Execute(context.Background(), &Request{Date: garbage})
		require.NoError(t, err, "garbage date %q must not fail", garbage)
		assert.Equal(t, 0, metrics.CheckIns)
		assert.Equal(t, 0, metrics.BusyMeter)
		assert.Empty(t, metrics.CheckInTimes)
	}
}

func TestExecute_TruncatesISODateTime(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	metrics, err := uc.Execute(context.Background(), &Request{Date: "2024-03-10T15:04:05Z"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", metrics.Date)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{err: errors.New("connection refused")}, nil, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-03-10"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteTimeBlock_InvalidFormat(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	for _, block := range []string{"0800-1000-1200", "08:00", "", "-10:00", "08:00-"} {
		_, err := uc.ExecuteTimeBlock(context.Background(), &TimeBlockRequest{Date: "2024-03-10", Block: block})
		assert.ErrorIs(t, err, ErrInvalidTimeBlock, "block %q", block)
	}
}

func TestExecuteTimeBlock_FiltersByWindow(t *testing.T) {
	bookingData := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, Service: domain.ServiceDaycare, Status: domain.StatusCheckedIn, CheckInTime: ts("08:30")},
		{ID: 2, Service: domain.ServiceDaycare, Status: domain.StatusCheckedIn, CheckInTime: ts("11:30")},
	}}
	groomingData := &fakeGroomingRepo{appointments: []*domain.GroomingAppointment{
		{ID: 1, StartTime: "09:00", EndTime: "10:30"}, // пересекает окно
		{ID: 2, StartTime: "10:00", EndTime: "11:00"}, // касается границы, не считается
		{ID: 3, StartTime: "13:00", EndTime: "14:00"},
	}}

	uc := newTestUseCase(bookingData, nil, nil, groomingData)

	metrics, err := uc.ExecuteTimeBlock(context.Background(), &TimeBlockRequest{
		Date:  "2024-03-10",
		Block: "08:00-10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.CheckIns)
	assert.Equal(t, []types.TimeString{"08:30"}, metrics.CheckInTimes)
	assert.Equal(t, 1, metrics.GroomingCount)
	require.NotNil(t, metrics.TimeBlock)
	assert.Equal(t, "08:00-10:00", metrics.TimeBlock.String())
}

func TestExecuteRange_DayCount(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	tests := []struct {
		name      string
		startDate string
		endDate   string
		expected  int
	}{
		{"single day", "2024-03-10", "2024-03-10", 1},
		{"one week", "2024-03-10", "2024-03-16", 7},
		{"month boundary", "2024-02-28", "2024-03-02", 4}, // 2024 високосный
		{"inverted range", "2024-03-16", "2024-03-10", 0},
		{"garbage start", "garbage", "2024-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := uc.ExecuteRange(context.Background(), &RangeRequest{
				StartDate: tt.startDate,
				EndDate:   tt.endDate,
			})
			require.NoError(t, err)
			assert.Len(t, days, tt.expected)
		})
	}
}

func TestExecuteRange_SequentialDates(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, nil)

	days, err := uc.ExecuteRange(context.Background(), &RangeRequest{
		StartDate:  "2024-03-10",
		EndDate:    "2024-03-12",
		FacilityID: ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-03-10", days[0].Date)
	assert.Equal(t, "2024-03-11", days[1].Date)
	assert.Equal(t, "2024-03-12", days[2].Date)
}
