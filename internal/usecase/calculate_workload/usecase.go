package calculate_workload

import (
	"context"
	"fmt"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// UseCase use case расчета загрузки объекта
type UseCase struct {
	bookingRepo  BookingRepository
	daycareRepo  DaycareRepository
	boardingRepo BoardingRepository
	groomingRepo GroomingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	daycareRepo DaycareRepository,
	boardingRepo BoardingRepository,
	groomingRepo GroomingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		daycareRepo:  daycareRepo,
		boardingRepo: boardingRepo,
		groomingRepo: groomingRepo,
		logger:       logger,
	}
}

// Execute вычисляет дневные метрики загрузки
// Мусорная дата не является ошибкой: возвращаются нулевые метрики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.WorkloadMetrics, error) {
	date := normalizeDate(req.Date)
	uc.logger.Info("CalculateWorkload: date=%s, facility=%v", date, req.FacilityID)

	day, err := parseDate(date)
	if err != nil {
		uc.logger.Warn("CalculateWorkload: unparseable date %q, returning empty metrics", req.Date)
		return emptyMetrics(date, nil), nil
	}

	data, err := uc.fetchDay(ctx, day, req.FacilityID)
	if err != nil {
		return nil, err
	}

	metrics := buildDayMetrics(date, data)

	uc.logger.Info("CalculateWorkload: date=%s checkIns=%d checkOuts=%d daycare=%d boarding=%d grooming=%d busyMeter=%d",
		date, metrics.CheckIns, metrics.CheckOuts, metrics.DaycareAttendance,
		metrics.BoardingOccupancy, metrics.GroomingCount, metrics.BusyMeter)

	return metrics, nil
}

// ExecuteTimeBlock вычисляет метрики загрузки внутри временного блока
// Возвращает ErrInvalidTimeBlock для блока не в формате "HH:MM-HH:MM"
func (uc *UseCase) ExecuteTimeBlock(ctx context.Context, req *TimeBlockRequest) (*domain.WorkloadMetrics, error) {
	block, err := parseTimeBlock(req.Block)
	if err != nil {
		uc.logger.Warn("CalculateWorkload: invalid time block %q", req.Block)
		return nil, err
	}

	date := normalizeDate(req.Date)
	uc.logger.Info("CalculateWorkload: date=%s block=%s facility=%v", date, block, req.FacilityID)

	day, err := parseDate(date)
	if err != nil {
		uc.logger.Warn("CalculateWorkload: unparseable date %q, returning empty metrics", req.Date)
		return emptyMetrics(date, &block), nil
	}

	data, err := uc.fetchDay(ctx, day, req.FacilityID)
	if err != nil {
		return nil, err
	}

	return buildTimeBlockMetrics(date, block, data), nil
}

// ExecuteRange вычисляет метрики по каждому дню периода включительно
// Дни считаются строго последовательно; startDate > endDate дает пустой список
func (uc *UseCase) ExecuteRange(ctx context.Context, req *RangeRequest) ([]*domain.WorkloadMetrics, error) {
	results := make([]*domain.WorkloadMetrics, 0)

	start, err := parseDate(normalizeDate(req.StartDate))
	if err != nil {
		uc.logger.Warn("CalculateWorkload: unparseable range start %q", req.StartDate)
		return results, nil
	}
	end, err := parseDate(normalizeDate(req.EndDate))
	if err != nil {
		uc.logger.Warn("CalculateWorkload: unparseable range end %q", req.EndDate)
		return results, nil
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		metrics, err := uc.Execute(ctx, &Request{
			Date:       day.Format(domain.DateFormat),
			FacilityID: req.FacilityID,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, metrics)
	}

	return results, nil
}

func (uc *UseCase) fetchDay(ctx context.Context, day time.Time, facilityID *int64) (dayCollections, error) {
	var data dayCollections

	// Фильтр по объекту применяется только к бронированиям; daycare, boarding
	// и груминг сканируются по всем объектам (сохранённое историческое поведение)
	bookings, err := uc.bookingRepo.GetByStartDate(ctx, day, facilityID)
	if err != nil {
		uc.logger.Error("CalculateWorkload: failed to get bookings: %v", err)
		return data, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	daycare, err := uc.daycareRepo.GetByDate(ctx, day)
	if err != nil {
		uc.logger.Error("CalculateWorkload: failed to get daycare check-ins: %v", err)
		return data, fmt.Errorf("%w: failed to get daycare check-ins: %v", ErrInternal, err)
	}

	boarding, err := uc.boardingRepo.GetSpanningDate(ctx, day)
	if err != nil {
		uc.logger.Error("CalculateWorkload: failed to get boarding guests: %v", err)
		return data, fmt.Errorf("%w: failed to get boarding guests: %v", ErrInternal, err)
	}

	appointments, err := uc.groomingRepo.GetByDate(ctx, day)
	if err != nil {
		uc.logger.Error("CalculateWorkload: failed to get grooming appointments: %v", err)
		return data, fmt.Errorf("%w: failed to get grooming appointments: %v", ErrInternal, err)
	}

	data.bookings = bookings
	data.daycare = daycare
	data.boarding = boarding
	data.appointments = appointments

	return data, nil
}

func emptyMetrics(date string, block *domain.TimeBlock) *domain.WorkloadMetrics {
	return &domain.WorkloadMetrics{
		Date:                 date,
		TimeBlock:            block,
		CheckInTimes:         make([]types.TimeString, 0),
		CheckOutTimes:        make([]types.TimeString, 0),
		GroomingAppointments: make([]*domain.GroomingAppointment, 0),
	}
}
