package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/PawCareDash/PCD-FacilityService/internal/infra/storage/booking"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/bookings/models"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// Service сервис для работы с бронированиями объекта
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetFacilityBookings получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу, типу услуги и включению
// отменённых/no-show записей
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: fetching bookings for facility=%d, status=%v, service=%v, includeInactive=%t",
		req.FacilityID, req.Status, req.Service, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: successfully fetched %d bookings for facility=%d", len(bookings), req.FacilityID)
	return models.FromDomainBookingList(bookings), nil
}

// CheckIn отмечает прибытие питомца по бронированию
// Время прибытия штампуется текущим временем; допустим только переход
// из статуса confirmed. Проверка и запись выполняются в одной транзакции.
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: checking in booking id=%d", id)

	stamp := types.NewTimeString(s.timeProvider.Now())

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: CheckIn - repository error: %v", ErrInternal, err)
		}

		if !booking.CanCheckIn() {
			s.logger.Warn("CheckIn: booking id=%d cannot be checked in, status=%s", id, booking.Status)
			return ErrCannotCheckIn
		}

		return s.bookingRepo.SetCheckIn(ctx, id, stamp)
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrCannotCheckIn) {
			return nil, err
		}
		s.logger.Error("CheckIn: transaction failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckIn - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("CheckIn: booking id=%d checked in at %s", id, stamp)
	return s.GetByID(ctx, id)
}

// CheckOut отмечает убытие питомца по бронированию
// Допустим только переход из статуса checked-in
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: checking out booking id=%d", id)

	stamp := types.NewTimeString(s.timeProvider.Now())

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: CheckOut - repository error: %v", ErrInternal, err)
		}

		if !booking.CanCheckOut() {
			s.logger.Warn("CheckOut: booking id=%d cannot be checked out, status=%s", id, booking.Status)
			return ErrCannotCheckOut
		}

		return s.bookingRepo.SetCheckOut(ctx, id, stamp)
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrCannotCheckOut) {
			return nil, err
		}
		s.logger.Error("CheckOut: transaction failed for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: CheckOut - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("CheckOut: booking id=%d checked out at %s", id, stamp)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование
// Отменить можно только бронирования в статусах pending и confirmed
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}
