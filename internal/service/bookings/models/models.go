package models

import (
	"errors"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidService возвращается при некорректном типе услуги
	ErrInvalidService = errors.New("invalid service type")
)

// Request модели

// GetFacilityBookingsRequest запрос на получение бронирований объекта
type GetFacilityBookingsRequest struct {
	FacilityID      int64      `json:"facilityId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	Service         *string    `json:"service,omitempty"`         // Фильтр по типу услуги (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и no-show
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFacilityBookingsRequest) ToDomainFilter() (domain.FacilityBookingsFilter, error) {
	filter := domain.FacilityBookingsFilter{
		FacilityID:      r.FacilityID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Service != nil {
		service, err := ToDomainServiceType(*r.Service)
		if err != nil {
			return filter, err
		}
		filter.Service = &service
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	FacilityID int64  `json:"facilityId"`
	ClientID   int64  `json:"clientId"`
	PetID      int64  `json:"petId"`
	Service    string `json:"service"`
	StartDate  string `json:"startDate"` // "2024-03-10"
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`

	CheckInTime  *string `json:"checkInTime,omitempty"`  // "08:30"
	CheckOutTime *string `json:"checkOutTime,omitempty"` // "17:00"

	Notes *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		FacilityID:         b.FacilityID,
		ClientID:           b.ClientID,
		PetID:              b.PetID,
		Service:            string(b.Service),
		StartDate:          b.StartDate.Format(domain.DateFormat),
		EndDate:            b.EndDate.Format(domain.DateFormat),
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CheckInTime != nil {
		checkIn := b.CheckInTime.String()
		resp.CheckInTime = &checkIn
	}
	if b.CheckOutTime != nil {
		checkOut := b.CheckOutTime.String()
		resp.CheckOutTime = &checkOut
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainServiceType конвертирует строку в domain.ServiceType с валидацией
func ToDomainServiceType(service string) (domain.ServiceType, error) {
	s := domain.ServiceType(service)

	validServices := []domain.ServiceType{
		domain.ServiceBoarding,
		domain.ServiceDaycare,
		domain.ServiceGrooming,
		domain.ServiceTraining,
		domain.ServiceEvaluation,
	}

	for _, valid := range validServices {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidService
}
