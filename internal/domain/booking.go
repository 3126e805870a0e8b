package domain

import (
	"time"

	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// BookingStatus represents the status of a facility booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCheckedIn BookingStatus = "checked-in"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no-show"
)

// ServiceType represents the kind of service a booking is for
type ServiceType string

const (
	ServiceBoarding   ServiceType = "boarding"
	ServiceDaycare    ServiceType = "daycare"
	ServiceGrooming   ServiceType = "grooming"
	ServiceTraining   ServiceType = "training"
	ServiceEvaluation ServiceType = "evaluation"
)

// Booking represents a pet's booking at a facility
type Booking struct {
	ID         int64
	FacilityID int64
	ClientID   int64
	PetID      int64
	Service    ServiceType
	StartDate  time.Time
	EndDate    time.Time
	Status     BookingStatus

	// Stamped by staff on arrival/departure
	CheckInTime  *types.TimeString
	CheckOutTime *types.TimeString

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanCheckIn returns true if the booking can be checked in
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut returns true if the booking can be checked out
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CountsForCheckIns reports whether the booking contributes to the daily
// check-in count: the check-in time must be stamped and the status must be
// in the counted allow-list. A strict "checked-in" status match is deliberately
// not required; a completed booking that was checked in earlier today still counts.
func (b *Booking) CountsForCheckIns() bool {
	return b.CheckInTime != nil && statusIsCounted(b.Status)
}

// CountsForCheckOuts reports whether the booking contributes to the daily
// check-out count, under the same status allow-list as check-ins.
func (b *Booking) CountsForCheckOuts() bool {
	return b.CheckOutTime != nil && statusIsCounted(b.Status)
}

func statusIsCounted(status BookingStatus) bool {
	for _, s := range WorkloadCountedStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// FacilityBookingsFilter фильтр для получения бронирований объекта
type FacilityBookingsFilter struct {
	FacilityID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	Service         *ServiceType   // Фильтр по типу услуги (опционально)
	IncludeInactive bool           // Включать ли отменённые и no-show бронирования
}
