package domain

import "time"

// DaycareStatus represents the status of a daycare check-in record
type DaycareStatus string

const (
	DaycareScheduled  DaycareStatus = "scheduled"
	DaycareCheckedIn  DaycareStatus = "checked-in"
	DaycareCheckedOut DaycareStatus = "checked-out"
)

// DaycareCheckIn represents a single daycare attendance record.
// CheckOutTime is nil while the pet is still on site.
type DaycareCheckIn struct {
	ID           int64
	FacilityID   int64
	PetID        int64
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       DaycareStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnSite returns true while the pet is checked in and not yet checked out
func (d *DaycareCheckIn) IsOnSite() bool {
	return d.Status == DaycareCheckedIn
}

// CountsForForecast returns true if the record contributes to the day's
// expected attendance (scheduled arrivals plus pets already on site)
func (d *DaycareCheckIn) CountsForForecast() bool {
	return d.Status == DaycareScheduled || d.Status == DaycareCheckedIn
}
