package domain

import "time"

// BoardingStatus represents the status of a boarding stay
type BoardingStatus string

const (
	BoardingConfirmed  BoardingStatus = "confirmed"
	BoardingCheckedIn  BoardingStatus = "checked-in"
	BoardingCheckedOut BoardingStatus = "checked-out"
	BoardingCancelled  BoardingStatus = "cancelled"
)

// BoardingGuest represents an overnight boarding stay.
// CheckInDate and CheckOutDate are calendar dates; the stay occupies
// every day of the inclusive interval [CheckInDate, CheckOutDate].
type BoardingGuest struct {
	ID           int64
	FacilityID   int64
	PetID        int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       BoardingStatus
	KennelID     *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the stay was cancelled
func (g *BoardingGuest) IsCancelled() bool {
	return g.Status == BoardingCancelled
}

// OccupiesDate returns true if date falls within the stay interval,
// inclusive on both ends. Cancelled stays are NOT excluded here; callers
// that need only live stays must filter on status themselves.
func (g *BoardingGuest) OccupiesDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(g.CheckInDate)) && !d.After(DateOnly(g.CheckOutDate))
}

// ArrivesOn returns true if the stay begins on date
func (g *BoardingGuest) ArrivesOn(date time.Time) bool {
	return DateOnly(g.CheckInDate).Equal(DateOnly(date))
}

// DepartsOn returns true if the stay ends on date
func (g *BoardingGuest) DepartsOn(date time.Time) bool {
	return DateOnly(g.CheckOutDate).Equal(DateOnly(date))
}

// DateOnly truncates a timestamp to its calendar date, keeping the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
