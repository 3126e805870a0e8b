package domain

import (
	"time"

	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// GroomingApptStatus represents the status of a grooming appointment
type GroomingApptStatus string

const (
	GroomingScheduled GroomingApptStatus = "scheduled"
	GroomingCompleted GroomingApptStatus = "completed"
	GroomingCancelled GroomingApptStatus = "cancelled"
)

// GroomingAppointment represents a grooming appointment on the facility calendar
type GroomingAppointment struct {
	ID         int64              `json:"id"`
	FacilityID int64              `json:"facilityId"`
	PetID      int64              `json:"petId"`
	Date       time.Time          `json:"date"`
	StartTime  types.TimeString   `json:"startTime"`
	EndTime    types.TimeString   `json:"endTime"`
	GroomerID  *int64             `json:"groomerId,omitempty"`
	CategoryID *string            `json:"categoryId,omitempty"`
	Status     GroomingApptStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OverlapsWindow returns true if the appointment strictly overlaps the
// [start, end) window. Appointments that merely touch a boundary do not count.
func (a *GroomingAppointment) OverlapsWindow(start, end types.TimeString) bool {
	return a.StartTime.IsBefore(end) && a.EndTime.IsAfter(start)
}

// GroomerSelectionMode controls how much groomer choice a customer gets
type GroomerSelectionMode string

const (
	// SelectionStealth hides groomer assignment entirely
	SelectionStealth GroomerSelectionMode = "stealth"
	// SelectionOptional lets the customer pick a groomer or a tier, or skip
	SelectionOptional GroomerSelectionMode = "optional"
	// SelectionTierOnly exposes only named tiers, never individual groomers
	SelectionTierOnly GroomerSelectionMode = "tier-only"
	// SelectionFullChoice exposes individual groomers by name
	SelectionFullChoice GroomerSelectionMode = "full-choice"
)

// DepositType controls the deposit policy of a facility
type DepositType string

const (
	DepositNone       DepositType = "none"
	DepositFixed      DepositType = "fixed"
	DepositPercentage DepositType = "percentage"
)

// GroomerTier is a named pricing/experience tier of groomers
type GroomerTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	PriceDelta  float64 `json:"priceDelta"`
}

// DepositPolicy describes whether and how a deposit is collected at booking
type DepositPolicy struct {
	Type              DepositType `json:"type"`
	Amount            *float64    `json:"amount,omitempty"`
	Percentage        *int        `json:"percentage,omitempty"`
	Refundable        bool        `json:"refundable"`
	RequiredAtBooking bool        `json:"requiredAtBooking"`
}

// ServiceCategory is a bookable grooming category.
// HiddenWhenFullyBooked and FullyBookedWeeksThreshold are stored but not
// evaluated anywhere yet; pre-booking availability only checks Enabled.
type ServiceCategory struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Enabled                   bool   `json:"enabled"`
	HiddenWhenFullyBooked     bool   `json:"hiddenWhenFullyBooked"`
	FullyBookedWeeksThreshold int    `json:"fullyBookedWeeksThreshold"`
}

// LeadTimeRules controls how far in advance grooming must be booked
type LeadTimeRules struct {
	MinimumHours  int  `json:"minimumHours"`
	AllowSameDay  bool `json:"allowSameDay"`
	AllowTomorrow bool `json:"allowTomorrow"`
}

// GroomerSelectionRules controls groomer choice for customers
type GroomerSelectionRules struct {
	Mode  GroomerSelectionMode `json:"mode"`
	Tiers []GroomerTier        `json:"tiers,omitempty"`
}

// VaccinationGate lists vaccines the facility requires before grooming
type VaccinationGate struct {
	Required         bool     `json:"required"`
	RequiredVaccines []string `json:"requiredVaccines,omitempty"`
}

// BookingRules bundles the customer-facing grooming booking rules
type BookingRules struct {
	LeadTime          LeadTimeRules         `json:"leadTime"`
	GroomerSelection  GroomerSelectionRules `json:"groomerSelection"`
	Deposit           DepositPolicy         `json:"deposit"`
	ServiceCategories []ServiceCategory     `json:"serviceCategories"`
	Vaccination       VaccinationGate       `json:"vaccination"`
}

// DayHours is an open/close window for one weekday, as HH:MM strings
type DayHours struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// WeeklyHours holds the facility's grooming operating hours per weekday.
// A nil entry means grooming is closed that day.
type WeeklyHours struct {
	Sunday    *DayHours `json:"sunday,omitempty"`
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
}

// ForWeekday returns the hours entry for the given weekday
func (w *WeeklyHours) ForWeekday(day time.Weekday) *DayHours {
	switch day {
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return nil
	}
}

// GroomingFacilityConfig is the facility-level grooming configuration
type GroomingFacilityConfig struct {
	ID             int64
	FacilityID     int64
	Enabled        bool
	BookingRules   BookingRules
	OperatingHours WeeklyHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultGroomingConfig returns the configuration used for facilities that
// have not set one up: grooming disabled, conservative booking rules
func DefaultGroomingConfig(facilityID int64) *GroomingFacilityConfig {
	return &GroomingFacilityConfig{
		FacilityID: facilityID,
		Enabled:    false,
		BookingRules: BookingRules{
			LeadTime: LeadTimeRules{
				MinimumHours:  DefaultLeadTimeHours,
				AllowSameDay:  false,
				AllowTomorrow: true,
			},
			GroomerSelection: GroomerSelectionRules{
				Mode: SelectionStealth,
			},
			Deposit: DepositPolicy{
				Type: DepositNone,
			},
			ServiceCategories: []ServiceCategory{},
			Vaccination: VaccinationGate{
				Required: false,
			},
		},
	}
}

// GroomerSelectionOptions are the customer-facing selection flags derived
// from the configured mode
type GroomerSelectionOptions struct {
	CanSelectGroomer bool          `json:"canSelectGroomer"`
	CanSelectTier    bool          `json:"canSelectTier"`
	ShowGroomerNames bool          `json:"showGroomerNames"`
	Tiers            []GroomerTier `json:"tiers,omitempty"`
}

// DepositInfo is the customer-facing deposit summary with a display message
type DepositInfo struct {
	Required   bool        `json:"required"`
	Type       DepositType `json:"type"`
	Amount     *float64    `json:"amount,omitempty"`
	Percentage *int        `json:"percentage,omitempty"`
	Refundable bool        `json:"refundable"`
	Message    string      `json:"message"`
}

// GroomingPreBookingValidation is the computed answer to "can this facility
// offer grooming right now, and under what terms". The errors and warnings
// are advisory text for the customer; they never block anything by themselves.
type GroomingPreBookingValidation struct {
	IsAvailable             bool
	EarliestAvailableDate   *time.Time
	AvailableCategories     []ServiceCategory
	GroomerSelectionOptions GroomerSelectionOptions
	DepositInfo             DepositInfo
	ValidationErrors        []string
	ValidationWarnings      []string
}
