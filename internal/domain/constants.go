package domain

// Default configuration values
const (
	DefaultLeadTimeHours     = 24
	DefaultNextSlotStartTime = "09:00" // candidate time for day-walk search
	MaxNextSlotAttempts      = 14      // bounded day-by-day search horizon
)

// Business validation constants
const (
	MinLeadTimeHours         = 0
	MaxLeadTimeHours         = 720 // 30 days
	MinDepositAmount         = 0.0
	MaxDepositAmount         = 1000.0
	MinDepositPercentage     = 1
	MaxDepositPercentage     = 100
	MaxServiceCategories     = 50
	MaxRequiredVaccines      = 20
	MaxNotesLength           = 500
	MaxCancellationReasonLen = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при фильтрации списков бронирований объекта
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCompleted,
}
