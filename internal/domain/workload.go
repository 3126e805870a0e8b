package domain

import "github.com/PawCareDash/PCD-FacilityService/pkg/types"

// TimeBlock is a half-open "HH:MM-HH:MM" window of a day
type TimeBlock struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// String returns the wire representation "HH:MM-HH:MM"
func (b TimeBlock) String() string {
	return string(b.Start) + "-" + string(b.End)
}

// Contains returns true for timestamps in [Start, End).
// Comparison is lexical, which matches chronological order for
// zero-padded 24h times.
func (b TimeBlock) Contains(t types.TimeString) bool {
	return !t.IsBefore(b.Start) && t.IsBefore(b.End)
}

// WorkloadMetrics summarizes how busy a facility is on one calendar day.
// When TimeBlock is set, the check-in/check-out, daycare attendance and
// grooming figures are restricted to that window; everything else stays
// day-level.
type WorkloadMetrics struct {
	Date      string     `json:"date"`
	TimeBlock *TimeBlock `json:"timeBlock,omitempty"`

	CheckIns      int                `json:"checkIns"`
	CheckInTimes  []types.TimeString `json:"checkInTimes"`
	CheckOuts     int                `json:"checkOuts"`
	CheckOutTimes []types.TimeString `json:"checkOutTimes"`

	DaycareAttendance int `json:"daycareAttendance"`
	DaycareForecast   int `json:"daycareForecast"`

	BoardingOccupancy  int `json:"boardingOccupancy"`
	BoardingArrivals   int `json:"boardingArrivals"`
	BoardingDepartures int `json:"boardingDepartures"`

	GroomingCount        int                    `json:"groomingCount"`
	GroomingAppointments []*GroomingAppointment `json:"groomingAppointments"`

	EvaluationCount int `json:"evaluationCount"`
	TrainingCount   int `json:"trainingCount"`

	// BusyMeter is a normalized 0-100 load score
	BusyMeter int `json:"busyMeter"`
}

// Busy meter weights per activity type. The evaluation weight is the
// highest because evaluations demand dedicated one-on-one staff time.
const (
	BusyWeightCheckIns    = 3
	BusyWeightCheckOuts   = 2
	BusyWeightDaycare     = 1
	BusyWeightBoarding    = 2
	BusyWeightGrooming    = 4
	BusyWeightEvaluations = 5
	BusyWeightTraining    = 3
)

// Assumed daily capacity per activity type. Together with the weights these
// fix the denominator of the busy meter, so the score is comparable across
// days and facilities.
const (
	BusyCapCheckIns    = 20
	BusyCapCheckOuts   = 20
	BusyCapDaycare     = 50
	BusyCapBoarding    = 30
	BusyCapGrooming    = 10
	BusyCapEvaluations = 5
	BusyCapTraining    = 5
)

// WorkloadCountedStatuses is the status allow-list for counting booking
// check-ins and check-outs in workload metrics
var WorkloadCountedStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusCompleted,
}
