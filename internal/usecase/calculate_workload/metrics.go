package calculate_workload

import (
	"math"
	"sort"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

// dayCollections исходные коллекции за один день, уже выбранные по дате
type dayCollections struct {
	bookings     []*domain.Booking
	daycare      []*domain.DaycareCheckIn
	boarding     []*domain.BoardingGuest
	appointments []*domain.GroomingAppointment
}

// buildDayMetrics собирает дневные метрики загрузки из коллекций
// Чистая функция: никаких побочных эффектов и обращений к часам
func buildDayMetrics(date string, data dayCollections) *domain.WorkloadMetrics {
	m := &domain.WorkloadMetrics{
		Date:                 date,
		CheckInTimes:         make([]types.TimeString, 0),
		CheckOutTimes:        make([]types.TimeString, 0),
		GroomingAppointments: make([]*domain.GroomingAppointment, 0),
	}

	for _, b := range data.bookings {
		if b.CountsForCheckIns() {
			m.CheckIns++
			m.CheckInTimes = append(m.CheckInTimes, *b.CheckInTime)
		}
		if b.CountsForCheckOuts() {
			m.CheckOuts++
			m.CheckOutTimes = append(m.CheckOutTimes, *b.CheckOutTime)
		}
		if b.Service == domain.ServiceEvaluation {
			m.EvaluationCount++
		}
	}
	sortTimes(m.CheckInTimes)
	sortTimes(m.CheckOutTimes)

	for _, d := range data.daycare {
		if d.IsOnSite() {
			m.DaycareAttendance++
		}
		if d.CountsForForecast() {
			m.DaycareForecast++
		}
	}

	for _, g := range data.boarding {
		// Occupancy сознательно НЕ исключает отменённых гостей,
		// arrivals/departures - исключают
		m.BoardingOccupancy++
		if !g.IsCancelled() {
			if sameDateString(g.CheckInDate, date) {
				m.BoardingArrivals++
			}
			if sameDateString(g.CheckOutDate, date) {
				m.BoardingDepartures++
			}
		}
	}

	m.GroomingAppointments = append(m.GroomingAppointments, data.appointments...)
	m.GroomingCount = len(data.appointments)

	// Тренировки пока не интегрированы в расписание, счетчик всегда ноль
	m.TrainingCount = 0

	m.BusyMeter = calculateBusyMeter(m)

	return m
}

// buildTimeBlockMetrics собирает метрики, ограниченные окном [start, end)
// Ограничение применяется к отметкам прибытия/убытия, присутствию daycare и
// пересечению записей на груминг; boarding и evaluations остаются дневными
func buildTimeBlockMetrics(date string, block domain.TimeBlock, data dayCollections) *domain.WorkloadMetrics {
	m := &domain.WorkloadMetrics{
		Date:                 date,
		TimeBlock:            &block,
		CheckInTimes:         make([]types.TimeString, 0),
		CheckOutTimes:        make([]types.TimeString, 0),
		GroomingAppointments: make([]*domain.GroomingAppointment, 0),
	}

	for _, b := range data.bookings {
		if b.CountsForCheckIns() && block.Contains(*b.CheckInTime) {
			m.CheckIns++
			m.CheckInTimes = append(m.CheckInTimes, *b.CheckInTime)
		}
		if b.CountsForCheckOuts() && block.Contains(*b.CheckOutTime) {
			m.CheckOuts++
			m.CheckOutTimes = append(m.CheckOutTimes, *b.CheckOutTime)
		}
		if b.Service == domain.ServiceEvaluation {
			m.EvaluationCount++
		}
	}
	sortTimes(m.CheckInTimes)
	sortTimes(m.CheckOutTimes)

	for _, d := range data.daycare {
		if d.IsOnSite() && daycareTouchesWindow(d, block) {
			m.DaycareAttendance++
		}
		if d.CountsForForecast() {
			m.DaycareForecast++
		}
	}

	for _, g := range data.boarding {
		m.BoardingOccupancy++
		if !g.IsCancelled() {
			if sameDateString(g.CheckInDate, date) {
				m.BoardingArrivals++
			}
			if sameDateString(g.CheckOutDate, date) {
				m.BoardingDepartures++
			}
		}
	}

	for _, a := range data.appointments {
		if a.OverlapsWindow(block.Start, block.End) {
			m.GroomingAppointments = append(m.GroomingAppointments, a)
		}
	}
	m.GroomingCount = len(m.GroomingAppointments)

	m.TrainingCount = 0

	m.BusyMeter = calculateBusyMeter(m)

	return m
}

// daycareTouchesWindow проверяет, что пребывание питомца задевает окно:
// прибытие не позже конца окна и убытие (если было) не раньше его начала
func daycareTouchesWindow(d *domain.DaycareCheckIn, block domain.TimeBlock) bool {
	arrived := types.NewTimeString(d.CheckInTime)
	if arrived.IsAfter(block.End) {
		return false
	}
	if d.CheckOutTime != nil {
		left := types.NewTimeString(*d.CheckOutTime)
		if left.IsBefore(block.Start) {
			return false
		}
	}
	return true
}

// calculateBusyMeter вычисляет нормализованную оценку загрузки 0-100
// Взвешенная сумма активностей делится на фиксированную взвешенную сумму
// предполагаемых дневных максимумов; веса и максимумы заданы в domain
func calculateBusyMeter(m *domain.WorkloadMetrics) int {
	weighted := float64(m.CheckIns*domain.BusyWeightCheckIns +
		m.CheckOuts*domain.BusyWeightCheckOuts +
		m.DaycareAttendance*domain.BusyWeightDaycare +
		m.BoardingOccupancy*domain.BusyWeightBoarding +
		m.GroomingCount*domain.BusyWeightGrooming +
		m.EvaluationCount*domain.BusyWeightEvaluations +
		m.TrainingCount*domain.BusyWeightTraining)

	maxWeighted := float64(domain.BusyCapCheckIns*domain.BusyWeightCheckIns +
		domain.BusyCapCheckOuts*domain.BusyWeightCheckOuts +
		domain.BusyCapDaycare*domain.BusyWeightDaycare +
		domain.BusyCapBoarding*domain.BusyWeightBoarding +
		domain.BusyCapGrooming*domain.BusyWeightGrooming +
		domain.BusyCapEvaluations*domain.BusyWeightEvaluations +
		domain.BusyCapTraining*domain.BusyWeightTraining)

	score := int(math.Round(weighted / maxWeighted * 100))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

func sortTimes(times []types.TimeString) {
	sort.Slice(times, func(i, j int) bool {
		return times[i].IsBefore(times[j])
	})
}
