package calculate_workload

import (
	"context"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
// Единственный источник данных, который фильтруется по объекту
type BookingRepository interface {
	GetByStartDate(ctx context.Context, date time.Time, facilityID *int64) ([]*domain.Booking, error)
}

// DaycareRepository интерфейс репозитория записей daycare
type DaycareRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.DaycareCheckIn, error)
}

// BoardingRepository интерфейс репозитория boarding-гостей
type BoardingRepository interface {
	GetSpanningDate(ctx context.Context, date time.Time) ([]*domain.BoardingGuest, error)
}

// GroomingRepository интерфейс репозитория записей на груминг
type GroomingRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.GroomingAppointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
