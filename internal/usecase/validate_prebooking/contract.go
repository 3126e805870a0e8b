package validate_prebooking

import (
	"context"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
)

// GroomingConfigRepository интерфейс репозитория конфигураций груминга
type GroomingConfigRepository interface {
	GetByFacility(ctx context.Context, facilityID int64) (*domain.GroomingFacilityConfig, error)
}

// PetServiceClient интерфейс клиента PetService для проверки прививок
type PetServiceClient interface {
	GetPetWithGracefulDegradation(ctx context.Context, petID int64) (*petservice.Pet, error)
}

// TimeProvider интерфейс для получения текущего времени
// Внедряется явно, чтобы проверки lead time были детерминированы в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
