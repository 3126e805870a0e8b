package groomingconfig

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций груминга
type ConfigRepository interface {
	GetByFacility(ctx context.Context, facilityID int64) (*domain.GroomingFacilityConfig, error)
	Upsert(ctx context.Context, config *domain.GroomingFacilityConfig) (*domain.GroomingFacilityConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
