package get_daily_workload

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

type WorkloadUseCase interface {
	Execute(ctx context.Context, req *calculate_workload.Request) (*domain.WorkloadMetrics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
