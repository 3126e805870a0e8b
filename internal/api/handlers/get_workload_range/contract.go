package get_workload_range

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

type WorkloadUseCase interface {
	ExecuteRange(ctx context.Context, req *calculate_workload.RangeRequest) ([]*domain.WorkloadMetrics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
