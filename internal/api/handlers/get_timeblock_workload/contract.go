package get_timeblock_workload

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

type WorkloadUseCase interface {
	ExecuteTimeBlock(ctx context.Context, req *calculate_workload.TimeBlockRequest) (*domain.WorkloadMetrics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
