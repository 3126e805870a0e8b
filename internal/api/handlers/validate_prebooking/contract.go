package validate_prebooking

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	prebookingUC "github.com/PawCareDash/PCD-FacilityService/internal/usecase/validate_prebooking"
)

type PreBookingUseCase interface {
	Execute(ctx context.Context, req *prebookingUC.Request) (*domain.GroomingPreBookingValidation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
