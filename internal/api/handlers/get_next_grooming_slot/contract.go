package get_next_grooming_slot

import (
	"context"
	"time"

	prebookingUC "github.com/PawCareDash/PCD-FacilityService/internal/usecase/validate_prebooking"
)

type PreBookingUseCase interface {
	ExecuteNextSlot(ctx context.Context, req *prebookingUC.NextSlotRequest) (*time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
