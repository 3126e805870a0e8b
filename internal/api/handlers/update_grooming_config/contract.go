package update_grooming_config

import (
	"context"

	"github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig/models"
)

type ConfigService interface {
	Update(ctx context.Context, facilityID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
