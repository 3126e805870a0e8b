package models

import (
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации груминга объекта
// Вложенные правила передаются целиком: частичных обновлений нет
type UpdateConfigRequest struct {
	Enabled        bool                `json:"enabled"`
	BookingRules   domain.BookingRules `json:"bookingRules"`
	OperatingHours domain.WeeklyHours  `json:"operatingHours"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig(facilityID int64) *domain.GroomingFacilityConfig {
	return &domain.GroomingFacilityConfig{
		FacilityID:     facilityID,
		Enabled:        r.Enabled,
		BookingRules:   r.BookingRules,
		OperatingHours: r.OperatingHours,
	}
}

// Response модели

// ConfigResponse ответ с конфигурацией груминга объекта
type ConfigResponse struct {
	ID             int64               `json:"id,omitempty"`
	FacilityID     int64               `json:"facilityId"`
	Enabled        bool                `json:"enabled"`
	BookingRules   domain.BookingRules `json:"bookingRules"`
	OperatingHours domain.WeeklyHours  `json:"operatingHours"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.GroomingFacilityConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:             c.ID,
		FacilityID:     c.FacilityID,
		Enabled:        c.Enabled,
		BookingRules:   c.BookingRules,
		OperatingHours: c.OperatingHours,
	}

	// Конфигурация по умолчанию не имеет временных меток
	if !c.CreatedAt.IsZero() {
		createdAt := c.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
