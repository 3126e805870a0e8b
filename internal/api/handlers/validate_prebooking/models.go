package validate_prebooking

import (
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
)

// ValidationResponse HTTP ответ предварительной валидации бронирования груминга
type ValidationResponse struct {
	IsAvailable             bool                           `json:"isAvailable"`
	EarliestAvailableDate   *string                        `json:"earliestAvailableDate"` // ISO 8601, null когда груминг недоступен
	AvailableCategories     []domain.ServiceCategory       `json:"availableCategories"`
	GroomerSelectionOptions domain.GroomerSelectionOptions `json:"groomerSelectionOptions"`
	DepositInfo             domain.DepositInfo             `json:"depositInfo"`
	ValidationErrors        []string                       `json:"validationErrors"`
	ValidationWarnings      []string                       `json:"validationWarnings"`
}

// FromDomainValidation конвертирует domain модель в HTTP ответ
func FromDomainValidation(v *domain.GroomingPreBookingValidation) *ValidationResponse {
	if v == nil {
		return nil
	}

	resp := &ValidationResponse{
		IsAvailable:             v.IsAvailable,
		AvailableCategories:     v.AvailableCategories,
		GroomerSelectionOptions: v.GroomerSelectionOptions,
		DepositInfo:             v.DepositInfo,
		ValidationErrors:        v.ValidationErrors,
		ValidationWarnings:      v.ValidationWarnings,
	}

	if v.EarliestAvailableDate != nil {
		earliest := v.EarliestAvailableDate.Format(time.RFC3339)
		resp.EarliestAvailableDate = &earliest
	}

	return resp
}
