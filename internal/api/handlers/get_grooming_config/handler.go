package get_grooming_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/grooming/config
// Публичный endpoint - без авторизации
// Объект без сохранённой конфигурации получает конфигурацию по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/grooming/config - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	config, err := h.service.GetByFacility(r.Context(), facilityID)
	if err != nil {
		h.logger.Error("GET /facilities/{id}/grooming/config - Failed to get config: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/grooming/config - Config retrieved: facility_id=%d, enabled=%t",
		facilityID, config.Enabled)
	handlers.RespondJSON(w, http.StatusOK, config)
}
