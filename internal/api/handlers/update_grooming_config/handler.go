package update_grooming_config

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
	"github.com/PawCareDash/PCD-FacilityService/internal/api/middleware"
	configService "github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/groomingconfig/models"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
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

// Handle PUT /api/v1/facilities/{facilityId}/grooming/config
// Защищенный endpoint - требует X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /facilities/{id}/grooming/config - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /facilities/{id}/grooming/config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/grooming/config - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	config, err := h.service.Update(r.Context(), facilityID, &req)
	if err != nil {
		if errors.Is(err, configService.ErrInvalidInput) {
			h.logger.Warn("PUT /facilities/{id}/grooming/config - Validation failed: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("PUT /facilities/{id}/grooming/config - Failed to update config: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /facilities/{id}/grooming/config - Config updated: facility_id=%d, user_id=%d, enabled=%t",
		facilityID, userID, config.Enabled)
	handlers.RespondJSON(w, http.StatusOK, config)
}
