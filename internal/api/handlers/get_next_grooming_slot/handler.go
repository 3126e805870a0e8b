package get_next_grooming_slot

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
	prebookingUC "github.com/PawCareDash/PCD-FacilityService/internal/usecase/validate_prebooking"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
)

// NextSlotResponse ответ с ближайшим доступным слотом
// Slot равен null, если слот не найден в пределах горизонта поиска
type NextSlotResponse struct {
	Slot *string `json:"slot"`
}

type Handler struct {
	useCase PreBookingUseCase
	logger  Logger
}

func NewHandler(useCase PreBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/grooming/next-slot
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/grooming/next-slot - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	slot, err := h.useCase.ExecuteNextSlot(r.Context(), &prebookingUC.NextSlotRequest{
		FacilityID: facilityID,
	})
	if err != nil {
		h.logger.Error("GET /facilities/{id}/grooming/next-slot - Search failed: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := NextSlotResponse{}
	if slot != nil {
		formatted := slot.Format(time.RFC3339)
		resp.Slot = &formatted
	}

	h.logger.Info("GET /facilities/{id}/grooming/next-slot - Search completed: facility_id=%d, found=%t",
		facilityID, slot != nil)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
