package validate_prebooking

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
	msgInvalidDate       = "некорректный параметр date"
	msgInvalidPetID      = "некорректный параметр petId"
)

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

// Handle GET /api/v1/facilities/{facilityId}/grooming/prebooking
// Query params: date (опционально, RFC3339 или YYYY-MM-DD), petId (опционально)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/grooming/prebooking - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	req := &prebookingUC.Request{FacilityID: facilityID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		requested, err := parseRequestedDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/grooming/prebooking - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.RequestedDate = &requested
	}

	if petIDStr := r.URL.Query().Get("petId"); petIDStr != "" {
		petID, err := strconv.ParseInt(petIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/grooming/prebooking - Invalid pet ID %q: %v", petIDStr, err)
			handlers.RespondBadRequest(w, msgInvalidPetID)
			return
		}
		req.PetID = &petID
	}

	validation, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /facilities/{id}/grooming/prebooking - Validation failed: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/grooming/prebooking - Validated: facility_id=%d, available=%t",
		facilityID, validation.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromDomainValidation(validation))
}

func parseRequestedDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
