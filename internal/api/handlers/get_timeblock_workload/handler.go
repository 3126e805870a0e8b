package get_timeblock_workload

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingDate       = "отсутствует параметр date"
	msgInvalidTimeBlock  = "некорректный формат временного блока, ожидается HH:MM-HH:MM"
)

type Handler struct {
	useCase WorkloadUseCase
	logger  Logger
}

func NewHandler(useCase WorkloadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/workload/blocks
// Query params: date (обязательный), block (обязательный, "HH:MM-HH:MM")
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/workload/blocks - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /facilities/{id}/workload/blocks - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	block := r.URL.Query().Get("block")

	metrics, err := h.useCase.ExecuteTimeBlock(r.Context(), &calculate_workload.TimeBlockRequest{
		Date:       date,
		Block:      block,
		FacilityID: &facilityID,
	})
	if err != nil {
		if errors.Is(err, calculate_workload.ErrInvalidTimeBlock) {
			h.logger.Warn("GET /facilities/{id}/workload/blocks - Invalid time block: %q", block)
			handlers.RespondBadRequest(w, msgInvalidTimeBlock)
			return
		}
		h.logger.Error("GET /facilities/{id}/workload/blocks - Failed to calculate workload: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/workload/blocks - Workload calculated: facility_id=%d, date=%s, block=%s",
		facilityID, metrics.Date, block)
	handlers.RespondJSON(w, http.StatusOK, metrics)
}
