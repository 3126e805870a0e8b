package get_workload_range

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingDates      = "отсутствуют параметры startDate и endDate"
)

// RangeResponse ответ со списком дневных метрик за период
type RangeResponse struct {
	Days []*domain.WorkloadMetrics `json:"days"`
}

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

// Handle GET /api/v1/facilities/{facilityId}/workload/range
// Query params: startDate, endDate (обязательные, YYYY-MM-DD, включительно)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/workload/range - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		h.logger.Warn("GET /facilities/{id}/workload/range - Missing date parameters")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	// Перевернутый или мусорный период не является ошибкой: пустой список
	days, err := h.useCase.ExecuteRange(r.Context(), &calculate_workload.RangeRequest{
		StartDate:  startDate,
		EndDate:    endDate,
		FacilityID: &facilityID,
	})
	if err != nil {
		h.logger.Error("GET /facilities/{id}/workload/range - Failed to calculate workload: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/workload/range - Workload calculated: facility_id=%d, period=%s to %s, days=%d",
		facilityID, startDate, endDate, len(days))
	handlers.RespondJSON(w, http.StatusOK, RangeResponse{Days: days})
}
