package get_daily_workload

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/PawCareDash/PCD-FacilityService/internal/api/handlers"
	"github.com/PawCareDash/PCD-FacilityService/internal/usecase/calculate_workload"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingDate       = "отсутствует параметр date"
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

// Handle GET /api/v1/facilities/{facilityId}/workload
// Query params: date (обязательный, YYYY-MM-DD)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/workload - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /facilities/{id}/workload - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Мусорная дата не является ошибкой: usecase вернет нулевые метрики
	metrics, err := h.useCase.Execute(r.Context(), &calculate_workload.Request{
		Date:       date,
		FacilityID: &facilityID,
	})
	if err != nil {
		h.logger.Error("GET /facilities/{id}/workload - Failed to calculate workload: facility_id=%d, error=%v",
			facilityID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /facilities/{id}/workload - Workload calculated: facility_id=%d, date=%s, busy_meter=%d",
		facilityID, metrics.Date, metrics.BusyMeter)
	handlers.RespondJSON(w, http.StatusOK, metrics)
}
