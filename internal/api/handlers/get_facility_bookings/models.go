package get_facility_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Поддерживаются: startDate, endDate, status, service, includeInactive
func ToServiceRequest(facilityID int64, query url.Values) (*models.GetFacilityBookingsRequest, error) {
	req := &models.GetFacilityBookingsRequest{
		FacilityID:      facilityID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, startDateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %v", err)
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, endDateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %v", err)
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if service := query.Get("service"); service != "" {
		req.Service = &service
	}

	return req, nil
}
