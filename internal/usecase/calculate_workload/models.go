package calculate_workload

// Request модель запроса на расчет загрузки за день
type Request struct {
	Date       string // Дата в формате YYYY-MM-DD (ISO datetime обрезается до даты)
	FacilityID *int64 // ID объекта (опционально; применяется только к бронированиям)
}

// TimeBlockRequest модель запроса на расчет загрузки за временной блок
type TimeBlockRequest struct {
	Date       string // Дата в формате YYYY-MM-DD
	Block      string // Временной блок "HH:MM-HH:MM"
	FacilityID *int64 // ID объекта (опционально)
}

// RangeRequest модель запроса на расчет загрузки за период
type RangeRequest struct {
	StartDate  string // Начало периода, YYYY-MM-DD, включительно
	EndDate    string // Конец периода, YYYY-MM-DD, включительно
	FacilityID *int64 // ID объекта (опционально)
}
