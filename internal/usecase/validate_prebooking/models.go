package validate_prebooking

import "time"

// Request модель запроса предварительной валидации бронирования груминга
type Request struct {
	FacilityID    int64
	RequestedDate *time.Time // Желаемая клиентом дата (опционально)
	PetID         *int64     // Питомец для проверки прививок (опционально)
}

// NextSlotRequest модель запроса поиска ближайшего доступного слота
type NextSlotRequest struct {
	FacilityID int64
}
