package validate_prebooking

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// Тексты советующих (не блокирующих) сообщений для клиента
const (
	msgGroomingDisabled      = "Grooming services are not currently available at this facility."
	msgRequestedDateTooSoon  = "The requested date is earlier than the earliest available booking date."
	msgVaccinationUnverified = "Vaccination records could not be verified. Please bring proof of vaccination."
	msgVaccinationMissing    = "Missing required vaccination: %s"
)
